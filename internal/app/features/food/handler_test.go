package food_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/campushub/campushub/internal/app/features/food"
	vendorstore "github.com/campushub/campushub/internal/app/store/vendors"
	"github.com/campushub/campushub/internal/domain/models"
	"github.com/campushub/campushub/internal/testutil"
)

func newTestHandler() (*food.Handler, *testutil.NotifyRecorder) {
	rec := &testutil.NotifyRecorder{}
	h := food.NewHandler(vendorstore.New([]models.FoodVendor{testutil.SampleVendor()}), rec, zap.NewNop())
	return h, rec
}

func TestListVendors(t *testing.T) {
	h, _ := newTestHandler()
	router := food.Routes(h)

	req := testutil.NewRequest("GET", "/vendors")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var vendors []models.FoodVendor
	if err := json.Unmarshal(rec.Body.Bytes(), &vendors); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(vendors) != 1 {
		t.Fatalf("expected 1 vendor, got %d", len(vendors))
	}
	if len(vendors[0].Menu) != 4 {
		t.Errorf("expected full menu, got %d items", len(vendors[0].Menu))
	}
}

func TestOrder(t *testing.T) {
	h, notifier := newTestHandler()
	router := food.Routes(h)

	body := `{"items":[{"item_id":"item-1","quantity":1},{"item_id":"item-4","quantity":2}]}`
	req := testutil.NewJSONRequest("POST", "/vendors/vendor-1/orders", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var order vendorstore.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(order.Items) != 2 {
		t.Errorf("expected 2 order lines, got %d", len(order.Items))
	}

	n, ok := notifier.Last()
	if !ok {
		t.Fatal("expected a notification")
	}
	if n.Title != "Order placed successfully!" {
		t.Errorf("notification title: got %q", n.Title)
	}
	// 7.99 + 2*5.99 = 19.97
	want := "Your order from Campus Café for $19.97 has been placed."
	if n.Description != want {
		t.Errorf("notification description: got %q, want %q", n.Description, want)
	}
}

func TestOrder_EmptyItems(t *testing.T) {
	h, notifier := newTestHandler()
	router := food.Routes(h)

	req := testutil.NewJSONRequest("POST", "/vendors/vendor-1/orders", `{"items":[]}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if notifier.Count() != 0 {
		t.Error("rejected order must not notify")
	}
}

func TestOrder_BadQuantity(t *testing.T) {
	h, _ := newTestHandler()
	router := food.Routes(h)

	req := testutil.NewJSONRequest("POST", "/vendors/vendor-1/orders", `{"items":[{"item_id":"item-1","quantity":0}]}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestOrder_VendorNotFound(t *testing.T) {
	h, _ := newTestHandler()
	router := food.Routes(h)

	req := testutil.NewJSONRequest("POST", "/vendors/missing/orders", `{"items":[{"item_id":"item-1","quantity":1}]}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}
