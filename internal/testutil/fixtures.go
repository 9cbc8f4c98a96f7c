package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/campushub/campushub/internal/app/system/notify"
	"github.com/campushub/campushub/internal/domain/models"
)

// Fixture entities for store and handler tests. IDs are stable so
// assertions can reference them directly.

// SampleGroup returns a study group with room for more members.
func SampleGroup() models.StudyGroup {
	return models.StudyGroup{
		ID:                  "group-1",
		Name:                "Calculus II Study Session",
		Description:         "Weekly study group for Calculus II.",
		Subject:             "Mathematics",
		Course:              "MATH 102 - Calculus II",
		DateTime:            time.Now().UTC().Add(48 * time.Hour),
		Location:            "Main Library, Room 203",
		MaxParticipants:     8,
		CurrentParticipants: 2,
		CreatedBy:           "user-2",
		Members:             []string{"user-2", "user-3"},
	}
}

// FullGroup returns a study group at capacity.
func FullGroup() models.StudyGroup {
	return models.StudyGroup{
		ID:                  "group-full",
		Name:                "Organic Chemistry Prep",
		Subject:             "Chemistry",
		Course:              "CHEM 201 - Organic Chemistry",
		DateTime:            time.Now().UTC().Add(24 * time.Hour),
		Location:            "Science Center, Room 105",
		MaxParticipants:     2,
		CurrentParticipants: 2,
		CreatedBy:           "user-7",
		Members:             []string{"user-7", "user-8"},
	}
}

// SampleDoubt returns an unresolved doubt with one answer.
func SampleDoubt() models.Doubt {
	return models.Doubt{
		ID:          "doubt-1",
		Title:       "Trouble understanding Fourier Transforms",
		Description: "How do I approach Fourier transforms intuitively?",
		Subject:     "Electrical Engineering",
		Course:      "EE 303 - Signals and Systems",
		CreatedAt:   time.Now().UTC().Add(-48 * time.Hour),
		Anonymous:   true,
		Resolved:    false,
		Answers: []models.Answer{
			{
				ID:        "answer-1-1",
				Content:   "Think of it as decomposing a chord into individual notes.",
				CreatedAt: time.Now().UTC().Add(-24 * time.Hour),
				CreatedBy: "user-5",
			},
		},
	}
}

// SampleVendor returns a vendor whose menu includes one unavailable
// item, useful for exercising order pricing.
func SampleVendor() models.FoodVendor {
	return models.FoodVendor{
		ID:           "vendor-1",
		Name:         "Campus Café",
		Description:  "Healthy, fresh options.",
		Rating:       4.3,
		CuisineType:  "Healthy/Café",
		DeliveryTime: "15-25 min",
		Menu: []models.MenuItem{
			{ID: "item-1", Name: "Avocado Toast", Price: 7.99, Category: "Breakfast", IsVegetarian: true, IsAvailable: true},
			{ID: "item-2", Name: "Greek Yogurt Bowl", Price: 6.49, Category: "Breakfast", IsVegetarian: true, IsAvailable: true},
			{ID: "item-3", Name: "Mediterranean Wrap", Price: 8.99, Category: "Lunch", IsVegetarian: true, IsAvailable: false},
			{ID: "item-4", Name: "Berry Blast Smoothie", Price: 5.99, Category: "Drinks", IsVegetarian: true, IsAvailable: true},
		},
	}
}

// SampleIncident returns a pending incident report.
func SampleIncident() models.IncidentReport {
	return models.IncidentReport{
		ID:          "incident-1",
		Type:        "Maintenance",
		Description: "Broken chair in Science Center, Room 203.",
		Location:    "Science Center, Room 203",
		DateTime:    time.Now().UTC().Add(-12 * time.Hour),
		Status:      models.IncidentPending,
		Urgency:     models.UrgencyLow,
		Anonymous:   true,
	}
}

// SampleBooks returns a small catalog: two available titles and one
// checked out.
func SampleBooks() []models.LibraryBook {
	due := time.Now().UTC().Add(7 * 24 * time.Hour)
	return []models.LibraryBook{
		{
			ID:          "book-1",
			RFIDTag:     "RFID-1001",
			Title:       "The Quantum Universe",
			Author:      "James Smith",
			ISBN:        "978-1402894626",
			Category:    "Science",
			Location:    "Floor 1, Section A",
			IsAvailable: true,
		},
		{
			ID:          "book-2",
			RFIDTag:     "RFID-1002",
			Title:       "Calculus Fundamentals",
			Author:      "Maria Johnson",
			ISBN:        "978-3796817191",
			Category:    "Mathematics",
			Location:    "Floor 2, Section A",
			IsAvailable: true,
		},
		{
			ID:          "book-3",
			RFIDTag:     "RFID-1003",
			Title:       "Modern Poetry",
			Author:      "Sara Brown",
			ISBN:        "978-2679145803",
			Category:    "Literature",
			Location:    "Floor 3, Section A",
			IsAvailable: false,
			DueDate:     &due,
		},
	}
}

// SampleBuilding returns a building with one floor and one study space.
func SampleBuilding() models.Building {
	return models.Building{
		ID:           "building-1",
		Name:         "Main Library",
		Description:  "The primary campus library.",
		Location:     models.Point{X: 120, Y: 150},
		Occupancy:    342,
		MaxOccupancy: 500,
		Floors: []models.Floor{
			{
				ID:   "floor-1-1",
				Name: "Ground Floor",
				StudySpaces: []models.StudySpace{
					{
						ID:               "space-1-1-1",
						Name:             "Quiet Study Area",
						Capacity:         50,
						CurrentOccupancy: 32,
						Amenities:        []string{"Power outlets", "Wi-Fi"},
						IsReservable:     false,
						IsAvailable:      true,
					},
				},
			},
		},
	}
}

// NotifyRecorder is a notify.Notifier that records everything it
// receives, for asserting which notifications an operation emitted.
type NotifyRecorder struct {
	mu   sync.Mutex
	Sent []notify.Notification
}

func (r *NotifyRecorder) Notify(ctx context.Context, n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Sent = append(r.Sent, n)
}

// Last returns the most recent notification and whether one exists.
func (r *NotifyRecorder) Last() (notify.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Sent) == 0 {
		return notify.Notification{}, false
	}
	return r.Sent[len(r.Sent)-1], true
}

// Count returns how many notifications were recorded.
func (r *NotifyRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Sent)
}
