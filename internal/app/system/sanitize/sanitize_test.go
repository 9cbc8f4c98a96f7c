package sanitize_test

import (
	"testing"

	"github.com/campushub/campushub/internal/app/system/sanitize"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello world", "hello world"},
		{"strips tags", "<script>alert('x')</script>hello", "hello"},
		{"strips markup keeps text", "<b>bold</b> move", "bold move"},
		{"trims whitespace", "  padded  ", "padded"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitize.Text(tt.input); got != tt.want {
				t.Errorf("Text(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
