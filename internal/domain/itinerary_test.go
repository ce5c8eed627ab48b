package domain

import (
	"testing"
	"time"
)

func TestFormatTravelTime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00:00"},
		{2*time.Hour + 5*time.Minute + 9*time.Second, "2:05:09"},
		{49*time.Hour + 30*time.Minute, "49:30:00"},
		{90 * time.Second, "0:01:30"},
		{1500 * time.Millisecond, "0:00:01"},
	}

	for _, tt := range tests {
		if got := FormatTravelTime(tt.in); got != tt.want {
			t.Errorf("FormatTravelTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
