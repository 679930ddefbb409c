package scheduling

import (
	"testing"
	"time"
)

func TestNewCatalogDefaults(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	if got, want := len(c.Slots()), len(DefaultTimeSlots); got != want {
		t.Errorf("len(Slots()) = %d, want %d", got, want)
	}
	for _, l := range DefaultTimeSlots {
		if !c.Contains(l) {
			t.Errorf("Contains(%q) = false, want true", l)
		}
	}
	if c.Contains("1:00 PM") {
		t.Error(`Contains("1:00 PM") = true, want false`)
	}
}

func TestNewCatalogRejectsBadLabels(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
	}{
		{"unparseable", []string{"9:30 AM", "half past nine"}},
		{"duplicate", []string{"9:30 AM", "9:30 AM"}},
		{"24h format", []string{"14:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.labels...); err == nil {
				t.Errorf("NewCatalog(%v) error = nil, want error", tt.labels)
			}
		})
	}
}

func TestSlotStart(t *testing.T) {
	c := MustCatalog()
	date := time.Date(2026, 3, 15, 17, 45, 0, 0, time.UTC) // time-of-day must be ignored

	tests := []struct {
		label string
		hour  int
		min   int
	}{
		{"9:30 AM", 9, 30},
		{"12:00 PM", 12, 0},
		{"12:30 PM", 12, 30},
		{"2:00 PM", 14, 0},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := c.SlotStart(date, tt.label, time.UTC)
			if err != nil {
				t.Fatalf("SlotStart() error = %v", err)
			}
			want := time.Date(2026, 3, 15, tt.hour, tt.min, 0, 0, time.UTC)
			if !got.Equal(want) {
				t.Errorf("SlotStart(%q) = %v, want %v", tt.label, got, want)
			}
		})
	}

	if _, err := c.SlotStart(date, "8:00 AM", time.UTC); err != ErrUnknownTimeSlot {
		t.Errorf("SlotStart(unknown) error = %v, want ErrUnknownTimeSlot", err)
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 7, 4, 23, 59, 59, 123, time.FixedZone("X", 3*3600))
	got := DateOnly(in)
	want := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly(%v) = %v, want %v", in, got, want)
	}
}
