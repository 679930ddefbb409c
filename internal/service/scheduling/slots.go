package scheduling

import (
	"fmt"
	"time"
)

// slotLayout parses catalog labels such as "9:30 AM".
const slotLayout = "3:04 PM"

// DefaultTimeSlots is the clinic-wide day template shared by all doctors.
// There is no per-doctor or per-specialty calendar; the catalog is fixed
// process-wide configuration.
var DefaultTimeSlots = []string{
	"9:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"11:30 AM",
	"12:00 PM",
	"12:30 PM",
	"2:00 PM",
	"2:30 PM",
}

// Catalog is the ordered set of bookable slot labels for a clinic day.
type Catalog struct {
	labels []string
	index  map[string]int
}

// NewCatalog builds a catalog from the given labels, falling back to
// DefaultTimeSlots when none are provided. Labels must parse as clock
// times ("3:04 PM").
func NewCatalog(labels ...string) (*Catalog, error) {
	if len(labels) == 0 {
		labels = DefaultTimeSlots
	}

	c := &Catalog{
		labels: make([]string, 0, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		if _, err := time.Parse(slotLayout, l); err != nil {
			return nil, fmt.Errorf("invalid time slot %q: %w", l, err)
		}
		if _, dup := c.index[l]; dup {
			return nil, fmt.Errorf("duplicate time slot %q", l)
		}
		c.labels = append(c.labels, l)
		c.index[l] = i
	}
	return c, nil
}

// MustCatalog is NewCatalog that panics on invalid labels. Intended for
// wiring with static configuration.
func MustCatalog(labels ...string) *Catalog {
	c, err := NewCatalog(labels...)
	if err != nil {
		panic(err)
	}
	return c
}

// Slots returns the catalog labels in booking order.
func (c *Catalog) Slots() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Contains reports whether the label is a bookable slot.
func (c *Catalog) Contains(label string) bool {
	_, ok := c.index[label]
	return ok
}

// SlotStart returns the wall-clock start of the slot on the given calendar
// date, in loc. The date's time-of-day component is ignored.
func (c *Catalog) SlotStart(date time.Time, label string, loc *time.Location) (time.Time, error) {
	if !c.Contains(label) {
		return time.Time{}, ErrUnknownTimeSlot
	}
	t, err := time.Parse(slotLayout, label)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time slot %q: %w", label, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// DateOnly strips the time-of-day component, pinning the calendar date at
// UTC midnight. All appointment dates are stored in this form.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
