package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	keyStartDate = "start_date"
	keyCategory  = "category"

	// DefaultStartDays is how many days back the start date sits when none
	// has been chosen yet.
	DefaultStartDays = 28
)

// Category picks the background color. It has no other effect.
type Category string

const (
	CategoryMale    Category = "male"
	CategoryFemale  Category = "female"
	CategoryUnknown Category = "unknown"
)

// Categories lists every category in selector order.
func Categories() []Category {
	return []Category{CategoryMale, CategoryFemale, CategoryUnknown}
}

// ParseCategory maps anything that is not a known category to unknown.
func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryMale, CategoryFemale:
		return c
	}
	return CategoryUnknown
}

// ValidCategory reports whether s names a category exactly.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryMale, CategoryFemale, CategoryUnknown:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Preferences is the typed view over the settings table. The start date
// default is computed once and reused for the life of the value.
type Preferences struct {
	store *Store
	now   func() time.Time

	defaultStart *time.Time
}

func NewPreferences(s *Store) *Preferences {
	return &Preferences{store: s, now: time.Now}
}

// WithClock swaps the time source used for the default start date.
func (p *Preferences) WithClock(now func() time.Time) *Preferences {
	p.now = now
	return p
}

// StartDate returns the stored start date, or now minus 28 days when none
// is stored or the stored value cannot be read.
func (p *Preferences) StartDate() (time.Time, error) {
	raw, err := p.store.GetSetting(keyStartDate)
	switch {
	case errors.Is(err, ErrNotFound):
		return p.fallbackStart(), nil
	case err != nil:
		return time.Time{}, err
	}

	ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return p.fallbackStart(), nil
	}
	return time.UnixMilli(ms), nil
}

// StartDateSet reports whether a start date has been stored.
func (p *Preferences) StartDateSet() (bool, error) {
	_, err := p.store.GetSetting(keyStartDate)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (p *Preferences) SetStartDate(t time.Time) error {
	if err := p.store.SetSetting(keyStartDate, strconv.FormatInt(t.UnixMilli(), 10)); err != nil {
		return fmt.Errorf("save start date: %w", err)
	}
	return nil
}

// Reset forgets both choices. The next read falls back to the defaults.
func (p *Preferences) Reset() error {
	for _, key := range []string{keyStartDate, keyCategory} {
		if err := p.store.DeleteSetting(key); err != nil {
			return fmt.Errorf("reset preferences: %w", err)
		}
	}
	p.defaultStart = nil
	return nil
}

func (p *Preferences) fallbackStart() time.Time {
	if p.defaultStart == nil {
		d := p.now().AddDate(0, 0, -DefaultStartDays)
		p.defaultStart = &d
	}
	return *p.defaultStart
}

// Category returns the stored category, unknown when absent.
func (p *Preferences) Category() (Category, error) {
	raw, err := p.store.GetSetting(keyCategory)
	switch {
	case errors.Is(err, ErrNotFound):
		return CategoryUnknown, nil
	case err != nil:
		return CategoryUnknown, err
	}
	return ParseCategory(raw), nil
}

func (p *Preferences) SetCategory(c Category) error {
	if err := p.store.SetSetting(keyCategory, ParseCategory(string(c)).String()); err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}
