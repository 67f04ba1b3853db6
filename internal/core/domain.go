package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	Light    Intensity = "leve"
	Moderate Intensity = "moderada"
	Intense  Intensity = "intensa"
)

type (
	Intensity string

	// Date is a calendar date with no time component. The underlying time
	// is always midnight UTC so date arithmetic stays locale independent.
	Date struct {
		time.Time
	}

	User struct {
		ID          int64
		Name        string
		Age         int
		WeightKg    float64
		HeightCm    int // stored in centimeters, collected in meters
		HealthNotes string
	}

	Activity struct {
		ID              int64
		UserID          int64
		Type            string
		DurationMinutes int
		Intensity       Intensity
		Date            Date
	}
)

var (
	ErrEmptyName        = errors.New("empty name")
	ErrInvalidAge       = errors.New("invalid age")
	ErrInvalidWeight    = errors.New("invalid weight")
	ErrInvalidHeight    = errors.New("invalid height")
	ErrEmptyType        = errors.New("empty activity type")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidIntensity = errors.New("invalid intensity")
	ErrInvalidDate      = errors.New("invalid date")

	// ErrUserNotFound signals that no profile has been saved yet.
	ErrUserNotFound = errors.New("user not found")
	// ErrProfileRequired signals an activity referencing a missing user.
	ErrProfileRequired = errors.New("profile required")
	// ErrNoActivities signals an export attempted over an empty period.
	ErrNoActivities = errors.New("no activities in period")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ISO renders the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (i Intensity) Valid() bool {
	switch i {
	case Light, Moderate, Intense:
		return true
	}
	return false
}

// HeightCmFromMeters converts a height collected in meters to the stored
// centimeter value: round(m × 100).
func HeightCmFromMeters(m float64) int {
	return int(math.Round(m * 100))
}

// HeightMeters returns the stored height converted back to meters for display.
func (u User) HeightMeters() float64 {
	return float64(u.HeightCm) / 100
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	if u.Age <= 0 {
		return ErrInvalidAge
	}
	if u.WeightKg <= 0 {
		return ErrInvalidWeight
	}
	if u.HeightCm <= 0 {
		return ErrInvalidHeight
	}
	return nil
}

func (a Activity) Validate() error {
	if strings.TrimSpace(a.Type) == "" {
		return ErrEmptyType
	}
	if a.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if !a.Intensity.Valid() {
		return ErrInvalidIntensity
	}
	if err := a.Date.Validate(); err != nil {
		return err
	}
	return nil
}
