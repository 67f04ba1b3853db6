package report

import (
	"fmt"

	"bemviver/internal/core"
)

// Header is the user/period block every report carries, already shaped
// for display. HasUser distinguishes "no profile saved" from a profile
// with empty fields.
type Header struct {
	HasUser     bool
	Name        string
	Age         int
	WeightKg    float64
	HeightM     float64 // stored centimeters converted back to meters
	HealthNotes string
	PeriodStart string
	PeriodEnd   string
}

// Row is one activity shaped for rendering.
type Row struct {
	ID              int64
	Date            string
	Type            string
	DurationMinutes int
	Intensity       string
}

// Bundle is a self-contained, ready-to-render report. Assembling it is a
// pure transformation; renderers never reach back into the store.
type Bundle struct {
	Header Header
	Rows   []Row
}

// Assemble shapes an optional user and an already filtered, already
// ordered activity slice into a Bundle. An empty activity slice still
// produces the header block with zero rows.
func Assemble(user *core.User, activities []core.Activity, periodStart, periodEnd core.Date) Bundle {
	h := Header{
		PeriodStart: periodStart.ISO(),
		PeriodEnd:   periodEnd.ISO(),
	}
	if user != nil {
		h.HasUser = true
		h.Name = user.Name
		h.Age = user.Age
		h.WeightKg = user.WeightKg
		h.HeightM = user.HeightMeters()
		h.HealthNotes = user.HealthNotes
	}

	rows := make([]Row, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, Row{
			ID:              a.ID,
			Date:            a.Date.ISO(),
			Type:            a.Type,
			DurationMinutes: a.DurationMinutes,
			Intensity:       string(a.Intensity),
		})
	}

	return Bundle{Header: h, Rows: rows}
}

// DurationText renders the duration the way the PDF table shows it.
func (r Row) DurationText() string {
	return fmt.Sprintf("%d min", r.DurationMinutes)
}
