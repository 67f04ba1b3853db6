package storage

import "database/sql"

// Row models mirroring the persisted schema.

type User struct {
	ID          int64
	Name        string
	Age         int64
	Weight      float64
	Height      float64
	HealthNotes sql.NullString
}

type Activity struct {
	ID              int64
	UserID          int64
	Type            string
	DurationMinutes int64
	Intensity       string
	ActivityDate    string
}

// WeeklyTotals carries the aggregate row of the weekly summary query.
type WeeklyTotals struct {
	TotalMinutes int64
	DaysCount    int64
}
