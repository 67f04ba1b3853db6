package core

// WeeklySummary aggregates activity within one Monday-Sunday week.
type WeeklySummary struct {
	Week         WeekRange
	TotalMinutes int // sum of duration over the week, 0 if none
	DaysCount    int // distinct activity dates in the week, 0 if none
}
