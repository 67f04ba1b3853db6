package core

// WeekRange is a Monday-to-Sunday calendar week.
type WeekRange struct {
	Start Date // Monday
	End   Date // Sunday
}

// WeekOf returns the Monday-Sunday week containing ref. Week start is
// Monday regardless of locale: with Sunday=0..Saturday=6, the offset back
// to Monday is (dow+6) mod 7.
func WeekOf(ref Date) WeekRange {
	offset := (int(ref.Weekday()) + 6) % 7
	start := ref.AddDays(-offset)
	return WeekRange{Start: start, End: start.AddDays(6)}
}
