package model

// MonthNames are indexed 0..11.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the name for a 1-based month, or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthNames[month-1]
}

// MonthAbbrev returns the three-letter name for a 1-based month.
func MonthAbbrev(month int) string {
	n := MonthName(month)
	if len(n) < 3 {
		return n
	}
	return n[:3]
}

// ValidMonth reports whether month is in 1..12.
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}
