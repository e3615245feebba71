package dateformat

// OrdinalSuffix is the English ordinal suffix for a day of the month.
// 11, 12 and 13 take "th".
func OrdinalSuffix(day int) string {
	switch day {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	default:
		return "th"
	}
}
