package render

// FormatDateRange renders the date span of an experience or education
// entry. A current entry always ends in "Present", whatever endDate was
// supplied alongside it. Dates are opaque display strings at this layer.
func FormatDateRange(startDate, endDate string, current bool) string {
	if current {
		return startDate + " - Present"
	}
	return startDate + " - " + endDate
}
