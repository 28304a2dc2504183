package render

import "testing"

func TestFormatDateRange(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		end     string
		current bool
		want    string
	}{
		{"finished", "Jan 2020", "Mar 2022", false, "Jan 2020 - Mar 2022"},
		{"current ignores end date", "Jan 2020", "Mar 2022", true, "Jan 2020 - Present"},
		{"current without end date", "Jan 2020", "", true, "Jan 2020 - Present"},
		{"empty end date", "Jan 2020", "", false, "Jan 2020 - "},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FormatDateRange(c.start, c.end, c.current); got != c.want {
				t.Errorf("FormatDateRange(%q, %q, %v) = %q, want %q", c.start, c.end, c.current, got, c.want)
			}
		})
	}
}
