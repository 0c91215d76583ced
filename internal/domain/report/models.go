package report

import "time"

type Summary struct {
	TotalIncome   float64 `json:"TotalIncome"`
	TotalExpenses float64 `json:"TotalExpenses"`
}

type CategoryTotal struct {
	Name  string  `json:"Name"`
	Total float64 `json:"Total"`
}

type Dashboard struct {
	Summary           Summary         `json:"summary"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown"`
	TotalBalance      float64         `json:"totalBalance"`
}

// MonthStart returns midnight on the first day of t's month, in t's location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
