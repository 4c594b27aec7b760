package stats

import (
	"sort"

	"github.com/oseuis57/web-ecovision/internal/model"
)

// TypeCount is one row of the by-type breakdown. Share is the fraction
// of the total (0 when the store is empty, never NaN).
type TypeCount struct {
	Type  model.PollutionType `json:"type"`
	Count int                 `json:"count"`
	Share float64             `json:"share"`
}

// Summary is the triage dashboard headline: totals, counts per status
// (zero counts included), the critical-severity count, and the by-type
// breakdown sorted by frequency.
type Summary struct {
	Total    int                  `json:"total"`
	ByStatus map[model.Status]int `json:"by_status"`
	Critical int                  `json:"critical"`
	ByType   []TypeCount          `json:"by_type"`
}

// Compute derives a Summary from a report snapshot. It is a pure
// recomputation on every call; with the small report volumes in play
// that is simpler to trust than incrementally maintained counters.
func Compute(reports []model.Report) Summary {
	summary := Summary{
		Total:    len(reports),
		ByStatus: make(map[model.Status]int, len(model.Statuses())),
	}
	for _, status := range model.Statuses() {
		summary.ByStatus[status] = 0
	}

	counts := make(map[model.PollutionType]int)
	var order []model.PollutionType
	for _, r := range reports {
		summary.ByStatus[r.Status]++
		if r.Level == model.LevelCritical {
			summary.Critical++
		}
		if counts[r.Type] == 0 {
			order = append(order, r.Type)
		}
		counts[r.Type]++
	}

	summary.ByType = make([]TypeCount, 0, len(order))
	for _, t := range order {
		row := TypeCount{Type: t, Count: counts[t]}
		if summary.Total > 0 {
			row.Share = float64(row.Count) / float64(summary.Total)
		}
		summary.ByType = append(summary.ByType, row)
	}
	// Descending by count; ties keep encounter order.
	sort.SliceStable(summary.ByType, func(i, j int) bool {
		return summary.ByType[i].Count > summary.ByType[j].Count
	})

	return summary
}
