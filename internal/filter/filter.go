package filter

import (
	"github.com/oseuis57/web-ecovision/internal/model"
)

// All is the filter value that lets every report through.
const All = "all"

// Filter narrows a report sequence by pollution type before it reaches
// the viewport and list rendering. Any value is accepted: selecting a
// type no longer present in the data degrades to an empty visible set,
// not an error.
type Filter struct {
	value string
}

func New() *Filter {
	return &Filter{value: All}
}

func (f *Filter) Set(value string) {
	if value == "" {
		value = All
	}
	f.value = value
}

func (f *Filter) Value() string {
	return f.value
}

// Visible returns the reports that pass the filter, preserving the
// input order.
func (f *Filter) Visible(reports []model.Report) []model.Report {
	if f.value == All {
		return reports
	}
	visible := make([]model.Report, 0, len(reports))
	for _, r := range reports {
		if string(r.Type) == f.value {
			visible = append(visible, r)
		}
	}
	return visible
}

// Options lists the selectable filter values for the given report set:
// "all" plus each distinct type in encounter order.
func Options(reports []model.Report) []string {
	options := []string{All}
	seen := make(map[model.PollutionType]bool, len(reports))
	for _, r := range reports {
		if !seen[r.Type] {
			seen[r.Type] = true
			options = append(options, string(r.Type))
		}
	}
	return options
}
