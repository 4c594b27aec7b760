package stats

import (
	"testing"

	"github.com/oseuis57/web-ecovision/internal/model"
)

func TestComputeEmpty(t *testing.T) {
	summary := Compute(nil)

	if summary.Total != 0 {
		t.Errorf("Total = %d; want 0", summary.Total)
	}
	for _, status := range model.Statuses() {
		if count, ok := summary.ByStatus[status]; !ok || count != 0 {
			t.Errorf("ByStatus[%q] = %d, present=%v; want explicit 0", status, count, ok)
		}
	}
	if summary.Critical != 0 {
		t.Errorf("Critical = %d; want 0", summary.Critical)
	}
	if len(summary.ByType) != 0 {
		t.Errorf("ByType = %v; want empty", summary.ByType)
	}
}

func TestComputeScenario(t *testing.T) {
	reports := []model.Report{
		{ID: "a", Type: model.TypeWater, Level: model.LevelCritical, Status: model.StatusPending},
	}

	summary := Compute(reports)
	if summary.Total != 1 || summary.ByStatus[model.StatusPending] != 1 || summary.Critical != 1 {
		t.Errorf("after one critical pending report: total=%d pending=%d critical=%d; want 1/1/1",
			summary.Total, summary.ByStatus[model.StatusPending], summary.Critical)
	}

	reports[0].Status = model.StatusResolved
	summary = Compute(reports)
	if summary.ByStatus[model.StatusPending] != 0 || summary.ByStatus[model.StatusResolved] != 1 {
		t.Errorf("after resolving: pending=%d resolved=%d; want 0/1",
			summary.ByStatus[model.StatusPending], summary.ByStatus[model.StatusResolved])
	}
}

func TestComputeCountsSumToTotal(t *testing.T) {
	reports := []model.Report{
		{Type: model.TypeWater, Level: model.LevelCritical, Status: model.StatusPending},
		{Type: model.TypeWater, Level: model.LevelHigh, Status: model.StatusInProgress},
		{Type: model.TypeAir, Level: model.LevelCritical, Status: model.StatusPending},
		{Type: model.TypeSolidWaste, Level: model.LevelHigh, Status: model.StatusResolved},
		{Type: model.TypeAir, Level: model.LevelLow, Status: model.StatusPending},
	}

	summary := Compute(reports)

	statusSum := 0
	for _, count := range summary.ByStatus {
		statusSum += count
	}
	if statusSum != summary.Total {
		t.Errorf("ByStatus sums to %d; want total %d", statusSum, summary.Total)
	}

	typeSum := 0
	for _, row := range summary.ByType {
		typeSum += row.Count
	}
	if typeSum != summary.Total {
		t.Errorf("ByType sums to %d; want total %d", typeSum, summary.Total)
	}
}

func TestComputeByTypeSortedWithStableTies(t *testing.T) {
	reports := []model.Report{
		{Type: model.TypeNoise, Level: model.LevelLow, Status: model.StatusPending},
		{Type: model.TypeVisual, Level: model.LevelLow, Status: model.StatusPending},
		{Type: model.TypeWater, Level: model.LevelLow, Status: model.StatusPending},
		{Type: model.TypeWater, Level: model.LevelLow, Status: model.StatusPending},
	}

	summary := Compute(reports)

	want := []model.PollutionType{model.TypeWater, model.TypeNoise, model.TypeVisual}
	if len(summary.ByType) != len(want) {
		t.Fatalf("ByType has %d rows; want %d", len(summary.ByType), len(want))
	}
	for i, typ := range want {
		if summary.ByType[i].Type != typ {
			t.Errorf("ByType[%d] = %q; want %q (count-desc, encounter order on ties)",
				i, summary.ByType[i].Type, typ)
		}
	}
}

func TestComputeShare(t *testing.T) {
	reports := []model.Report{
		{Type: model.TypeWater, Level: model.LevelLow, Status: model.StatusPending},
		{Type: model.TypeWater, Level: model.LevelLow, Status: model.StatusPending},
		{Type: model.TypeAir, Level: model.LevelLow, Status: model.StatusPending},
		{Type: model.TypeSoil, Level: model.LevelLow, Status: model.StatusPending},
	}

	summary := Compute(reports)
	if got := summary.ByType[0].Share; got != 0.5 {
		t.Errorf("top type share = %v; want 0.5", got)
	}
}
