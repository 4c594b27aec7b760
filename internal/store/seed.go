package store

import (
	"log"

	"github.com/oseuis57/web-ecovision/internal/model"
)

// demoDrafts mirrors the Lima-area sample incidents the map ships with
// for demos.
var demoDrafts = []struct {
	draft  model.SubmitReportRequest
	status model.Status
}{
	{
		draft: model.SubmitReportRequest{
			Type:        model.TypeWater,
			Level:       model.LevelCritical,
			Description: "Río contaminado con residuos sólidos y plásticos",
			Location:    model.Location{Latitude: -12.0464, Longitude: -77.0428, Address: "Cercado de Lima, Lima"},
		},
		status: model.StatusPending,
	},
	{
		draft: model.SubmitReportRequest{
			Type:        model.TypeWater,
			Level:       model.LevelHigh,
			Description: "Agua estancada contaminada con desechos plásticos",
			Location:    model.Location{Latitude: -12.0565, Longitude: -77.1181, Address: "Callao, Provincia Constitucional del Callao"},
		},
		status: model.StatusInProgress,
	},
	{
		draft: model.SubmitReportRequest{
			Type:        model.TypeAir,
			Level:       model.LevelCritical,
			Description: "Quema de residuos sólidos generando humo tóxico",
			Location:    model.Location{Latitude: -11.9932, Longitude: -76.9976, Address: "San Juan de Lurigancho, Lima"},
		},
		status: model.StatusPending,
	},
	{
		draft: model.SubmitReportRequest{
			Type:        model.TypeSolidWaste,
			Level:       model.LevelHigh,
			Description: "Acumulación de basura en espacio público",
			Location:    model.Location{Latitude: -12.2127, Longitude: -76.9388, Address: "Villa El Salvador, Lima"},
		},
		status: model.StatusResolved,
	},
}

// SeedDemoData loads the sample incidents. Intended for local runs
// behind the SEED_DEMO_DATA flag.
func (s *Store) SeedDemoData() {
	for _, d := range demoDrafts {
		report, err := s.Submit(d.draft)
		if err != nil {
			log.Printf("seed: failed to submit demo report: %v", err)
			continue
		}
		if d.status != model.StatusPending {
			if _, err := s.UpdateStatus(report.ID, d.status); err != nil {
				log.Printf("seed: failed to set demo report status: %v", err)
			}
		}
	}
	log.Printf("seed: loaded %d demo reports", len(demoDrafts))
}
