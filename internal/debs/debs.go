package deps

import (
	"github.com/oseuis57/web-ecovision/config"
	"github.com/oseuis57/web-ecovision/internal/classify"
	"github.com/oseuis57/web-ecovision/internal/geo"
	"github.com/oseuis57/web-ecovision/internal/store"
	"github.com/oseuis57/web-ecovision/internal/viewport"
	"github.com/oseuis57/web-ecovision/util/websockets"
)

type Dependencies struct {
	Store      *store.Store
	Classifier *classify.Service
	Projector  geo.Projector
	Viewports  *viewport.Manager
	WebSocket  *websockets.WebSocketManager
}

func New(cfg *config.Config) *Dependencies {
	projector := geo.Projector{
		CenterLat: cfg.CenterLat,
		CenterLng: cfg.CenterLng,
		Scale:     cfg.ProjectionScale,
		OriginX:   cfg.OriginX,
		OriginY:   cfg.OriginY,
	}

	viewports := viewport.NewManager(viewport.Options{
		ZoomMin:        cfg.ZoomMin,
		ZoomMax:        cfg.ZoomMax,
		WheelZoomStep:  cfg.WheelZoomStep,
		ButtonZoomStep: cfg.ButtonZoomStep,
		HitRadius:      cfg.MarkerHitRadius,
	})

	classifier := classify.NewService(classify.NewRandomClassifier(), cfg.ClassifyLatency)
	websocket := websockets.NewWebSocketManager()

	deps := Dependencies{
		Store:      store.New(),
		Classifier: classifier,
		Projector:  projector,
		Viewports:  viewports,
		WebSocket:  websocket,
	}
	return &deps
}
