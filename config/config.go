package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

// Config carries every tunable of the engine. The projection center,
// origin and scale default to the Lima reference frame the map was
// tuned against; they are configuration, not law.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	CenterLat       float64 `env:"MAP_CENTER_LAT" envDefault:"-12.0464"`
	CenterLng       float64 `env:"MAP_CENTER_LNG" envDefault:"-77.0428"`
	ProjectionScale float64 `env:"MAP_PROJECTION_SCALE" envDefault:"2000"`
	OriginX         float64 `env:"MAP_ORIGIN_X" envDefault:"50"`
	OriginY         float64 `env:"MAP_ORIGIN_Y" envDefault:"50"`

	ZoomMin         float64 `env:"VIEWPORT_ZOOM_MIN" envDefault:"0.5"`
	ZoomMax         float64 `env:"VIEWPORT_ZOOM_MAX" envDefault:"3.0"`
	WheelZoomStep   float64 `env:"VIEWPORT_WHEEL_ZOOM_STEP" envDefault:"0.1"`
	ButtonZoomStep  float64 `env:"VIEWPORT_BUTTON_ZOOM_STEP" envDefault:"0.2"`
	MarkerHitRadius float64 `env:"VIEWPORT_MARKER_HIT_RADIUS" envDefault:"24"`

	ClassifyLatency time.Duration `env:"CLASSIFY_LATENCY" envDefault:"2s"`

	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"false"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}
