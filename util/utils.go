package util

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/twpayne/go-polyline"
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func FormatTime(format string, t time.Time) string {
	return t.Format(format)
}

// EncodeOverlay packs (lat, lng) pairs into a Google encoded polyline,
// the compact payload map overlays fetch instead of full report
// bodies.
func EncodeOverlay(coords [][]float64) string {
	return string(polyline.EncodeCoords(coords))
}

// DecodeOverlay is the inverse of EncodeOverlay.
func DecodeOverlay(shape string) ([][]float64, error) {
	decoded, _, err := polyline.DecodeCoords([]byte(shape))
	if err != nil {
		log.Println("error decoding polyline: ", err)
		return nil, fmt.Errorf("failed to decode polyline %w", err)
	}
	return decoded, nil
}
