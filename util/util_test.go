package util

import (
	"math"
	"testing"
	"time"
)

func TestOverlayRoundTrip(t *testing.T) {
	coords := [][]float64{
		{-12.0464, -77.0428},
		{-12.0565, -77.1181},
		{-11.9932, -76.9976},
	}

	encoded := EncodeOverlay(coords)
	if encoded == "" {
		t.Fatal("EncodeOverlay returned an empty shape")
	}

	decoded, err := DecodeOverlay(encoded)
	if err != nil {
		t.Fatalf("Decoding returned error %v", err)
	}
	if len(decoded) != len(coords) {
		t.Fatalf("decoded %d coords; want %d", len(decoded), len(coords))
	}
	for i := range coords {
		// Polyline encoding keeps 5 decimal places.
		if math.Abs(decoded[i][0]-coords[i][0]) > 1e-5 || math.Abs(decoded[i][1]-coords[i][1]) > 1e-5 {
			t.Errorf("coord %d = %v; want %v", i, decoded[i], coords[i])
		}
	}
}

func TestDecodeOverlayInvalidShape(t *testing.T) {
	if _, err := DecodeOverlay("\x01"); err == nil {
		t.Error("DecodeOverlay accepted a malformed shape")
	}
}

func TestNotBlank(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  bool
	}{
		{"Empty", "", false},
		{"Spaces only", "   ", false},
		{"Tabs and newlines", "\t\n", false},
		{"Word", "Brigada Ambiental", true},
		{"Padded word", "  x  ", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NotBlank(tc.value); got != tc.want {
				t.Errorf("NotBlank(%q) = %v; want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	testTime := time.Date(2025, 10, 2, 10, 30, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		format         string
		expectedResult string
	}{
		{"RFC3339", time.RFC3339, "2025-10-02T10:30:00Z"},
		{"Simple Date", "2006-01-02", "2025-10-02"},
		{"Date and Time", "2006-01-02 15:04:05", "2025-10-02 10:30:00"},
		{"Empty Format", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := FormatTime(tc.format, testTime)

			if result != tc.expectedResult {
				t.Errorf("FormatTime(%q, %v) = %q; want %q",
					tc.format, testTime, result, tc.expectedResult)
			}
		})
	}
}
