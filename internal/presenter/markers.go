package presenter

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"
)

type Marker struct {
	Code  string        `json:"codigo"`
	Lat   float64       `json:"lat"`
	Lng   float64       `json:"lng"`
	Popup template.HTML `json:"popup"`
}

// Bounds is the south-west and north-east corners of a marker set.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

type MarkerSet struct {
	Markers []Marker `json:"markers"`
	Bounds  *Bounds  `json:"bounds"`
}

// Markers builds one marker per drawable client and the box the map
// viewport is fitted to. Bounds is nil for an empty set.
func Markers(clients []Client) MarkerSet {
	set := MarkerSet{Markers: []Marker{}}
	for _, c := range clients {
		set.Markers = append(set.Markers, Marker{
			Code:  display(c.Get("Cliente")),
			Lat:   c.Lat,
			Lng:   c.Lng,
			Popup: BuildPopup(c),
		})
		set.Bounds = extend(set.Bounds, c.Lat, c.Lng)
	}
	return set
}

func extend(b *Bounds, lat, lng float64) *Bounds {
	if b == nil {
		return &Bounds{South: lat, North: lat, West: lng, East: lng}
	}
	b.South = min(b.South, lat)
	b.North = max(b.North, lat)
	b.West = min(b.West, lng)
	b.East = max(b.East, lng)
	return b
}

var codeSeparators = regexp.MustCompile(`[\n,; \t\r]+`)

// ParseCodes splits pasted or uploaded text into client codes.
func ParseCodes(text string) []string {
	out := []string{}
	for _, part := range codeSeparators.Split(text, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// StatusMessage summarises a bulk lookup for the status bar. Empty buckets
// are left out.
func StatusMessage(shown, notFound, unmappable int) string {
	msg := fmt.Sprintf("Mostrados: %d", shown)
	if notFound > 0 {
		msg += fmt.Sprintf(" | No encontrados: %d", notFound)
	}
	if unmappable > 0 {
		msg += fmt.Sprintf(" | Sin coordenadas: %d", unmappable)
	}
	return msg
}
