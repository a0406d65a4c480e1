package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToStr returns "" for nil and the trimmed string form of anything else.
func ToStr(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case *string:
		if t == nil {
			return ""
		}
		return strings.TrimSpace(*t)
	case float64:
		return formatFloat(t)
	case float32:
		return formatFloat(float64(t))
	case json.Number:
		return strings.TrimSpace(t.String())
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// ToNum converts a spreadsheet or JSON cell into a finite number.
// It never panics; anything that is not a finite number yields nil.
//
// Strings keep only digits, separators and signs. When both ',' and '.'
// are present the comma is the decimal point and periods group thousands
// ("1.234.567,89"); when only commas are present they group thousands
// ("12,565").
func ToNum(v any) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		return finite(t)
	case float32:
		return finite(float64(t))
	case int:
		return finite(float64(t))
	case int8:
		return finite(float64(t))
	case int16:
		return finite(float64(t))
	case int32:
		return finite(float64(t))
	case int64:
		return finite(float64(t))
	case uint:
		return finite(float64(t))
	case uint8:
		return finite(float64(t))
	case uint16:
		return finite(float64(t))
	case uint32:
		return finite(float64(t))
	case uint64:
		return finite(float64(t))
	case *float64:
		if t == nil {
			return nil
		}
		return finite(*t)
	case bool:
		return nil
	}

	s := ToStr(v)
	if s == "" {
		return nil
	}
	return parseLocale(s)
}

// Coordinate parses a latitude or longitude cell. Coordinates are never
// written with thousands separators, so a single comma and no period is a
// decimal comma ("3,4516"). Everything else follows ToNum.
func Coordinate(v any) *float64 {
	var n *float64
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
			s = strings.Replace(s, ",", ".", 1)
		}
		n = ToNum(s)
	} else {
		n = ToNum(v)
	}
	if n == nil || math.Abs(*n) > 180 {
		return nil
	}
	return n
}

// LatLng parses both coordinates of a record. ok is false unless both
// values are finite and inside the valid latitude/longitude ranges.
func LatLng(lat, lng any) (float64, float64, bool) {
	la := Coordinate(lat)
	lo := Coordinate(lng)
	if la == nil || lo == nil {
		return 0, 0, false
	}
	if math.Abs(*la) > 90 {
		return 0, 0, false
	}
	return *la, *lo, true
}

// FormatCoordinate renders a parsed coordinate the way it is persisted.
func FormatCoordinate(f float64) string {
	return formatFloat(f)
}

func parseLocale(s string) *float64 {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' || r == '+' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return nil
	}

	hasComma := strings.Contains(cleaned, ",")
	hasDot := strings.Contains(cleaned, ".")
	switch {
	case hasComma && hasDot:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case hasComma:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return finite(f)
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
