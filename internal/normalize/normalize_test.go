package normalize

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStr(t *testing.T) {
	assert.Equal(t, "", ToStr(nil))
	assert.Equal(t, "", ToStr("   "))
	assert.Equal(t, "AV46", ToStr("  AV46 "))
	assert.Equal(t, "12565416", ToStr(float64(12565416)))
	assert.Equal(t, "3.4516", ToStr(3.4516))
	assert.Equal(t, "42", ToStr(42))
	assert.Equal(t, "7", ToStr(json.Number("7")))
}

func TestToNum(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *float64
	}{
		{"nil", nil, nil},
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"int", 12, ptr(12)},
		{"float", 3.5, ptr(3.5)},
		{"nan", math.NaN(), nil},
		{"inf", math.Inf(1), nil},
		{"plain string", "1500", ptr(1500)},
		{"decimal point", "3.4516", ptr(3.4516)},
		{"comma and period", "1.234.567,89", ptr(1234567.89)},
		{"only commas", "12,565", ptr(12565)},
		{"many commas", "1,234,567", ptr(1234567)},
		{"currency noise", "$ 250.000,50 COP", ptr(250000.50)},
		{"negative", "-76.532", ptr(-76.532)},
		{"garbage", "sin dato", nil},
		{"sign only", "-", nil},
		{"two decimals", "1.2.3", nil},
		{"bool", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNum(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestToNum_NeverPanics(t *testing.T) {
	inputs := []any{struct{}{}, []string{"a"}, map[string]any{}, ",", ".", ",.", "++--", "1e999", "٣"}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ToNum(in) })
	}
}

func TestCoordinate(t *testing.T) {
	got := Coordinate("3,4516")
	require.NotNil(t, got)
	assert.InDelta(t, 3.4516, *got, 1e-9)

	got = Coordinate(" -76.5320 ")
	require.NotNil(t, got)
	assert.InDelta(t, -76.532, *got, 1e-9)

	got = Coordinate(-76.5)
	require.NotNil(t, got)
	assert.InDelta(t, -76.5, *got, 1e-9)

	assert.Nil(t, Coordinate("N/A"))
	assert.Nil(t, Coordinate(""))
	assert.Nil(t, Coordinate("1,612,946"))
}

func TestLatLng(t *testing.T) {
	lat, lng, ok := LatLng("3.4516", "-76.532")
	require.True(t, ok)
	assert.InDelta(t, 3.4516, lat, 1e-9)
	assert.InDelta(t, -76.532, lng, 1e-9)

	_, _, ok = LatLng("abc", "-76.532")
	assert.False(t, ok)

	_, _, ok = LatLng("3.45", nil)
	assert.False(t, ok)

	_, _, ok = LatLng("95", "-76.5")
	assert.False(t, ok, "latitude out of range")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, Placeholder, FormatMoney(nil))
	assert.Equal(t, Placeholder, FormatMoney(""))
	assert.Equal(t, "$ 150.000", FormatMoney("150000"))
	assert.Equal(t, "$ 1.234.568", FormatMoney("1.234.567,89"))
	assert.Equal(t, "-$ 25.000", FormatMoney(-25000))
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "zona venta", Header("  Zona   VENTA "))
	assert.Equal(t, Header("latitud"), Header("LATITUD"))
	assert.Equal(t, "", Header("   "))
}

func ptr(f float64) *float64 { return &f }
