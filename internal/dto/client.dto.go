package dto

import domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"

// ClientDTO is the flat shape of a partitioned client. CD, lat and lng are
// carried for the map; the popup never shows them.
type ClientDTO struct {
	CD        string  `json:"CD"`
	Cliente   string  `json:"Cliente"`
	Nombre    string  `json:"Nombre"`
	Barrio    string  `json:"Barrio"`
	Poblacion string  `json:"Poblacion"`
	Telefono  string  `json:"Telefono"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`

	EntregaFREE     string `json:"EntregaFREE"`
	DiaFlex         string `json:"DiaFlex"`
	ValorMinimoFlex string `json:"ValorMinimoFlex"`
	ValorFlex       string `json:"ValorFlex"`
	ZonaVenta       string `json:"ZonaVenta"`
	Distrito        string `json:"Distrito"`
	COM             string `json:"COM"`
	Cerveza         string `json:"Cerveza"`
	NABS            string `json:"NABS"`
	MKP             string `json:"MKP"`
	Cobro           string `json:"Cobro"`
	NPS             string `json:"NPS"`
	ZT              string `json:"ZT"`
}

// LegacyClientDTO keeps the flat legacy field names with everything else
// nested under extras.
type LegacyClientDTO struct {
	Codigo    string         `json:"codigo"`
	Nombre    string         `json:"nombre"`
	Barrio    string         `json:"barrio"`
	Poblacion string         `json:"poblacion"`
	Telefono  string         `json:"telefono"`
	Lat       float64        `json:"lat"`
	Lng       float64        `json:"lng"`
	Extras    map[string]any `json:"extras,omitempty"`
}

type UnmappableDTO struct {
	Error   string `json:"error"`
	Code    string `json:"error_code"`
	CD      string `json:"CD"`
	Cliente string `json:"Cliente"`
}

type LegacyUnmappableDTO struct {
	Error  string `json:"error"`
	Code   string `json:"error_code"`
	Codigo string `json:"codigo"`
}

type ClientBulkDTO struct {
	CD               string      `json:"cd"`
	TotalSolicitados int         `json:"totalSolicitados"`
	TotalEncontrados int         `json:"totalEncontrados"`
	TotalMostrables  int         `json:"totalMostrables"`
	NoEncontrados    []string    `json:"noEncontrados"`
	SinCoordenadas   []string    `json:"sinCoordenadas"`
	Clientes         []ClientDTO `json:"clientes"`
}

type LegacyBulkDTO struct {
	TotalSolicitados int               `json:"totalSolicitados"`
	TotalEncontrados int               `json:"totalEncontrados"`
	TotalMostrables  int               `json:"totalMostrables"`
	NoEncontrados    []string          `json:"noEncontrados"`
	SinCoordenadas   []string          `json:"sinCoordenadas"`
	Clientes         []LegacyClientDTO `json:"clientes"`
}

func NewClientDTO(rec domain.Record, lat, lng float64) ClientDTO {
	c := rec.Commercial
	return ClientDTO{
		CD:        rec.CD,
		Cliente:   rec.Code,
		Nombre:    rec.Name,
		Barrio:    rec.Neighborhood,
		Poblacion: rec.City,
		Telefono:  rec.Phone,
		Lat:       lat,
		Lng:       lng,

		EntregaFREE:     c.EntregaFREE,
		DiaFlex:         c.DiaFlex,
		ValorMinimoFlex: c.ValorMinimoFlex,
		ValorFlex:       c.ValorFlex,
		ZonaVenta:       c.ZonaVenta,
		Distrito:        c.Distrito,
		COM:             c.COM,
		Cerveza:         c.Cerveza,
		NABS:            c.NABS,
		MKP:             c.MKP,
		Cobro:           c.Cobro,
		NPS:             c.NPS,
		ZT:              c.ZT,
	}
}

func NewLegacyClientDTO(rec domain.Record, lat, lng float64) LegacyClientDTO {
	return LegacyClientDTO{
		Codigo:    rec.Code,
		Nombre:    rec.Name,
		Barrio:    rec.Neighborhood,
		Poblacion: rec.City,
		Telefono:  rec.Phone,
		Lat:       lat,
		Lng:       lng,
		Extras:    rec.Extras,
	}
}
