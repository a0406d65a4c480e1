package client

import "time"

// ===============================
// Schema generations
// ===============================

// Generation identifies which of the two coexisting client schemas a
// record or request belongs to. They are not interoperable.
type Generation string

const (
	// Partitioned records are keyed by (CD, Cliente).
	Partitioned Generation = "cd"
	// Legacy records are keyed by codigo alone.
	Legacy Generation = "legacy"
)

func ParseGeneration(s string) (Generation, bool) {
	switch Generation(s) {
	case Partitioned:
		return Partitioned, true
	case Legacy:
		return Legacy, true
	}
	return "", false
}

// ===============================
// Record
// ===============================

// Key is the identity of a client inside its generation.
type Key struct {
	CD   string
	Code string
}

// Commercial holds the known optional commercial attributes. They are
// carried as the spreadsheet wrote them, without stricter typing.
type Commercial struct {
	ZT              string
	COM             string
	ZonaVenta       string
	Distrito        string
	EntregaFREE     string
	DiaFlex         string
	ValorMinimoFlex string
	ValorFlex       string
	Cerveza         string
	NABS            string
	MKP             string
	Cobro           string
	NPS             string
}

// Provenance records which import produced the current version of a record.
type Provenance struct {
	Archivo         string    `json:"archivo"`
	Plantilla       string    `json:"plantilla,omitempty"`
	TemplateVersion string    `json:"version,omitempty"`
	RunID           string    `json:"runId,omitempty"`
	ImportadoEn     time.Time `json:"importadoEn"`
}

// Record is a client document. Lat and Lng keep the stored text; they are
// parsed at the lookup boundary because stored values may come from
// differently formatted cells.
type Record struct {
	CD           string
	Code         string
	Name         string
	Neighborhood string
	City         string
	Phone        string

	Lat string
	Lng string

	Commercial Commercial
	Extras     map[string]any

	Source    Provenance
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Record) Key() Key {
	return Key{CD: r.CD, Code: r.Code}
}
