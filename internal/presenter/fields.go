package presenter

import (
	"encoding/json"

	"github.com/rotisserie/eris"
)

// chain resolves one logical field from a response object. Keys are tried
// in order on the object itself, then Extra on its nested extras map. The
// first non-nil value wins; a blank string is a value and stops the chain.
type chain struct {
	Field   string
	Keys    []string
	Extra   string
	Default any
}

// Fallback chains for the two response generations.
//
//	field            object keys                    extras key       default
//	CD               CD, cd                         CD               "-"
//	Cliente          Cliente, codigo, cliente       Cliente          "-"
//	Nombre           Nombre, nombre                 Nombre           "Sin nombre"
//	Barrio           Barrio, barrio                 Barrio           "-"
//	Poblacion        Poblacion, poblacion           Poblacion        none
//	Telefono         Telefono, telefono             Telefono         "-"
//	commercial       same name                      same name        none
var chains = []chain{
	{Field: "CD", Keys: []string{"CD", "cd"}, Extra: "CD", Default: "-"},
	{Field: "Cliente", Keys: []string{"Cliente", "codigo", "cliente"}, Extra: "Cliente", Default: "-"},
	{Field: "Nombre", Keys: []string{"Nombre", "nombre"}, Extra: "Nombre", Default: "Sin nombre"},
	{Field: "Barrio", Keys: []string{"Barrio", "barrio"}, Extra: "Barrio", Default: "-"},
	{Field: "Poblacion", Keys: []string{"Poblacion", "poblacion"}, Extra: "Poblacion"},
	{Field: "Telefono", Keys: []string{"Telefono", "telefono"}, Extra: "Telefono", Default: "-"},

	commercial("EntregaFREE"),
	commercial("DiaFlex"),
	commercial("ValorMinimoFlex"),
	commercial("ValorFlex"),
	commercial("ZonaVenta"),
	commercial("Distrito"),
	commercial("COM"),
	commercial("Cerveza"),
	commercial("NABS"),
	commercial("MKP"),
	commercial("Cobro"),
	commercial("NPS"),
}

func commercial(name string) chain {
	return chain{Field: name, Keys: []string{name}, Extra: name}
}

func (c chain) resolve(d, extras map[string]any) any {
	for _, k := range c.Keys {
		if v, ok := d[k]; ok && v != nil {
			return v
		}
	}
	if v, ok := extras[c.Extra]; ok && v != nil {
		return v
	}
	return c.Default
}

// Client is a lookup result normalized for rendering.
type Client struct {
	Fields map[string]any
	Lat    float64
	Lng    float64
}

// Get returns the resolved value of a logical field, nil when absent.
func (c Client) Get(field string) any {
	return c.Fields[field]
}

// Normalize accepts either response generation. ok is false when the
// object has no numeric lat/lng; such a client can be listed but not drawn.
func Normalize(d map[string]any) (Client, bool) {
	if d == nil {
		return Client{}, false
	}
	extras, _ := d["extras"].(map[string]any)

	c := Client{Fields: make(map[string]any, len(chains))}
	for _, ch := range chains {
		if v := ch.resolve(d, extras); v != nil {
			c.Fields[ch.Field] = v
		}
	}

	lat, latOK := d["lat"].(float64)
	lng, lngOK := d["lng"].(float64)
	if !latOK || !lngOK {
		return c, false
	}
	c.Lat, c.Lng = lat, lng
	return c, true
}

// ToMap turns a response DTO into the generic object Normalize reads.
func ToMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, eris.Wrap(err, "presenter: encode")
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, eris.Wrap(err, "presenter: decode")
	}
	return out, nil
}
