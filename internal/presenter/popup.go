package presenter

import (
	"bytes"
	"html/template"

	"github.com/BruksfildServices01/mapa-clientes/internal/normalize"
)

type label struct {
	field string
	text  string
	money bool
}

var (
	operationalLabels = []label{
		{field: "Cliente", text: "Cliente"},
		{field: "Nombre", text: "Nombre"},
		{field: "Barrio", text: "Barrio"},
		{field: "Poblacion", text: "Población"},
		{field: "Telefono", text: "Teléfono"},
		{field: "EntregaFREE", text: "Día entrega"},
	}
	valueLabels = []label{
		{field: "DiaFlex", text: "Día Flex"},
		{field: "ValorMinimoFlex", text: "Pedido mínimo", money: true},
		{field: "ValorFlex", text: "Valor Flex", money: true},
	}
	commercialLabels = []label{
		{field: "ZonaVenta", text: "Zona Venta"},
		{field: "Distrito", text: "Distrito"},
		{field: "COM", text: "COM"},
		{field: "Cerveza", text: "Cerveza"},
		{field: "NABS", text: "NABS"},
		{field: "MKP", text: "MKP"},
	}
)

var popupTmpl = template.Must(template.New("popup").Parse(
	`<div style="min-width:260px">` +
		`{{range $i, $section := .}}` +
		`{{if $i}}<div style="border-top:1px dashed #999;margin:8px 0;"></div>{{end}}` +
		`{{range $section}}<b>{{.Label}}:</b> {{.Value}}<br/>{{end}}` +
		`{{end}}` +
		`</div>`,
))

type popupLine struct {
	Label string
	Value string
}

// BuildPopup renders the information popup of a marker. Cliente is always
// shown; every other field only when it has a non-blank value. CD and
// coordinates are never shown.
func BuildPopup(c Client) template.HTML {
	sections := [][]popupLine{
		lines(c, operationalLabels),
		lines(c, valueLabels),
		lines(c, commercialLabels),
	}

	var buf bytes.Buffer
	if err := popupTmpl.Execute(&buf, sections); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

func lines(c Client, labels []label) []popupLine {
	var out []popupLine
	for _, l := range labels {
		v := c.Get(l.field)
		if l.field != "Cliente" && normalize.ToStr(v) == "" {
			continue
		}
		text := display(v)
		if l.money {
			text = normalize.FormatMoney(v)
		}
		out = append(out, popupLine{Label: l.text, Value: text})
	}
	return out
}

func display(v any) string {
	s := normalize.ToStr(v)
	if s == "" {
		return normalize.Placeholder
	}
	return s
}
