package importer

import (
	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
	"github.com/BruksfildServices01/mapa-clientes/internal/template"
)

// field is one logical column. names lists the template mapping keys that
// may rename it, partitioned name first; header is used when none is mapped.
type field struct {
	names  []string
	header string
	set    func(rec *domain.Record, v string)
}

// Resolved header for the field under tpl.
func (f field) headerIn(tpl *template.Template) string {
	return tpl.Header(f.header, f.names...)
}

func (f field) key() string {
	return f.names[0]
}

var (
	fieldCD        = field{names: []string{"CD", "cd"}, header: "CD"}
	fieldCode      = field{names: []string{"Cliente", "codigo"}, header: "Cliente"}
	fieldName      = field{names: []string{"Nombre", "nombre"}, header: "Nombre"}
	fieldLatitude  = field{names: []string{"Latitud", "lat"}, header: "Latitud"}
	fieldLongitude = field{names: []string{"Longitud", "lng"}, header: "Longitud"}
)

var descriptiveFields = []field{
	{names: []string{"Barrio", "barrio"}, header: "Barrio", set: func(r *domain.Record, v string) { r.Neighborhood = v }},
	{names: []string{"Poblacion", "poblacion"}, header: "Poblacion", set: func(r *domain.Record, v string) { r.City = v }},
	{names: []string{"Telefono", "telefono"}, header: "Telefono", set: func(r *domain.Record, v string) { r.Phone = v }},
}

// Commercial columns are typed fields in the partitioned schema and extras
// in the legacy one.
var commercialFields = []field{
	{names: []string{"ZT"}, header: "ZT", set: func(r *domain.Record, v string) { r.Commercial.ZT = v }},
	{names: []string{"COM"}, header: "COM", set: func(r *domain.Record, v string) { r.Commercial.COM = v }},
	{names: []string{"ZonaVenta"}, header: "ZonaVenta", set: func(r *domain.Record, v string) { r.Commercial.ZonaVenta = v }},
	{names: []string{"Distrito"}, header: "Distrito", set: func(r *domain.Record, v string) { r.Commercial.Distrito = v }},
	{names: []string{"EntregaFREE"}, header: "EntregaFREE", set: func(r *domain.Record, v string) { r.Commercial.EntregaFREE = v }},
	{names: []string{"DiaFlex"}, header: "DiaFlex", set: func(r *domain.Record, v string) { r.Commercial.DiaFlex = v }},
	{names: []string{"ValorMinimoFlex"}, header: "ValorMinimoFlex", set: func(r *domain.Record, v string) { r.Commercial.ValorMinimoFlex = v }},
	{names: []string{"ValorFlex"}, header: "ValorFlex", set: func(r *domain.Record, v string) { r.Commercial.ValorFlex = v }},
	{names: []string{"Cerveza"}, header: "Cerveza", set: func(r *domain.Record, v string) { r.Commercial.Cerveza = v }},
	{names: []string{"NABS"}, header: "NABS", set: func(r *domain.Record, v string) { r.Commercial.NABS = v }},
	{names: []string{"MKP"}, header: "MKP", set: func(r *domain.Record, v string) { r.Commercial.MKP = v }},
	{names: []string{"Cobro"}, header: "Cobro", set: func(r *domain.Record, v string) { r.Commercial.Cobro = v }},
	{names: []string{"NPS"}, header: "NPS", set: func(r *domain.Record, v string) { r.Commercial.NPS = v }},
}

// fieldsFor lists every field the builder reads for gen, identity first.
func fieldsFor(gen domain.Generation) []field {
	var out []field
	if gen == domain.Partitioned {
		out = append(out, fieldCD)
	}
	out = append(out, fieldCode, fieldName, fieldLatitude, fieldLongitude)
	out = append(out, descriptiveFields...)
	return append(out, commercialFields...)
}

// Headers is the resolved header of every column an import of gen reads
// under tpl, extras excluded.
func Headers(gen domain.Generation, tpl *template.Template) []string {
	fields := fieldsFor(gen)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.headerIn(tpl))
	}
	return out
}

// Check validates a header row the way Run does before writing anything.
func Check(gen domain.Generation, tpl *template.Template, headers []string) template.Report {
	return template.Validate(tpl, headers, Headers(gen, tpl)...)
}
