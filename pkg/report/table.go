// Package report turns the reporting queries into display tables: a header
// row plus string cells, ready for a table renderer or a spreadsheet.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"alqualis/entities"
)

const (
	NoCooperative = "Não participa"
	NoCPF         = "Não informado"
)

type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// FormatHeader turns a column name into a header label: id columns become
// "Id" and snake_case becomes Title Case ("nome_produtor" -> "Nome Produtor").
func FormatHeader(col string) string {
	if col == "id" || strings.HasPrefix(col, "id_") {
		return "Id"
	}
	parts := strings.Split(col, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		parts[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(parts, " ")
}

func headers(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = FormatHeader(c)
	}
	return out
}

func opt(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orPlaceholder(s *string, placeholder string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return placeholder
	}
	return *s
}

func id(v int64) string { return strconv.FormatInt(v, 10) }

// RowsTable renders generic rows using cols as the column order.
func RowsTable(cols []string, rows []entities.Row) Table {
	t := Table{Header: headers(cols), Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		line := make([]string, len(cols))
		for i, c := range cols {
			line[i] = cell(r[c])
		}
		t.Rows = append(t.Rows, line)
	}
	return t
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

var producerCols = []string{"id_produtor", "nome_produtor", "cpf_produtor", "codigo_produtor", "cooperativa", "total_plantacoes"}

// ProducersTable fills the missing cooperative and CPF with placeholders.
func ProducersTable(ps []entities.ProducerReport) Table {
	t := Table{Header: headers(producerCols), Rows: make([][]string, 0, len(ps))}
	for _, p := range ps {
		t.Rows = append(t.Rows, []string{
			id(p.ID),
			p.Name,
			orPlaceholder(p.CPF, NoCPF),
			opt(p.Code),
			orPlaceholder(p.CooperativeName, NoCooperative),
			id(p.Plantations),
		})
	}
	return t
}

var plantationCols = []string{
	"id_plantacao", "nome_plantacao", "produtor", "variedade", "comunidade", "municipio",
	"latitude", "longitude", "altitude_media", "nome_talhao", "faces_exposicao", "meses_colheita",
}

func PlantationsTable(ps []entities.PlantationReport) Table {
	t := Table{Header: headers(plantationCols), Rows: make([][]string, 0, len(ps))}
	for _, p := range ps {
		t.Rows = append(t.Rows, []string{
			id(p.ID),
			p.Name,
			opt(p.Producer),
			opt(p.Variety),
			opt(p.Community),
			opt(p.Municipality),
			opt(p.Latitude),
			opt(p.Longitude),
			opt(p.Altitude),
			opt(p.Talhao),
			opt(p.Faces),
			p.HarvestMonths.String(),
		})
	}
	return t
}

// ExportHeader labels match the keywords the importer looks for, so an
// exported workbook can be imported again.
var ExportHeader = []string{
	"Código do Produtor", "Nome do Produtor", "CPF", "Cooperativa",
	"Plantação", "Talhão", "Variedade", "Comunidade", "Município",
	"Latitude", "Longitude", "Altitude média", "Face de exposição", "Meses de Colheita",
}

func ExportTable(rows []entities.ExportRow) Table {
	t := Table{Header: ExportHeader, Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			opt(r.ProducerCode),
			r.ProducerName,
			opt(r.CPF),
			opt(r.Cooperative),
			r.Plantation,
			opt(r.Talhao),
			opt(r.Variety),
			opt(r.Community),
			opt(r.Municipality),
			opt(r.Latitude),
			opt(r.Longitude),
			opt(r.Altitude),
			opt(r.Faces),
			r.HarvestMonths.String(),
		})
	}
	return t
}
