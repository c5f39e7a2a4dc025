// Package importer loads producers and plantations from a spreadsheet, one
// row at a time, creating the reference rows each line names.
package importer

import "alqualis/pkg/sheet"

// Field is a semantic column of the import sheet.
type Field int

const (
	ProducerName Field = iota
	CPF
	Community
	Municipality
	Cooperative
	Variety
	Plantation
	Talhao
	Latitude
	Longitude
	Altitude
	Face
	HarvestMonths
	fieldCount
)

// keywords lists, per field, the keyword groups tried in order; a header
// matches a group when it contains every keyword of it.
var keywords = [fieldCount][][]string{
	ProducerName:  {{"nome", "produtor"}, {"produtor"}},
	CPF:           {{"cpf"}},
	Community:     {{"comunidade"}},
	Municipality:  {{"municipio"}},
	Cooperative:   {{"associacao"}, {"cooperativa"}},
	Variety:       {{"variedade"}, {"tipo"}},
	Plantation:    {{"plantacao"}},
	Talhao:        {{"talhao"}},
	Latitude:      {{"latitude"}},
	Longitude:     {{"longitude"}},
	Altitude:      {{"altitude"}},
	Face:          {{"face"}, {"sol"}},
	HarvestMonths: {{"colheita"}, {"meses"}},
}

// Columns maps each field to its column index in a dataset, -1 if absent.
type Columns [fieldCount]int

// ResolveColumns matches the dataset header against the keyword table.
// A column claimed by one field is not offered to later ones, so a sheet
// with "Nome do Produtor" and "Código do Produtor" maps the name correctly.
func ResolveColumns(d sheet.Dataset) Columns {
	var cols Columns
	taken := map[int]bool{}
	for f := Field(0); f < fieldCount; f++ {
		cols[f] = -1
		for _, g := range keywords[f] {
			idx := findFree(d, g, taken)
			if idx >= 0 {
				cols[f] = idx
				taken[idx] = true
				break
			}
		}
	}
	return cols
}

func findFree(d sheet.Dataset, group []string, taken map[int]bool) int {
	sub := sheet.Dataset{Header: make([]string, len(d.Header))}
	for i, h := range d.Header {
		if !taken[i] {
			sub.Header[i] = h
		}
	}
	return sub.FindColumn(group)
}

// Get returns the raw cell for f, "" when the column is absent.
func (c Columns) Get(row []string, f Field) string { return sheet.Cell(row, c[f]) }
