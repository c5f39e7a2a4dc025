package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alqualis/pkg/sheet"
)

func TestResolveColumnsOriginalHeader(t *testing.T) {
	d := sheet.Dataset{Header: []string{
		"Nome do Produtor", "CPF", "Comunidade", "Município",
		"Nome da Associação e/ou Cooperativa", "Variedade", "Talhão",
		"Latitude", "Longitude", "Altitude média", "Face de exposição", "Meses de Colheita",
	}}
	cols := ResolveColumns(d)
	assert.Equal(t, 0, cols[ProducerName])
	assert.Equal(t, 1, cols[CPF])
	assert.Equal(t, 3, cols[Municipality])
	assert.Equal(t, 4, cols[Cooperative])
	assert.Equal(t, 6, cols[Talhao])
	assert.Equal(t, 9, cols[Altitude])
	assert.Equal(t, 10, cols[Face])
	assert.Equal(t, 11, cols[HarvestMonths])
	assert.Equal(t, -1, cols[Plantation])
}

func TestResolveColumnsExportHeader(t *testing.T) {
	// "Código do Produtor" comes first but must not be read as the name
	d := sheet.Dataset{Header: []string{"Código do Produtor", "Nome do Produtor", "Cooperativa", "Plantação", "Sol", "Tipo"}}
	cols := ResolveColumns(d)
	assert.Equal(t, 1, cols[ProducerName])
	assert.Equal(t, 2, cols[Cooperative])
	assert.Equal(t, 3, cols[Plantation])
	assert.Equal(t, 4, cols[Face])
	assert.Equal(t, 5, cols[Variety])
	assert.Equal(t, -1, cols[CPF])
	assert.Equal(t, "", cols.Get([]string{"a"}, CPF))
}
