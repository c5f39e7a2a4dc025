package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alqualis/entities"
)

func TestFormatHeader(t *testing.T) {
	assert.Equal(t, "Id", FormatHeader("id"))
	assert.Equal(t, "Id", FormatHeader("id_produtor"))
	assert.Equal(t, "Nome Produtor", FormatHeader("nome_produtor"))
	assert.Equal(t, "Faces Exposicao", FormatHeader("faces_exposicao"))
	assert.Equal(t, "Cooperativa", FormatHeader("cooperativa"))
	assert.Equal(t, "Área", FormatHeader("área"))
}

func TestProducersTablePlaceholders(t *testing.T) {
	cpf, coop, code := "12345678901", "COOPAGRI", "CDANF01"
	blank := "  "
	rows := []entities.ProducerReport{
		{ProducerWithCooperative: entities.ProducerWithCooperative{
			Producer:        entities.Producer{ID: 1, Name: "JOSE", CPF: &cpf, Code: &code},
			CooperativeName: &coop,
		}, Plantations: 2},
		{ProducerWithCooperative: entities.ProducerWithCooperative{
			Producer: entities.Producer{ID: 2, Name: "MARIA", CPF: &blank},
		}},
	}
	tb := ProducersTable(rows)
	assert.Equal(t, []string{"Id", "Nome Produtor", "Cpf Produtor", "Codigo Produtor", "Cooperativa", "Total Plantacoes"}, tb.Header)
	require.Len(t, tb.Rows, 2)
	assert.Equal(t, []string{"1", "JOSE", "12345678901", "CDANF01", "COOPAGRI", "2"}, tb.Rows[0])
	assert.Equal(t, []string{"2", "MARIA", NoCPF, "", NoCooperative, "0"}, tb.Rows[1])
}

func TestExportTableJoinsMonths(t *testing.T) {
	tb := ExportTable([]entities.ExportRow{{
		ProducerName:  "JOSE",
		Plantation:    "T1",
		HarvestMonths: entities.HarvestMonths{"MAIO", "JUNHO"},
	}})
	require.Len(t, tb.Rows, 1)
	assert.Len(t, tb.Rows[0], len(ExportHeader))
	assert.Equal(t, "MAIO, JUNHO", tb.Rows[0][len(ExportHeader)-1])
}

func TestRowsTable(t *testing.T) {
	tb := RowsTable([]string{"id_municipio", "nome_municipio"}, []entities.Row{
		{"id_municipio": int64(3), "nome_municipio": "VARGEM ALTA"},
		{"id_municipio": int64(4), "nome_municipio": nil},
	})
	assert.Equal(t, []string{"Id", "Nome Municipio"}, tb.Header)
	assert.Equal(t, [][]string{{"3", "VARGEM ALTA"}, {"4", ""}}, tb.Rows)
}

func TestEmptyTablesHaveNoNilRows(t *testing.T) {
	assert.NotNil(t, PlantationsTable(nil).Rows)
	assert.NotNil(t, ExportTable(nil).Rows)
}
