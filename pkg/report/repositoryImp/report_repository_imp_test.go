package repositoryImp_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"alqualis/database/dbtest"
	"alqualis/entities"
	"alqualis/pkg/report/repositoryImp"
)

var ctx = context.Background()

func seed(t *testing.T, db *gorm.DB) {
	stmts := []string{
		`INSERT INTO cooperativa (nome_cooperativa) VALUES ('COOPAGRI')`,
		`INSERT INTO produtor (nome_produtor, cpf_produtor, codigo_produtor) VALUES ('JOSE', '111', 'CDANF01')`,
		`INSERT INTO produtor (nome_produtor) VALUES ('SEM PLANTACAO')`,
		`INSERT INTO cooperativa_produtor (id_cooperativa, id_produtor) VALUES (1, 1)`,
		`INSERT INTO variedade (nome_variedade) VALUES ('CATUAI')`,
		`INSERT INTO comunidade (nome_comunidade) VALUES ('CORREGO')`,
		`INSERT INTO municipio (nome_municipio) VALUES ('VARGEM ALTA')`,
		`INSERT INTO plantacao (id_produtor, id_variedade, id_comunidade, id_municipio, nome_plantacao, meses_colheita)
		 VALUES (1, 1, 1, 1, 'T1', '["MAIO","JUNHO"]')`,
		`INSERT INTO plantacao (id_produtor, id_variedade, id_comunidade, id_municipio, nome_plantacao, meses_colheita)
		 VALUES (1, 1, 1, 1, 'T2', NULL)`,
		`INSERT INTO face_exposicao_plantacao (id_face_exposicao, id_plantacao) VALUES (1, 1)`,
		`INSERT INTO face_exposicao_plantacao (id_face_exposicao, id_plantacao) VALUES (2, 1)`,
	}
	for _, s := range stmts {
		require.NoError(t, db.Exec(s).Error, s)
	}
}

func TestProducersDetailed(t *testing.T) {
	db := dbtest.OpenStore(t, true).DB
	seed(t, db)
	ps, err := repositoryImp.New(db).ProducersDetailed(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "COOPAGRI", *ps[0].CooperativeName)
	assert.EqualValues(t, 2, ps[0].Plantations)
	assert.Nil(t, ps[1].CooperativeName)
	assert.Zero(t, ps[1].Plantations)
}

func TestPlantationsDetailed(t *testing.T) {
	db := dbtest.OpenStore(t, true).DB
	seed(t, db)
	ps, err := repositoryImp.New(db).PlantationsDetailed(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 2)

	assert.Equal(t, "JOSE", *ps[0].Producer)
	assert.Equal(t, "CATUAI", *ps[0].Variety)
	require.NotNil(t, ps[0].Faces)
	assert.ElementsMatch(t, []string{"NORTE", "SUL"}, strings.Split(*ps[0].Faces, ", "))
	assert.Equal(t, entities.HarvestMonths{"MAIO", "JUNHO"}, ps[0].HarvestMonths)

	assert.Nil(t, ps[1].Faces)
	assert.NotNil(t, ps[1].HarvestMonths)
	assert.Empty(t, ps[1].HarvestMonths)
}

func TestUnifiedExportOmitsProducersWithoutPlantations(t *testing.T) {
	db := dbtest.OpenStore(t, true).DB
	seed(t, db)
	rows, err := repositoryImp.New(db).UnifiedExport(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "JOSE", r.ProducerName)
		assert.Equal(t, "CDANF01", *r.ProducerCode)
		assert.Equal(t, "COOPAGRI", *r.Cooperative)
	}

	ps, err := repositoryImp.New(db).ProducersDetailed(ctx)
	require.NoError(t, err)
	names := []string{}
	for _, p := range ps {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "SEM PLANTACAO")
}

func TestEmptyStore(t *testing.T) {
	repo := repositoryImp.New(dbtest.Open(t))
	rows, err := repo.UnifiedExport(ctx)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
