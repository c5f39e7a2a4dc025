package repositoryImp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alqualis/database/dbtest"
	"alqualis/entities"
	"alqualis/pkg/faults"
	"alqualis/pkg/reference/repositoryImp"
)

var ctx = context.Background()

func TestInsertOneSoftDuplicate(t *testing.T) {
	repo := repositoryImp.New(dbtest.Open(t))

	first, err := repo.InsertOne(ctx, "cooperativa", "nome_cooperativa", "COOPAGRI")
	require.NoError(t, err)
	assert.Equal(t, entities.Created, first.Outcome)
	assert.NotZero(t, first.ID)

	second, err := repo.InsertOne(ctx, "cooperativa", "nome_cooperativa", "COOPAGRI")
	require.NoError(t, err)
	assert.Equal(t, entities.AlreadyExists, second.Outcome)
	assert.Zero(t, second.ID)

	rows, err := repo.ListAll(ctx, "cooperativa")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	id, err := repo.FindIDByValue(ctx, "cooperativa", "nome_cooperativa", "COOPAGRI")
	require.NoError(t, err)
	assert.Equal(t, first.ID, id)
}

func TestInsertOneValidation(t *testing.T) {
	repo := repositoryImp.New(dbtest.Open(t))

	_, err := repo.InsertOne(ctx, "municipio", "nome_municipio", "   ")
	assert.True(t, faults.IsCategory(err, faults.ValidationError))

	_, err = repo.InsertOne(ctx, "usuarios", "nome", "X")
	assert.True(t, faults.IsCategory(err, faults.ValidationError))

	_, err = repo.InsertOne(ctx, "municipio", "id_municipio", "1")
	assert.True(t, faults.IsCategory(err, faults.ValidationError))

	_, err = repo.InsertOne(ctx, "produtor", "nome_produtor", "JOSE")
	assert.True(t, faults.IsCategory(err, faults.ValidationError))
}

func TestInsertOneTrims(t *testing.T) {
	repo := repositoryImp.New(dbtest.Open(t))
	res, err := repo.InsertOne(ctx, "variedade", "nome_variedade", "  CATUAI  ")
	require.NoError(t, err)

	row, err := repo.FindByID(ctx, "variedade", res.ID)
	require.NoError(t, err)
	assert.Equal(t, "CATUAI", row["nome_variedade"])
}

func TestUpdateOne(t *testing.T) {
	repo := repositoryImp.New(dbtest.Open(t))
	a, _ := repo.InsertOne(ctx, "comunidade", "nome_comunidade", "CORREGO FUNDO")
	b, _ := repo.InsertOne(ctx, "comunidade", "nome_comunidade", "PEDRA AZUL")

	// same value on the same row is not a duplicate
	res, err := repo.UpdateOne(ctx, "comunidade", "nome_comunidade", "CORREGO FUNDO", a.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.Updated, res.Outcome)

	res, err = repo.UpdateOne(ctx, "comunidade", "nome_comunidade", "PEDRA AZUL", a.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.AlreadyExists, res.Outcome)

	res, err = repo.UpdateOne(ctx, "comunidade", "nome_comunidade", "PEDRA BRANCA", b.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.Updated, res.Outcome)
	row, err := repo.FindByID(ctx, "comunidade", b.ID)
	require.NoError(t, err)
	assert.Equal(t, "PEDRA BRANCA", row["nome_comunidade"])

	_, err = repo.UpdateOne(ctx, "comunidade", "nome_comunidade", "NOVA", 999)
	assert.True(t, faults.IsCategory(err, faults.NotFoundError))
}

func TestDeleteOneDependencyGuard(t *testing.T) {
	db := dbtest.Open(t)
	repo := repositoryImp.New(db)
	coop, _ := repo.InsertOne(ctx, "cooperativa", "nome_cooperativa", "COOPAGRI")
	free, _ := repo.InsertOne(ctx, "cooperativa", "nome_cooperativa", "COOPERVALE")

	p := entities.Producer{Name: "JOSE"}
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Create(&entities.ProducerCooperative{CooperativeID: coop.ID, ProducerID: p.ID}).Error)

	res, err := repo.DeleteOne(ctx, "cooperativa", coop.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.HasDependents, res.Outcome)
	_, err = repo.FindByID(ctx, "cooperativa", coop.ID)
	assert.NoError(t, err)

	res, err = repo.DeleteOne(ctx, "cooperativa", free.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.Deleted, res.Outcome)
	_, err = repo.FindByID(ctx, "cooperativa", free.ID)
	assert.True(t, faults.IsCategory(err, faults.NotFoundError))

	_, err = repo.DeleteOne(ctx, "cooperativa", free.ID)
	assert.True(t, faults.IsCategory(err, faults.NotFoundError))
}

func TestFindWithTextFilter(t *testing.T) {
	repo := repositoryImp.New(dbtest.Open(t))
	for _, v := range []string{"SÃO JOÃO", "SÃO PEDRO", "VARGEM ALTA", "100%_PURO"} {
		_, err := repo.InsertOne(ctx, "municipio", "nome_municipio", v)
		require.NoError(t, err)
	}

	rows, err := repo.FindWithTextFilter(ctx, "municipio", "são")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = repo.FindWithTextFilter(ctx, "municipio", "alta")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "VARGEM ALTA", rows[0]["nome_municipio"])

	// wildcards in the term are literal
	rows, err = repo.FindWithTextFilter(ctx, "municipio", "%_")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = repo.FindWithTextFilter(ctx, "municipio", "curitiba")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadOnlyTablesAreSearchable(t *testing.T) {
	db := dbtest.Open(t)
	repo := repositoryImp.New(db)
	require.NoError(t, db.Create(&entities.Producer{Name: "MARIA DA SILVA"}).Error)

	rows, err := repo.FindWithTextFilter(ctx, "produtor", "silva")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	all, err := repo.ListAll(ctx, "produtor")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListAllEmpty(t *testing.T) {
	repo := repositoryImp.New(dbtest.Open(t))
	rows, err := repo.ListAll(ctx, "face_exposicao")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
