package serviceImp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"alqualis/database/dbtest"
	"alqualis/entities"
	"alqualis/pkg/faults"
	"alqualis/pkg/plantation/repositoryImp"
	"alqualis/pkg/plantation/service"
	"alqualis/pkg/plantation/serviceImp"
)

var ctx = context.Background()

type fixture struct {
	db    *gorm.DB
	svc   service.PlantationService
	base  service.Input
	faces map[string]int64
}

func setup(t *testing.T) fixture {
	st := dbtest.OpenStore(t, true)
	db := st.DB
	require.NoError(t, db.Exec(`INSERT INTO produtor (nome_produtor) VALUES ('JOSE')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO variedade (nome_variedade) VALUES ('CATUAI')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO comunidade (nome_comunidade) VALUES ('CORREGO')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO municipio (nome_municipio) VALUES ('VARGEM ALTA')`).Error)

	var fs []entities.ExposureFace
	require.NoError(t, db.Find(&fs).Error)
	faces := map[string]int64{}
	for _, f := range fs {
		faces[f.Name] = f.ID
	}
	require.Len(t, faces, 4)

	return fixture{
		db:  db,
		svc: serviceImp.NewPlantationService(repositoryImp.New(db)),
		base: service.Input{
			ProducerID: 1, VarietyID: 1, CommunityID: 1, MunicipalityID: 1,
			Name: "TALHAO 1",
		},
		faces: faces,
	}
}

func (f fixture) count(t *testing.T, model any) int64 {
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func TestRoundTrip(t *testing.T) {
	f := setup(t)
	in := f.base
	in.Latitude = strPtr("-20.123400")
	in.FaceIDs = []int64{f.faces["SUL"], f.faces["NORTE"], f.faces["SUL"]}
	in.HarvestMonths = []string{"JUNHO", "MAIO", " "}

	id, err := f.svc.Insert(ctx, in)
	require.NoError(t, err)

	got, err := f.svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "TALHAO 1", got.Name)
	assert.Equal(t, "-20.123400", *got.Latitude)
	assert.Nil(t, got.Longitude)
	assert.ElementsMatch(t, []string{"MAIO", "JUNHO"}, []string(got.HarvestMonths))
	assert.ElementsMatch(t, []int64{f.faces["NORTE"], f.faces["SUL"]}, got.FaceIDs)
}

func TestEmptyFacesAndMonths(t *testing.T) {
	f := setup(t)
	id, err := f.svc.Insert(ctx, f.base)
	require.NoError(t, err)
	got, err := f.svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, got.FaceIDs)
	assert.Empty(t, got.FaceIDs)
	assert.Empty(t, got.HarvestMonths)
}

func TestMalformedMonthsReadAsEmpty(t *testing.T) {
	f := setup(t)
	id, err := f.svc.Insert(ctx, f.base)
	require.NoError(t, err)
	require.NoError(t, f.db.Exec(`UPDATE plantacao SET meses_colheita = 'not json' WHERE id_plantacao = ?`, id).Error)

	got, err := f.svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, got.HarvestMonths)
	assert.Empty(t, got.HarvestMonths)

	require.NoError(t, f.db.Exec(`UPDATE plantacao SET meses_colheita = NULL WHERE id_plantacao = ?`, id).Error)
	got, err = f.svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.HarvestMonths)
}

func TestInsertIsAtomic(t *testing.T) {
	f := setup(t)
	in := f.base
	// second face id does not exist; the link insert fails on the foreign key
	in.FaceIDs = []int64{f.faces["NORTE"], 999, f.faces["SUL"]}

	_, err := f.svc.Insert(ctx, in)
	require.Error(t, err)
	assert.Zero(t, f.count(t, &entities.Plantation{}))
	assert.Zero(t, f.count(t, &entities.PlantationFace{}))
}

func TestInsertRequiresReferences(t *testing.T) {
	f := setup(t)
	for name, mutate := range map[string]func(*service.Input){
		"producer":     func(in *service.Input) { in.ProducerID = 0 },
		"variety":      func(in *service.Input) { in.VarietyID = 0 },
		"community":    func(in *service.Input) { in.CommunityID = 0 },
		"municipality": func(in *service.Input) { in.MunicipalityID = 0 },
		"name":         func(in *service.Input) { in.Name = "  " },
	} {
		t.Run(name, func(t *testing.T) {
			in := f.base
			mutate(&in)
			_, err := f.svc.Insert(ctx, in)
			assert.True(t, faults.IsCategory(err, faults.ValidationError), "got %v", err)
		})
	}
	assert.Zero(t, f.count(t, &entities.Plantation{}))
}

func TestUnknownProducerIsValidationError(t *testing.T) {
	f := setup(t)
	in := f.base
	in.ProducerID = 42
	_, err := f.svc.Insert(ctx, in)
	assert.True(t, faults.IsCategory(err, faults.ValidationError), "got %v", err)
}

func TestUpdateReplacesFaces(t *testing.T) {
	f := setup(t)
	in := f.base
	in.FaceIDs = []int64{f.faces["NORTE"], f.faces["LESTE"]}
	in.HarvestMonths = []string{"MAIO"}
	id, err := f.svc.Insert(ctx, in)
	require.NoError(t, err)

	in.ID = id
	in.Name = "TALHAO 2"
	in.FaceIDs = []int64{f.faces["NORTE"]}
	in.HarvestMonths = []string{"JULHO", "AGOSTO"}
	require.NoError(t, f.svc.Update(ctx, in))

	got, err := f.svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "TALHAO 2", got.Name)
	assert.Equal(t, []int64{f.faces["NORTE"]}, got.FaceIDs)
	assert.ElementsMatch(t, []string{"JULHO", "AGOSTO"}, []string(got.HarvestMonths))

	in.FaceIDs = nil
	require.NoError(t, f.svc.Update(ctx, in))
	got, err = f.svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.FaceIDs)
}

func TestUpdateRollsBackOnBadFace(t *testing.T) {
	f := setup(t)
	in := f.base
	in.FaceIDs = []int64{f.faces["OESTE"]}
	id, err := f.svc.Insert(ctx, in)
	require.NoError(t, err)

	in.ID = id
	in.Name = "RENAMED"
	in.FaceIDs = []int64{f.faces["SUL"], 999}
	require.Error(t, f.svc.Update(ctx, in))

	got, err := f.svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "TALHAO 1", got.Name)
	assert.Equal(t, []int64{f.faces["OESTE"]}, got.FaceIDs)
}

func TestUpdateMissing(t *testing.T) {
	f := setup(t)
	in := f.base
	in.ID = 77
	assert.True(t, faults.IsCategory(f.svc.Update(ctx, in), faults.NotFoundError))
}

func TestDeleteRemovesFaceLinks(t *testing.T) {
	f := setup(t)
	in := f.base
	in.FaceIDs = []int64{f.faces["NORTE"], f.faces["SUL"]}
	id, err := f.svc.Insert(ctx, in)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, id))
	assert.Zero(t, f.count(t, &entities.Plantation{}))
	assert.Zero(t, f.count(t, &entities.PlantationFace{}))

	_, err = f.svc.FindByID(ctx, id)
	assert.True(t, faults.IsCategory(err, faults.NotFoundError))
	assert.True(t, faults.IsCategory(f.svc.Delete(ctx, id), faults.NotFoundError))
}

func strPtr(s string) *string { return &s }
