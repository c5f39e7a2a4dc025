package serviceImp

import (
	"context"
	"strings"

	"alqualis/entities"
	"alqualis/pkg/faults"
	repo "alqualis/pkg/plantation/repository"
	"alqualis/pkg/plantation/service"
	"alqualis/pkg/validate"
)

type plantationSvc struct{ r repo.PlantationRepository }

func NewPlantationService(r repo.PlantationRepository) service.PlantationService {
	return &plantationSvc{r}
}

func (s *plantationSvc) Insert(ctx context.Context, in service.Input) (int64, error) {
	if err := validate.Struct(in); err != nil {
		return 0, err
	}
	p := toEntity(in)
	if err := s.r.Create(ctx, p, uniqueIDs(in.FaceIDs)); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *plantationSvc) Update(ctx context.Context, in service.Input) error {
	if in.ID == 0 {
		return faults.New(faults.ValidationError, "id_plantacao is required")
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	p := toEntity(in)
	p.ID = in.ID
	return s.r.Update(ctx, p, uniqueIDs(in.FaceIDs))
}

func (s *plantationSvc) FindByID(ctx context.Context, id int64) (*entities.PlantationDetail, error) {
	return s.r.FindByID(ctx, id)
}

func (s *plantationSvc) Delete(ctx context.Context, id int64) error {
	return s.r.Delete(ctx, id)
}

func toEntity(in service.Input) *entities.Plantation {
	months := entities.HarvestMonths{}
	for _, m := range in.HarvestMonths {
		if m = strings.TrimSpace(m); m != "" {
			months = append(months, m)
		}
	}
	return &entities.Plantation{
		ProducerID:     in.ProducerID,
		VarietyID:      in.VarietyID,
		CommunityID:    in.CommunityID,
		MunicipalityID: in.MunicipalityID,
		Name:           in.Name,
		Talhao:         blankNil(in.Talhao),
		Latitude:       blankNil(in.Latitude),
		Longitude:      blankNil(in.Longitude),
		Altitude:       blankNil(in.Altitude),
		HarvestMonths:  months,
	}
}

// uniqueIDs drops repeated face ids, keeping first-seen order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func blankNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
