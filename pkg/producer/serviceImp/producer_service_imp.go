package serviceImp

import (
	"context"
	"strings"

	"alqualis/entities"
	"alqualis/pkg/faults"
	repo "alqualis/pkg/producer/repository"
	"alqualis/pkg/producer/service"
	"alqualis/pkg/validate"
)

type producerSvc struct{ r repo.ProducerRepository }

func NewProducerService(r repo.ProducerRepository) service.ProducerService { return &producerSvc{r} }

func (s *producerSvc) Insert(ctx context.Context, in service.Input) (int64, error) {
	p, err := s.check(ctx, in, 0)
	if err != nil {
		return 0, err
	}
	if err := s.r.Create(ctx, p, in.CooperativeID); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *producerSvc) Update(ctx context.Context, in service.Input) error {
	if in.ID == 0 {
		return faults.New(faults.ValidationError, "id_produtor is required")
	}
	p, err := s.check(ctx, in, in.ID)
	if err != nil {
		return err
	}
	p.ID = in.ID
	return s.r.Update(ctx, p, in.CooperativeID)
}

// check validates in and enforces CPF and code uniqueness, ignoring selfID.
func (s *producerSvc) check(ctx context.Context, in service.Input, selfID int64) (*entities.Producer, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	p := &entities.Producer{Name: in.Name, CPF: blankNil(in.CPF), Code: blankNil(in.Code)}
	if p.CPF != nil {
		taken, err := s.r.ExistsCPF(ctx, *p.CPF, selfID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, faults.New(faults.DuplicateError, "cpf "+*p.CPF+" already registered")
		}
	}
	if p.Code != nil {
		taken, err := s.r.ExistsCode(ctx, *p.Code, selfID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, faults.New(faults.DuplicateError, "code "+*p.Code+" already registered")
		}
	}
	return p, nil
}

func (s *producerSvc) FindByID(ctx context.Context, id int64) (*entities.ProducerWithCooperative, error) {
	return s.r.FindByID(ctx, id)
}

func (s *producerSvc) ListWithCooperative(ctx context.Context) ([]entities.ProducerWithCooperative, error) {
	return s.r.ListWithCooperative(ctx)
}

func (s *producerSvc) Delete(ctx context.Context, id int64) (entities.Result, error) {
	n, err := s.r.CountPlantations(ctx, id)
	if err != nil {
		return entities.Result{}, err
	}
	if n > 0 {
		return entities.Result{ID: id, Outcome: entities.HasDependents}, nil
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return entities.Result{}, err
	}
	return entities.Result{ID: id, Outcome: entities.Deleted}, nil
}

func (s *producerSvc) LastCode(ctx context.Context) (string, error) {
	p, err := s.r.Last(ctx)
	if err != nil || p == nil || p.Code == nil {
		return "", err
	}
	return *p.Code, nil
}

func blankNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
