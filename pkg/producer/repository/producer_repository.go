package repository

import (
	"context"

	"alqualis/entities"
)

type ProducerRepository interface {
	// ExistsCPF and ExistsCode ignore the row with excludeID (0 for none).
	ExistsCPF(ctx context.Context, cpf string, excludeID int64) (bool, error)
	ExistsCode(ctx context.Context, code string, excludeID int64) (bool, error)
	Create(ctx context.Context, p *entities.Producer, cooperativeID *int64) error
	Update(ctx context.Context, p *entities.Producer, cooperativeID *int64) error
	FindByID(ctx context.Context, id int64) (*entities.ProducerWithCooperative, error)
	ListWithCooperative(ctx context.Context) ([]entities.ProducerWithCooperative, error)
	CountPlantations(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) error
	Last(ctx context.Context) (*entities.Producer, error)
}
