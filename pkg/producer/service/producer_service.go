package service

import (
	"context"

	"alqualis/entities"
)

// Input carries already-normalized producer fields. Empty CPF and code are
// treated as absent.
type Input struct {
	ID            int64   `json:"id_produtor"`
	Name          string  `json:"nome_produtor" validate:"required,notblank"`
	CPF           *string `json:"cpf_produtor"`
	Code          *string `json:"codigo_produtor"`
	CooperativeID *int64  `json:"id_cooperativa"`
}

type ProducerService interface {
	Insert(ctx context.Context, in Input) (int64, error)
	Update(ctx context.Context, in Input) error
	FindByID(ctx context.Context, id int64) (*entities.ProducerWithCooperative, error)
	ListWithCooperative(ctx context.Context) ([]entities.ProducerWithCooperative, error)
	// Delete refuses with HasDependents while plantations reference the producer.
	Delete(ctx context.Context, id int64) (entities.Result, error)
	// LastCode is the code of the most recently registered producer, "" if none.
	LastCode(ctx context.Context) (string, error)
}
