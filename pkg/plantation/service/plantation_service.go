package service

import (
	"context"

	"alqualis/entities"
)

type Input struct {
	ID             int64    `json:"id_plantacao"`
	ProducerID     int64    `json:"id_produtor" validate:"required"`
	VarietyID      int64    `json:"id_variedade" validate:"required"`
	CommunityID    int64    `json:"id_comunidade" validate:"required"`
	MunicipalityID int64    `json:"id_municipio" validate:"required"`
	Name           string   `json:"nome_plantacao" validate:"required,notblank"`
	Talhao         *string  `json:"nome_talhao"`
	Latitude       *string  `json:"latitude"`
	Longitude      *string  `json:"longitude"`
	Altitude       *string  `json:"altitude_media"`
	FaceIDs        []int64  `json:"faces"`
	HarvestMonths  []string `json:"meses_colheita"`
}

type PlantationService interface {
	Insert(ctx context.Context, in Input) (int64, error)
	Update(ctx context.Context, in Input) error
	FindByID(ctx context.Context, id int64) (*entities.PlantationDetail, error)
	Delete(ctx context.Context, id int64) error
}
