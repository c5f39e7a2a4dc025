package repository

import (
	"context"

	"alqualis/entities"
)

// PlantationRepository writes a plantation and its exposure-face links as one
// unit. Every multi-statement write runs in a single transaction.
type PlantationRepository interface {
	Create(ctx context.Context, p *entities.Plantation, faceIDs []int64) error
	// Update replaces the face set wholesale.
	Update(ctx context.Context, p *entities.Plantation, faceIDs []int64) error
	FindByID(ctx context.Context, id int64) (*entities.PlantationDetail, error)
	Delete(ctx context.Context, id int64) error
}
