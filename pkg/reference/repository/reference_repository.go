package repository

import (
	"context"

	"alqualis/entities"
)

// ReferenceRepository is the generic record store. table must be a name from
// the reference registry; column must be that table's name column.
type ReferenceRepository interface {
	ListAll(ctx context.Context, table string) ([]entities.Row, error)
	FindByID(ctx context.Context, table string, id int64) (entities.Row, error)
	InsertOne(ctx context.Context, table, column, value string) (entities.Result, error)
	UpdateOne(ctx context.Context, table, column, value string, id int64) (entities.Result, error)
	DeleteOne(ctx context.Context, table string, id int64) (entities.Result, error)
	FindWithTextFilter(ctx context.Context, table, term string) ([]entities.Row, error)
	// FindIDByValue returns the id of the row whose column equals value.
	FindIDByValue(ctx context.Context, table, column, value string) (int64, error)
}
