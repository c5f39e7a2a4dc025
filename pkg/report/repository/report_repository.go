package repository

import (
	"context"

	"alqualis/entities"
)

// ReportRepository holds the read-only joins behind the listing screens and
// the spreadsheet export.
type ReportRepository interface {
	ProducersDetailed(ctx context.Context) ([]entities.ProducerReport, error)
	PlantationsDetailed(ctx context.Context) ([]entities.PlantationReport, error)
	// UnifiedExport has one row per plantation; producers without
	// plantations do not appear.
	UnifiedExport(ctx context.Context) ([]entities.ExportRow, error)
}
