package controllerImp

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"alqualis/pkg/reference"
	refRepo "alqualis/pkg/reference/repository"
	"alqualis/pkg/report"
	"alqualis/pkg/report/repository"
	"alqualis/pkg/respond"
	"alqualis/pkg/sheet"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportCtrl struct {
	repo      repository.ReportRepository
	refs      refRepo.ReferenceRepository
	sheetName string
}

func New(repo repository.ReportRepository, refs refRepo.ReferenceRepository, sheetName string) *ReportCtrl {
	return &ReportCtrl{repo: repo, refs: refs, sheetName: sheetName}
}

func (h *ReportCtrl) Producers(c echo.Context) error {
	ps, err := h.repo.ProducersDetailed(c.Request().Context())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, report.ProducersTable(ps))
}

func (h *ReportCtrl) Plantations(c echo.Context) error {
	ps, err := h.repo.PlantationsDetailed(c.Request().Context())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, report.PlantationsTable(ps))
}

// Reference renders a simple reference table as id + name columns.
func (h *ReportCtrl) Reference(c echo.Context) error {
	t, err := reference.Lookup(c.Param("table"))
	if err != nil {
		return respond.Error(c, err)
	}
	rows, err := h.refs.ListAll(c.Request().Context(), t.Name)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, report.RowsTable([]string{t.IDColumn, t.NameColumn}, rows))
}

// Export answers with the unified view as an .xlsx attachment, or as a JSON
// table when ?format=json.
func (h *ReportCtrl) Export(c echo.Context) error {
	rows, err := h.repo.UnifiedExport(c.Request().Context())
	if err != nil {
		return respond.Error(c, err)
	}
	t := report.ExportTable(rows)
	if c.QueryParam("format") == "json" {
		return c.JSON(http.StatusOK, t)
	}
	var buf bytes.Buffer
	if err := sheet.WriteXLSX(&buf, h.sheetName, t.Header, t.Rows); err != nil {
		return respond.Error(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="alqualis.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
