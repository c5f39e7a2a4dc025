package controllerImp

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"alqualis/pkg/importer/service"
	"alqualis/pkg/respond"
	"alqualis/pkg/sheet"
)

type ImporterCtrl struct {
	s             service.ImporterService
	defaultPrefix string
}

func New(s service.ImporterService, defaultPrefix string) *ImporterCtrl {
	return &ImporterCtrl{s: s, defaultPrefix: defaultPrefix}
}

// Upload takes a multipart "file" (.xlsx, .csv or .html) and an optional
// "prefix" form value for the generated producer codes.
func (h *ImporterCtrl) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return respond.BadRequest(c, "missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return respond.BadRequest(c, "unreadable file")
	}
	defer f.Close()

	d, err := sheet.Read(f, filepath.Ext(fh.Filename))
	if err != nil {
		return respond.Error(c, err)
	}
	prefix := c.FormValue("prefix")
	if prefix == "" {
		prefix = h.defaultPrefix
	}
	rep, err := h.s.Import(c.Request().Context(), d, service.Options{Prefix: prefix})
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"report":  rep,
		"partial": rep.Partial(),
	})
}
