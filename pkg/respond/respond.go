// Package respond writes the JSON bodies shared by every controller.
package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"alqualis/entities"
	"alqualis/pkg/faults"
)

func Error(c echo.Context, err error) error {
	return c.JSON(faults.HTTPStatus(err), map[string]string{"error": err.Error()})
}

func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

// Result answers a write: 201 for creates, 200 for updates and deletes,
// 409 when the write was refused as a duplicate or because of dependents.
func Result(c echo.Context, r entities.Result) error {
	switch r.Outcome {
	case entities.Created:
		return c.JSON(http.StatusCreated, r)
	case entities.AlreadyExists, entities.HasDependents:
		return c.JSON(http.StatusConflict, r)
	}
	return c.JSON(http.StatusOK, r)
}
