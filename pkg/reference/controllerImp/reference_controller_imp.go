package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"alqualis/pkg/reference"
	"alqualis/pkg/reference/repository"
	"alqualis/pkg/respond"
	"alqualis/pkg/textnorm"
)

type ReferenceCtrl struct{ repo repository.ReferenceRepository }

func New(repo repository.ReferenceRepository) *ReferenceCtrl { return &ReferenceCtrl{repo} }

type valueReq struct {
	Value string `json:"value"`
}

// List returns every row of :table, or the rows matching ?q= when given.
func (h *ReferenceCtrl) List(c echo.Context) error {
	table := c.Param("table")
	ctx := c.Request().Context()
	if q, ok := c.QueryParams()["q"]; ok {
		rows, err := h.repo.FindWithTextFilter(ctx, table, q[0])
		if err != nil {
			return respond.Error(c, err)
		}
		return c.JSON(http.StatusOK, rows)
	}
	rows, err := h.repo.ListAll(ctx, table)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReferenceCtrl) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respond.BadRequest(c, "bad id")
	}
	row, err := h.repo.FindByID(c.Request().Context(), c.Param("table"), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

// Create uppercases the value before storing it, as the registration forms do.
func (h *ReferenceCtrl) Create(c echo.Context) error {
	t, err := reference.Lookup(c.Param("table"))
	if err != nil {
		return respond.Error(c, err)
	}
	var req valueReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, "bad json")
	}
	res, err := h.repo.InsertOne(c.Request().Context(), t.Name, t.NameColumn, textnorm.Upper(req.Value))
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Result(c, res)
}

func (h *ReferenceCtrl) Update(c echo.Context) error {
	t, err := reference.Lookup(c.Param("table"))
	if err != nil {
		return respond.Error(c, err)
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respond.BadRequest(c, "bad id")
	}
	var req valueReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, "bad json")
	}
	res, err := h.repo.UpdateOne(c.Request().Context(), t.Name, t.NameColumn, textnorm.Upper(req.Value), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Result(c, res)
}

func (h *ReferenceCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respond.BadRequest(c, "bad id")
	}
	res, err := h.repo.DeleteOne(c.Request().Context(), c.Param("table"), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Result(c, res)
}
