package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"alqualis/entities"
	"alqualis/pkg/plantation/service"
	"alqualis/pkg/respond"
	"alqualis/pkg/textnorm"
)

type PlantationCtrl struct{ s service.PlantationService }

func New(s service.PlantationService) *PlantationCtrl { return &PlantationCtrl{s} }

func normalize(in *service.Input) {
	in.Name = textnorm.Upper(in.Name)
	if in.Talhao != nil {
		in.Talhao = textnorm.Ptr(textnorm.Upper(*in.Talhao))
	}
	for i, m := range in.HarvestMonths {
		in.HarvestMonths[i] = textnorm.Upper(m)
	}
}

func (h *PlantationCtrl) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respond.BadRequest(c, "bad id")
	}
	p, err := h.s.FindByID(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlantationCtrl) Create(c echo.Context) error {
	var in service.Input
	if err := c.Bind(&in); err != nil {
		return respond.BadRequest(c, "bad json")
	}
	normalize(&in)
	id, err := h.s.Insert(c.Request().Context(), in)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Result(c, entities.Result{ID: id, Outcome: entities.Created})
}

func (h *PlantationCtrl) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respond.BadRequest(c, "bad id")
	}
	var in service.Input
	if err := c.Bind(&in); err != nil {
		return respond.BadRequest(c, "bad json")
	}
	in.ID = id
	normalize(&in)
	if err := h.s.Update(c.Request().Context(), in); err != nil {
		return respond.Error(c, err)
	}
	return respond.Result(c, entities.Result{ID: id, Outcome: entities.Updated})
}

func (h *PlantationCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respond.BadRequest(c, "bad id")
	}
	if err := h.s.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.Result(c, entities.Result{ID: id, Outcome: entities.Deleted})
}
