package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"alqualis/entities"
	"alqualis/pkg/producer/service"
	"alqualis/pkg/respond"
	"alqualis/pkg/textnorm"
)

type ProducerCtrl struct{ s service.ProducerService }

func New(s service.ProducerService) *ProducerCtrl { return &ProducerCtrl{s} }

// normalize applies the form conventions: uppercase name, digits-only CPF,
// code without whitespace.
func normalize(in *service.Input) {
	in.Name = textnorm.Upper(in.Name)
	if in.CPF != nil {
		in.CPF = textnorm.Ptr(textnorm.Digits(*in.CPF))
	}
	if in.Code != nil {
		in.Code = textnorm.Ptr(textnorm.NoSpace(*in.Code))
	}
}

func (h *ProducerCtrl) List(c echo.Context) error {
	ps, err := h.s.ListWithCooperative(c.Request().Context())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}

func (h *ProducerCtrl) Get(c echo.Context) error {
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

func (h *ProducerCtrl) Create(c echo.Context) error {
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

func (h *ProducerCtrl) Update(c echo.Context) error {
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

func (h *ProducerCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respond.BadRequest(c, "bad id")
	}
	res, err := h.s.Delete(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.Result(c, res)
}

func (h *ProducerCtrl) LastCode(c echo.Context) error {
	code, err := h.s.LastCode(c.Request().Context())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"codigo_produtor": code})
}
