package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	refCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	producerCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		LastCode(echo.Context) error
	},
	plantationCtrl interface {
		Get(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	reportCtrl interface {
		Producers(echo.Context) error
		Plantations(echo.Context) error
		Reference(echo.Context) error
		Export(echo.Context) error
	},
	importCtrl interface{ Upload(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
	metrics http.Handler,
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(metrics))

	// generic reference tables (cooperativa, municipio, ...)
	ref := e.Group("/ref")
	ref.GET("/:table", refCtrl.List)
	ref.GET("/:table/:id", refCtrl.Get)
	ref.POST("/:table", refCtrl.Create)
	ref.PUT("/:table/:id", refCtrl.Update)
	ref.DELETE("/:table/:id", refCtrl.Delete)

	p := e.Group("/producers")
	p.GET("", producerCtrl.List)
	p.GET("/last-code", producerCtrl.LastCode)
	p.GET("/:id", producerCtrl.Get)
	p.POST("", producerCtrl.Create)
	p.PUT("/:id", producerCtrl.Update)
	p.DELETE("/:id", producerCtrl.Delete)

	pl := e.Group("/plantations")
	pl.GET("/:id", plantationCtrl.Get)
	pl.POST("", plantationCtrl.Create)
	pl.PUT("/:id", plantationCtrl.Update)
	pl.DELETE("/:id", plantationCtrl.Delete)

	r := e.Group("/reports")
	r.GET("/producers", reportCtrl.Producers)
	r.GET("/plantations", reportCtrl.Plantations)
	r.GET("/ref/:table", reportCtrl.Reference)

	e.GET("/export", reportCtrl.Export)
	e.POST("/import", importCtrl.Upload)
	return e
}
