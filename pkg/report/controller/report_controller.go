package controller

import "github.com/labstack/echo/v4"

type ReportController interface {
	Producers(c echo.Context) error
	Plantations(c echo.Context) error
	Reference(c echo.Context) error
	Export(c echo.Context) error
}
