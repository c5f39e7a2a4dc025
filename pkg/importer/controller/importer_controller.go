package controller

import "github.com/labstack/echo/v4"

type ImporterController interface {
	Upload(c echo.Context) error
}
