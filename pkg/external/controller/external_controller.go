package controller

import "github.com/labstack/echo/v4"

type ExternalController interface {
	Sources(c echo.Context) error
	Import(c echo.Context) error
}
