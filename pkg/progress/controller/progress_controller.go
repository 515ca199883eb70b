package controller

import "github.com/labstack/echo/v4"

type ProgressController interface {
	Complete(c echo.Context) error
	Summary(c echo.Context) error
}
