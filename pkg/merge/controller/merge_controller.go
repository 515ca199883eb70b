package controller

import "github.com/labstack/echo/v4"

type MergeController interface {
	Merge(c echo.Context) error
	Preview(c echo.Context) error
	Mergeable(c echo.Context) error
}
