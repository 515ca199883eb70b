package controller

import "github.com/labstack/echo/v4"

type RoadmapController interface {
	Generate(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Delete(c echo.Context) error
	Customize(c echo.Context) error
	Schedule(c echo.Context) error
	ExportSchedule(c echo.Context) error
}
