package controller

import "github.com/labstack/echo/v4"

type RecommendController interface {
	NextUp(c echo.Context) error
}
