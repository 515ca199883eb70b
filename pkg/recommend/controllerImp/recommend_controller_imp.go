package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mantrix/pkg/recommend/controller"
	"mantrix/pkg/recommend/serviceImp"
)

const defaultLimit = 5

type recommendCtrl struct{ svc *serviceImp.RecommendSvc }

func New(svc *serviceImp.RecommendSvc) controller.RecommendController {
	return &recommendCtrl{svc: svc}
}

func (h *recommendCtrl) NextUp(c echo.Context) error {
	uid := c.Get("uid").(string)
	limit := defaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be an integer between 1 and 50"})
		}
		limit = n
	}
	out, err := h.svc.NextUp(uid, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to build recommendations"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"recommendations": out, "count": len(out)})
}
