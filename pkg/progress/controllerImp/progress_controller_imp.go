package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"mantrix/pkg/progress/controller"
	"mantrix/pkg/progress/serviceImp"
)

type progressCtrl struct{ svc *serviceImp.ProgressSvc }

func New(svc *serviceImp.ProgressSvc) controller.ProgressController { return &progressCtrl{svc: svc} }

type completeReq struct {
	RoadmapID string `json:"roadmap_id"`
	ModuleID  string `json:"module_id"`
}

func (h *progressCtrl) Complete(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body completeReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.RoadmapID == "" || body.ModuleID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "roadmap_id and module_id are required"})
	}
	out, err := h.svc.MarkComplete(uid, body.RoadmapID, body.ModuleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "roadmap not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *progressCtrl) Summary(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.svc.Summary(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load progress"})
	}
	return c.JSON(http.StatusOK, out)
}
