package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"mantrix/pkg/external/controller"
	"mantrix/pkg/external/serviceImp"
)

type externalCtrl struct{ svc *serviceImp.ExternalSvc }

func New(svc *serviceImp.ExternalSvc) controller.ExternalController {
	return &externalCtrl{svc: svc}
}

func (h *externalCtrl) Sources(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"sources": h.svc.Sources()})
}

type importReq struct {
	URL string `json:"url"`
}

func (h *externalCtrl) Import(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body importReq
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.URL) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url is required"})
	}
	r, err := h.svc.ImportFromURL(uid, strings.TrimSpace(body.URL))
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, r)
}
