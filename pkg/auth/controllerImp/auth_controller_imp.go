package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"mantrix/pkg/auth/controller"
	"mantrix/pkg/auth/serviceImp"
)

type authCtrl struct{ svc *serviceImp.AuthSvc }

func New(svc *serviceImp.AuthSvc) controller.AuthController { return &authCtrl{svc: svc} }

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authCtrl) Register(c echo.Context) error {
	var body credentialsReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if !strings.Contains(body.Email, "@") || len(body.Password) < 8 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "valid email and password of at least 8 characters required"})
	}
	out, err := h.svc.Register(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, serviceImp.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create user"})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *authCtrl) Login(c echo.Context) error {
	var body credentialsReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Login(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, serviceImp.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "login failed"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *authCtrl) Me(c echo.Context) error {
	uid := c.Get("uid").(string)
	u, err := h.svc.GetUser(uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, u)
}
