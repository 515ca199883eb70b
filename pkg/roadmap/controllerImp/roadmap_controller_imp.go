package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"mantrix/pkg/calendar"
	"mantrix/pkg/roadmap/repository"
	"mantrix/pkg/roadmap/serviceImp"
)

type RoadmapCtrl struct {
	svc  *serviceImp.RoadmapSvc
	repo repository.RoadmapRepository
}

func New(svc *serviceImp.RoadmapSvc, repo repository.RoadmapRepository) *RoadmapCtrl {
	return &RoadmapCtrl{svc: svc, repo: repo}
}

func (h *RoadmapCtrl) Generate(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		UserInput string `json:"user_input"`
		Mode      string `json:"mode"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(body.UserInput) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user input cannot be empty"})
	}
	if body.Mode == "" {
		body.Mode = "full"
	}
	roadmaps, err := h.svc.Generate(uid, body.UserInput)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "roadmap generation failed"})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"roadmaps":   roadmaps,
		"user_input": body.UserInput,
		"mode":       body.Mode,
	})
}

func (h *RoadmapCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch roadmaps"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RoadmapCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	r, err := h.repo.FindByID(c.Param("id"), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "roadmap not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch roadmap"})
	}
	return c.JSON(http.StatusOK, r)
}

func (h *RoadmapCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	ok, err := h.repo.Delete(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete roadmap"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "roadmap not found"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

func (h *RoadmapCtrl) Customize(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Title     string   `json:"title"`
		BranchIDs []string `json:"branch_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if len(body.BranchIDs) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "branch_ids must not be empty"})
	}
	out, err := h.svc.Customize(uid, c.Param("id"), body.Title, body.BranchIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "roadmap not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

// dailyHours reads and bounds the daily_study_hours query parameter.
func dailyHours(c echo.Context) (float64, error) {
	raw := c.QueryParam("daily_study_hours")
	if raw == "" {
		return 1.0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0.5 || v > 8.0 {
		return 0, fmt.Errorf("daily_study_hours must be between 0.5 and 8.0")
	}
	return v, nil
}

func (h *RoadmapCtrl) Schedule(c echo.Context) error {
	uid := c.Get("uid").(string)
	hours, err := dailyHours(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	r, err := h.repo.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "roadmap not found"})
	}
	cal := calendar.BuildSchedule(r, hours, time.Now())
	return c.JSON(http.StatusOK, map[string]any{
		"roadmap_id":        r.ID,
		"daily_study_hours": hours,
		"calendar":          cal,
	})
}

func (h *RoadmapCtrl) ExportSchedule(c echo.Context) error {
	uid := c.Get("uid").(string)
	hours, err := dailyHours(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	r, err := h.repo.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "roadmap not found"})
	}
	cal := calendar.BuildSchedule(r, hours, time.Now())
	f, err := calendar.WriteXLSX(r, cal)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to build spreadsheet"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="study-plan-%s.xlsx"`, r.ID))
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
