package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mantrix/pkg/merge/engine"
	"mantrix/pkg/merge/service"
)

type MergeCtrl struct{ svc service.MergeService }

func New(svc service.MergeService) *MergeCtrl { return &MergeCtrl{svc: svc} }

var validModes = map[string]bool{"none": true, "auto": true, "manual": true}

type mergeReq struct {
	RoadmapIDs      []string `json:"roadmap_ids"`
	ScheduleMode    string   `json:"schedule_mode"`
	CalendarView    bool     `json:"calendar_view"`
	DailyStudyHours float64  `json:"daily_study_hours"`
}

// Merge validates the request fully before any roadmap is fetched, then
// runs the persisted merge.
func (h *MergeCtrl) Merge(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body mergeReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.ScheduleMode == "" {
		body.ScheduleMode = "none"
	}
	if body.DailyStudyHours == 0 {
		body.DailyStudyHours = 1.0
	}
	if !validModes[body.ScheduleMode] {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid schedule_mode, must be one of: none, auto, manual",
		})
	}
	if body.DailyStudyHours < 0.5 || body.DailyStudyHours > 8.0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "daily_study_hours must be between 0.5 and 8.0",
		})
	}
	if len(body.RoadmapIDs) < 2 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "at least 2 roadmaps required for merging",
		})
	}

	res, err := h.svc.MergeRoadmaps(body.RoadmapIDs, uid, body.ScheduleMode, body.CalendarView, body.DailyStudyHours)
	if err != nil {
		return mergeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *MergeCtrl) Preview(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		RoadmapIDs []string `json:"roadmap_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if len(body.RoadmapIDs) < 2 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "at least 2 roadmaps required for merging",
		})
	}
	preview, stats, err := h.svc.PreviewMerge(body.RoadmapIDs, uid)
	if err != nil {
		return mergeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"preview":    preview,
		"statistics": stats,
	})
}

func (h *MergeCtrl) Mergeable(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.svc.MergeableRoadmaps(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch mergeable roadmaps"})
	}
	return c.JSON(http.StatusOK, out)
}

// mergeError maps validation failures to 400 with their message; anything
// else becomes a generic 500 with no internal detail.
func mergeError(c echo.Context, err error) error {
	var ve *engine.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to merge roadmaps"})
}
