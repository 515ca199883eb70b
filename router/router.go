package router

import (
	"github.com/labstack/echo/v4"

	"mantrix/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		Me(echo.Context) error
	},
	roadmapCtrl interface {
		Generate(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
		Customize(echo.Context) error
		Schedule(echo.Context) error
		ExportSchedule(echo.Context) error
	},
	mergeCtrl interface {
		Merge(echo.Context) error
		Preview(echo.Context) error
		Mergeable(echo.Context) error
	},
	progressCtrl interface {
		Complete(echo.Context) error
		Summary(echo.Context) error
	},
	recommendCtrl interface{ NextUp(echo.Context) error },
	externalCtrl interface {
		Sources(echo.Context) error
		Import(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.POST("/auth/register", authCtrl.Register)
	e.POST("/auth/login", authCtrl.Login)

	api := e.Group("", middleware.JWT(jwtSecret))

	api.GET("/auth/me", authCtrl.Me)

	// Static segments before :id so /roadmaps/merge never binds as an id.
	api.POST("/roadmaps/generate", roadmapCtrl.Generate)
	api.GET("/roadmaps", roadmapCtrl.List)
	api.GET("/roadmaps/mergeable", mergeCtrl.Mergeable)
	api.POST("/roadmaps/merge", mergeCtrl.Merge)
	api.POST("/roadmaps/merge/preview", mergeCtrl.Preview)
	api.GET("/roadmaps/:id", roadmapCtrl.Get)
	api.DELETE("/roadmaps/:id", roadmapCtrl.Delete)
	api.POST("/roadmaps/:id/customize", roadmapCtrl.Customize)
	api.GET("/roadmaps/:id/schedule", roadmapCtrl.Schedule)
	api.GET("/roadmaps/:id/schedule/export", roadmapCtrl.ExportSchedule)

	api.POST("/progress/complete", progressCtrl.Complete)
	api.GET("/progress", progressCtrl.Summary)

	api.GET("/recommendations/next", recommendCtrl.NextUp)

	api.GET("/external/sources", externalCtrl.Sources)
	api.POST("/external/import", externalCtrl.Import)

	return e
}
