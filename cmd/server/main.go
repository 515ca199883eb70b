package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"mantrix/config"
	"mantrix/database"
	"mantrix/router"

	"mantrix/pkg/ai"

	authCtrlImp "mantrix/pkg/auth/controllerImp"
	authRepoImp "mantrix/pkg/auth/repositoryImp"
	authSvcImp "mantrix/pkg/auth/serviceImp"

	roadmapCtrlImp "mantrix/pkg/roadmap/controllerImp"
	roadmapRepoImp "mantrix/pkg/roadmap/repositoryImp"
	roadmapSvcImp "mantrix/pkg/roadmap/serviceImp"

	mergeCtrlImp "mantrix/pkg/merge/controllerImp"
	mergeSvcImp "mantrix/pkg/merge/serviceImp"

	progressCtrlImp "mantrix/pkg/progress/controllerImp"
	progressRepoImp "mantrix/pkg/progress/repositoryImp"
	progressSvcImp "mantrix/pkg/progress/serviceImp"

	recommendCtrlImp "mantrix/pkg/recommend/controllerImp"
	recommendSvcImp "mantrix/pkg/recommend/serviceImp"

	externalCtrlImp "mantrix/pkg/external/controllerImp"
	externalSvcImp "mantrix/pkg/external/serviceImp"

	healthCtrlImp "mantrix/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = ai.NewMock()
	}

	// 5) Repos
	userRepo := authRepoImp.New(db)
	roadmapRepo := roadmapRepoImp.New(db)
	progressRepo := progressRepoImp.New(db)

	// 6) Services
	authSvc := authSvcImp.New(userRepo, cfg.JWTSecret, cfg.TokenTTLHours)
	roadmapSvc := roadmapSvcImp.New(llm, roadmapRepo)
	mergeSvc := mergeSvcImp.New(roadmapRepo)
	progressSvc := progressSvcImp.New(progressRepo, roadmapRepo)
	recommendSvc := recommendSvcImp.New(roadmapRepo, progressRepo)
	externalSvc := externalSvcImp.New(roadmapRepo)

	// 7) Controllers
	authCtrl := authCtrlImp.New(authSvc)
	roadmapCtrl := roadmapCtrlImp.New(roadmapSvc, roadmapRepo)
	mergeCtrl := mergeCtrlImp.New(mergeSvc)
	progressCtrl := progressCtrlImp.New(progressSvc)
	recommendCtrl := recommendCtrlImp.New(recommendSvc)
	externalCtrl := externalCtrlImp.New(externalSvc)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(
		e,
		cfg.JWTSecret,
		authCtrl,
		roadmapCtrl,
		mergeCtrl,
		progressCtrl,
		recommendCtrl,
		externalCtrl,
		healthCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
