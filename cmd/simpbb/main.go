package main

import (
	"fmt"
	"os"
	"time"

	"github.com/adiprasetyo/simpbb/internal/auth"
	"github.com/adiprasetyo/simpbb/internal/config"
	"github.com/adiprasetyo/simpbb/internal/db"
	"github.com/adiprasetyo/simpbb/internal/excel"
	httphandler "github.com/adiprasetyo/simpbb/internal/http"
	"github.com/adiprasetyo/simpbb/internal/http/middleware"
	"github.com/adiprasetyo/simpbb/internal/logger"
	"github.com/adiprasetyo/simpbb/internal/mail"
	"github.com/adiprasetyo/simpbb/internal/pdf"
	"github.com/adiprasetyo/simpbb/internal/repository"
	"github.com/adiprasetyo/simpbb/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	userRepo := repository.NewUserRepository(database)
	refRepo := repository.NewRefRepository(database)
	registrationRepo := repository.NewRegistrationRepository(database)
	lspopRepo := repository.NewLspopRepository(database)
	spopRepo := repository.NewSpopRepository(database)
	spptRepo := repository.NewSpptRepository(database)
	dashboardRepo := repository.NewDashboardRepository(database)

	issuer := auth.NewIssuer(cfg.Auth.Secret, time.Duration(cfg.Auth.AccessExpireMinute)*time.Minute)
	mailer := mail.New(cfg.Mail)

	assessmentService := service.NewAssessmentService(refRepo, spptRepo, cfg.PBB)
	svcs := httphandler.Services{
		Registrations: service.NewRegistrationService(registrationRepo, refRepo),
		Spops:         service.NewSpopService(spopRepo),
		Lspops:        service.NewLspopService(lspopRepo, registrationRepo, refRepo, assessmentService),
		Sppts:         service.NewSpptService(spptRepo, spopRepo),
		Dashboards:    service.NewDashboardService(dashboardRepo),
		Refs:          service.NewRefService(refRepo),
		Dropdowns:     service.NewDropdownService(refRepo),
		Users:         service.NewUserService(userRepo, issuer, mailer, cfg.Registration),
	}

	handler := httphandler.NewHandler(svcs, excel.NewGenerator(), pdf.NewGenerator(), cfg.UploadDir, log)

	tokenParser := auth.NewParser(cfg.Auth.Secret)
	authMiddleware := middleware.Auth(tokenParser, userRepo)
	router := httphandler.NewRouter(handler, authMiddleware, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting simpbb service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
