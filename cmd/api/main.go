package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/arriendo-api/internal/application/analytics"
	"github.com/jhoicas/arriendo-api/internal/application/auth"
	"github.com/jhoicas/arriendo-api/internal/application/leasing"
	"github.com/jhoicas/arriendo-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/arriendo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/arriendo-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/arriendo-api/internal/interfaces/http"
	"github.com/jhoicas/arriendo-api/pkg/config"
	"github.com/jhoicas/arriendo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roomRepo := postgres.NewRoomRepository(pool)
	appRepo := postgres.NewApplicationRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	eventRepo := postgres.NewLogisticsEventRepository(pool)
	docRepo := postgres.NewLegalDocumentRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	roomUC := usecase.NewRoomUseCase(roomRepo, appRepo, userRepo, txRunner)
	leasingUC := leasing.NewLeasingUseCase(roomRepo, appRepo, userRepo, txRunner)

	// PDF: contrato de arriendo de las solicitudes aprobadas
	pdfGenerator := infrapdf.NewMarotoContractGenerator()
	contractPDFUC := leasing.NewContractPDFUseCase(appRepo, roomRepo, userRepo, pdfGenerator)

	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, invoiceRepo, eventRepo, docRepo, leasingUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Arriendo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		RoomUC:      roomUC,
		LeasingUC:   leasingUC,
		ContractPDF: contractPDFUC,
		DashboardUC: dashboardUC,
		Log:         log,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
