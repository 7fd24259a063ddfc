package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/arriendo-api/internal/application/analytics"
	"github.com/jhoicas/arriendo-api/internal/application/auth"
	"github.com/jhoicas/arriendo-api/internal/application/leasing"
	"github.com/jhoicas/arriendo-api/internal/application/usecase"
	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	RoomUC      *usecase.RoomUseCase
	LeasingUC   *leasing.LeasingUseCase
	ContractPDF *leasing.ContractPDFUseCase
	DashboardUC *appanalytics.DashboardUseCase
	Log         *logger.Logger
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	requireAuth := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (registro y login públicos; me/logout con token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Rooms: catálogo público de lectura, escritura solo ADMIN
	rooms := api.Group("/rooms")
	roomHandler := NewRoomHandler(deps.RoomUC, deps.Log)
	rooms.Get("/", roomHandler.List)
	rooms.Get("/:id", roomHandler.GetByID)
	rooms.Post("/", requireAuth, adminOnly, roomHandler.Create)
	rooms.Put("/:id", requireAuth, adminOnly, roomHandler.Update)
	rooms.Delete("/:id", requireAuth, adminOnly, roomHandler.Delete)
	rooms.Patch("/:id/status", requireAuth, adminOnly, roomHandler.SetStatus)
	rooms.Post("/:id/photos", requireAuth, adminOnly, roomHandler.AddPhotos)
	rooms.Delete("/:id/photos", requireAuth, adminOnly, roomHandler.RemovePhoto)

	// Users: perfil propio con token, administración solo ADMIN
	users := api.Group("/users", requireAuth)
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Patch("/me", userHandler.UpdateProfile)
	users.Post("/me/password", userHandler.ChangePassword)
	users.Get("/", adminOnly, userHandler.List)
	users.Patch("/:id/role", adminOnly, userHandler.SetRole)

	// Applications: postular y listar con token, revisión solo ADMIN
	applications := api.Group("/applications", requireAuth)
	applicationHandler := NewApplicationHandler(deps.LeasingUC, deps.ContractPDF, deps.Log)
	applications.Post("/", applicationHandler.Submit)
	applications.Get("/", applicationHandler.List)
	applications.Post("/:id/review", adminOnly, applicationHandler.Review)
	applications.Get("/:id/contract.pdf", applicationHandler.ContractPDF)

	// Dashboards
	dashboard := api.Group("/dashboard", requireAuth)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	dashboard.Get("/admin", adminOnly, dashboardHandler.GetAdminSummary)
	dashboard.Get("/tenant", dashboardHandler.GetTenantSummary)
}
