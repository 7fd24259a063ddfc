// seed crea el administrador inicial y tres salas de demostración.
// Es idempotente: si el admin o una sala ya existen, los salta.
//
// Uso: go run ./cmd/seed
// El admin se toma de SEED_ADMIN_NAME / SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/arriendo-api/internal/domain/entity"
	"github.com/jhoicas/arriendo-api/internal/domain/repository"
	"github.com/jhoicas/arriendo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/arriendo-api/pkg/config"
	"github.com/jhoicas/arriendo-api/pkg/logger"
)

// demoRoom definición estática de las salas de demostración.
type demoRoom struct {
	name        string
	description string
	sizeSqFt    int
	monthlyRent string
	deposit     string
}

var demoRooms = []demoRoom{
	{
		name:        "Corner Shop",
		description: "Local esquinero con doble vitrina a la calle, ideal para retail con alto tráfico peatonal.",
		sizeSqFt:    144,
		monthlyRent: "12000",
		deposit:     "12000",
	},
	{
		name:        "Main Street Store",
		description: "Local compacto sobre la calle principal, listo para entrar, con bodega interior pequeña.",
		sizeSqFt:    84,
		monthlyRent: "8000",
		deposit:     "8000",
	},
	{
		name:        "Mall Location",
		description: "Espacio dentro del centro comercial, junto al patio de comidas, con flujo constante de visitantes.",
		sizeSqFt:    144,
		monthlyRent: "10000",
		deposit:     "10000",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name + "-seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roomRepo := postgres.NewRoomRepository(pool)

	seedAdmin(cfg, userRepo, log)
	seedRooms(roomRepo, log)

	log.Info().Msg("seed completado")
}

func seedAdmin(cfg *config.Config, userRepo repository.UserRepository, log *logger.Logger) {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Warn().Msg("SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD no configurados, se omite el admin")
		return
	}

	existing, err := userRepo.GetByEmail(cfg.Seed.AdminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar admin existente")
	}
	if existing != nil {
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("admin ya existe, se omite")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña del admin")
	}

	now := time.Now().UTC()
	name := cfg.Seed.AdminName
	if name == "" {
		name = "Administrador"
	}
	admin := &entity.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("email", admin.Email).Msg("admin creado")
}

func seedRooms(roomRepo repository.RoomRepository, log *logger.Logger) {
	existing, err := roomRepo.List(repository.RoomFilters{}, 100, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("listar salas existentes")
	}
	byName := make(map[string]bool, len(existing))
	for _, r := range existing {
		byName[r.Name] = true
	}

	for _, d := range demoRooms {
		if byName[d.name] {
			log.Info().Str("room", d.name).Msg("sala ya existe, se omite")
			continue
		}
		now := time.Now().UTC()
		room := &entity.Room{
			ID:          uuid.NewString(),
			Name:        d.name,
			Description: d.description,
			SizeSqFt:    d.sizeSqFt,
			MonthlyRent: decimal.RequireFromString(d.monthlyRent),
			Deposit:     decimal.RequireFromString(d.deposit),
			Status:      entity.RoomAvailable,
			Photos:      []string{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := roomRepo.Create(room); err != nil {
			log.Fatal().Err(err).Str("room", d.name).Msg("crear sala")
		}
		log.Info().Str("room", d.name).Msg("sala creada")
	}
}
