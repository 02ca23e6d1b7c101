package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/careconnect/crm-api/internal/domain/entity"
	"github.com/careconnect/crm-api/internal/domain/journey"
	"github.com/careconnect/crm-api/internal/infrastructure/postgres"
	"github.com/careconnect/crm-api/pkg/config"
	"github.com/careconnect/crm-api/pkg/logger"
)

// Datos demo para entornos de desarrollo. No correr contra producción.
type seedUser struct {
	Username string
	Password string
	Email    string
	Name     string
	Theme    string
}

var seedUsers = []seedUser{
	{Username: "admin", Password: "admin123", Email: "admin@careconnect.dev", Name: "Administrador", Theme: "default"},
	{Username: "vendedor", Password: "vendedor123", Email: "vendedor@careconnect.dev", Name: "Vendedor Demo", Theme: "dark"},
	{Username: "gerente", Password: "gerente123", Email: "gerente@careconnect.dev", Name: "Gerente Demo", Theme: "light"},
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	// Idempotente: si ya hay usuarios, no se vuelve a sembrar.
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&count); err != nil {
		log.Fatal().Err(err).Msg("contar usuarios")
	}
	if count > 0 {
		log.Info().Int("usuarios", count).Msg("datos ya sembrados, nada que hacer")
		return
	}

	users := postgres.NewUserRepository(pool)
	clients := postgres.NewClientRepository(pool)
	contacts := postgres.NewContactRepository(pool)
	conversations := postgres.NewConversationRepository(pool)

	now := time.Now()
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear contraseña demo")
		}
		settings := entity.DefaultSettings()
		settings.Theme = su.Theme
		user := &entity.User{
			ID:           uuid.New().String(),
			Username:     su.Username,
			Email:        su.Email,
			PasswordHash: string(hash),
			Name:         su.Name,
			Settings:     settings,
			CreatedAt:    now,
		}
		if err := users.Create(user); err != nil {
			log.Fatal().Err(err).Str("username", su.Username).Msg("crear usuario demo")
		}

		client := &entity.Client{
			ID:              uuid.New().String(),
			UserID:          user.ID,
			Name:            "Cliente Demo de " + su.Name,
			Status:          entity.ClientStatusActive,
			Type:            entity.ClientTypeOrdinary,
			Stage:           journey.DefaultStage,
			CreatedAt:       now,
			LastInteraction: now,
		}
		if err := clients.Create(client); err != nil {
			log.Fatal().Err(err).Msg("crear cliente demo")
		}

		contact := &entity.Contact{
			ID:       uuid.New().String(),
			ClientID: client.ID,
			Name:     "Contacto Principal",
			Email:    "contacto@cliente.demo",
			Phone:    "+57 300 000 0000",
		}
		if err := contacts.Create(contact); err != nil {
			log.Fatal().Err(err).Msg("crear contacto demo")
		}

		conv := &entity.Conversation{
			ID:       uuid.New().String(),
			ClientID: client.ID,
			Type:     entity.ConversationStrategic,
			Date:     now.Format("2006-01-02"),
			Notes:    "Primera llamada de presentación.",
		}
		if err := conversations.Create(conv); err != nil {
			log.Fatal().Err(err).Msg("crear conversación demo")
		}

		log.Info().Str("username", su.Username).Msg("usuario demo sembrado")
	}

	log.Info().Int("usuarios", len(seedUsers)).Msg("seed completado")
}
