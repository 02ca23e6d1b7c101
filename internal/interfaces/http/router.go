package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/careconnect/crm-api/internal/application/analytics"
	"github.com/careconnect/crm-api/internal/application/auth"
	"github.com/careconnect/crm-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ClientUC       *usecase.ClientUseCase
	ContactUC      *usecase.ContactUseCase
	ConversationUC *usecase.ConversationUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Los paths se mantienen compatibles con
// el front existente: recursos CRM en la raíz, notificaciones y dashboard
// bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	authMW := AuthMiddleware(deps.JWTSecret)

	// Auth (register y login públicos; me protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authMW, authHandler.Me)

	// Cuenta (protegido)
	userHandler := NewUserHandler(deps.AuthUC)
	userGroup := app.Group("/user", authMW)
	userGroup.Get("/settings", userHandler.GetSettings)
	userGroup.Put("/settings", userHandler.UpdateSettings)
	userGroup.Put("/profile", userHandler.UpdateProfile)
	userGroup.Put("/password", userHandler.ChangePassword)

	// Clients (protegido)
	clientHandler := NewClientHandler(deps.ClientUC)
	clients := app.Group("/clients", authMW)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Put("/:id", clientHandler.Save)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Get("/:id/journey", clientHandler.Journey)

	// Contacts (protegido)
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts := app.Group("/contacts", authMW)
	contacts.Get("/", contactHandler.List)
	contacts.Post("/", contactHandler.Create)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Delete("/:id", contactHandler.Delete)

	// Conversations (protegido)
	conversationHandler := NewConversationHandler(deps.ConversationUC)
	conversations := app.Group("/conversations", authMW)
	conversations.Get("/", conversationHandler.List)
	conversations.Post("/", conversationHandler.Create)
	conversations.Put("/:id", conversationHandler.Update)
	conversations.Delete("/:id", conversationHandler.Delete)

	// Notifications y dashboard (protegido, bajo /api)
	api := app.Group("/api", authMW)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	api.Get("/notifications", notificationHandler.List)
	api.Post("/notifications/:id/read", notificationHandler.MarkRead)
	api.Post("/notifications/read-all", notificationHandler.MarkAllRead)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
