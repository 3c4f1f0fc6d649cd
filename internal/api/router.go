package api

import (
	"net/http"
	"time"

	"smartpg/internal/api/handler"
	apiMiddleware "smartpg/internal/api/middleware"
	"smartpg/internal/app/service"
	"smartpg/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authService *service.AuthService,
	complaintService *service.ComplaintService,
	noticeService *service.NoticeService,
	residentService *service.ResidentService,
	menuService *service.MenuService,
	chatService *service.ChatService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(apiMiddleware.Metrics)

	// JWT Auth Middleware Setup
	// It will search for a token in "Authorization: Bearer T".
	r.Use(jwtauth.Verifier(security.TokenAuth)) // Verifies token, puts claims in context

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService)
		api.Group(func(publicAuth chi.Router) {
			authHandler.RegisterRoutes(publicAuth)
		})

		// Everything else requires a session token
		api.Group(func(authed chi.Router) {
			authed.Use(apiMiddleware.Authenticator)

			complaintHandler := handler.NewComplaintHandler(complaintService)
			authed.Route("/complaints", complaintHandler.RegisterRoutes)

			noticeHandler := handler.NewNoticeHandler(noticeService)
			authed.Route("/notices", noticeHandler.RegisterRoutes)

			residentHandler := handler.NewResidentHandler(residentService, authService)
			authed.Route("/residents", residentHandler.RegisterCollectionRoutes)
			authed.Route("/user", residentHandler.RegisterUserRoutes)

			menuHandler := handler.NewMenuHandler(menuService)
			authed.Route("/menu", menuHandler.RegisterRoutes)

			chatHandler := handler.NewChatHandler(chatService)
			authed.Route("/chat", chatHandler.RegisterRoutes)
		})
	})

	return r
}
