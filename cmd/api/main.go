package main

import (
	"log"
	"net/http"
	"time"

	_ "tiendaml-pc5/docs" // swagger docs

	"tiendaml-pc5/internal/cache"
	"tiendaml-pc5/internal/config"
	"tiendaml-pc5/internal/db"
	"tiendaml-pc5/internal/gemini"
	"tiendaml-pc5/internal/handler"
	"tiendaml-pc5/internal/repository"
	"tiendaml-pc5/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title TiendaML Product Recommender API
// @version 1.0
// @description API para PC5 (recomendador híbrido, Mongo, Redis, Gemini)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	productRepo := repository.NewProductRepository()
	interactionRepo := repository.NewInteractionRepository()
	recRepo := repository.NewRecommendationRepository()

	// cliente Gemini (si no hay API key queda deshabilitado y se usan plantillas)
	geminiTimeout := time.Duration(cfg.GeminiTimeoutSec) * time.Second
	gem := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, geminiTimeout)
	if gem.Enabled() {
		log.Printf("[gemini] habilitado (model=%s)", cfg.GeminiModel)
	} else {
		log.Println("[gemini] sin API key: explicaciones con plantillas locales")
	}

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	productSvc := service.NewProductService(productRepo)
	interactionSvc := service.NewInteractionService(interactionRepo, productRepo, userRepo)
	recSvc := service.NewRecommendService(userRepo, productRepo, interactionRepo, recRepo, gem, geminiTimeout)
	statsSvc := service.NewStatsService(userRepo, productRepo, interactionRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	productH := handler.NewProductHandler(productSvc)
	interactionH := handler.NewInteractionHandler(interactionSvc)
	recH := handler.NewRecommendHandler(recSvc)
	statsH := handler.NewStatsHandler(statsSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Catálogo (público)
	r.Get("/products/search", productH.Search)
	r.Get("/products/{id}", productH.GetProduct)
	r.Get("/products/{id}/similar", recH.GetSimilarProducts)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/", authH.GetMe)
			r.Get("/interactions", interactionH.GetMyInteractions)
			r.Post("/interactions", interactionH.PostMyInteraction)
			r.Get("/recommendations", recH.GetMyRecommendations)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// edición de usuario
			r.Put("/users/{id}/update", authH.UpdateUser)
			r.Get("/users", authH.ListUsers)

			// gestión del catálogo
			r.Post("/admin/products", productH.CreateProduct)
			r.Put("/admin/products/{id}", productH.UpdateProduct)

			// interacciones y recomendaciones de cualquier usuario
			r.Route("/users/{id}", func(r chi.Router) {
				r.Get("/", authH.GetUserByID)

				r.Get("/interactions", interactionH.GetInteractions)
				r.Post("/interactions", interactionH.PostInteraction)

				// HTTP normal
				r.Get("/recommendations", recH.GetRecommendations)
				r.Get("/recommendations/history", recH.GetHistory)

				// WebSocket
				r.Get("/ws/recommendations", recH.GetRecommendationsWS)
			})

			// diagnóstico y stats
			r.Get("/admin/stats", statsH.Overview)
			r.Get("/admin/gemini/test", recH.TestGemini)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
