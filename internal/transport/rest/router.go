package rest

import (
	"net/http"

	"carshop/internal/game"
	"carshop/internal/repository"
	"carshop/internal/service"
	"carshop/internal/transport/rest/handler"
	"carshop/internal/transport/rest/middleware"
	"carshop/internal/transport/ws"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService *service.AuthService
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	PeopleRepo  repository.PeopleRepository
	GameSession *game.Session
	WSHub       *ws.Hub
	CORSOrigins string
	ImagesDir   string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	userHandler := handler.NewUserHandler(c.UserRepo)
	productHandler := handler.NewProductHandler(c.ProductRepo)
	peopleHandler := handler.NewPeopleHandler(c.PeopleRepo)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.GameSession)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware(c.CORSOrigins))

	api := r.PathPrefix("/api").Subrouter()

	// Public routes: registration, login and the product catalog
	api.HandleFunc("/user/register", authHandler.Register).Methods("POST", "OPTIONS")
	api.HandleFunc("/user/login", authHandler.Login).Methods("POST", "OPTIONS")
	api.HandleFunc("/product", productHandler.Find).Methods("GET", "OPTIONS")
	api.HandleFunc("/product/{page}", productHandler.GetPage).Methods("GET", "OPTIONS")

	// Everything else under /api requires a valid token
	protected := api.NewRoute().Subrouter()
	protected.Use(authMW.RequireAuth)
	protected.HandleFunc("/users", userHandler.List).Methods("GET", "OPTIONS")
	protected.HandleFunc("/peoples", peopleHandler.List).Methods("GET", "OPTIONS")
	protected.HandleFunc("/peoples/{page}/{size}", peopleHandler.GetPage).Methods("GET", "OPTIONS")

	// Game channel; the token is checked at handshake time
	r.HandleFunc("/ws", wsHandler.Serve).Methods("GET")

	// Static assets
	imagesDir := c.ImagesDir
	if imagesDir == "" {
		imagesDir = "images"
	}
	r.PathPrefix("/images/").Handler(http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(origins string) mux.MiddlewareFunc {
	if origins == "" {
		origins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
