package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carshop/internal/config"
	"carshop/internal/game"
	"carshop/internal/repository"
	"carshop/internal/service"
	"carshop/internal/transport/rest"
	"carshop/internal/transport/ws"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// User store: MongoDB when configured, in-memory otherwise
	var userRepo repository.UserRepository
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB: ", err)
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			log.Fatal("Failed to ping MongoDB: ", err)
		}
		log.Info("Connected to MongoDB")

		userRepo = repository.NewMongoUserRepo(mongoClient.Database("carshop"))
	} else {
		log.Info("MONGO_URI not set, using in-memory user store")
		userRepo = repository.NewMemoryUserRepo()
	}

	productRepo := repository.NewProductRepo()
	peopleRepo := repository.NewPeopleRepo()

	authSvc := service.NewAuthService(userRepo, []byte(cfg.JWTSecret))
	if err := authSvc.SeedDefaultUser(ctx); err != nil {
		log.Fatal("Failed to seed default user: ", err)
	}

	bank, err := game.NewBank()
	if err != nil {
		log.Fatal("Failed to load question bank: ", err)
	}
	log.Infof("Question bank loaded: %d questions", bank.Len())

	hub := ws.NewHub()
	session := game.NewSession(bank, hub)

	router := rest.NewRouter(&rest.Container{
		AuthService: authSvc,
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		PeopleRepo:  peopleRepo,
		GameSession: session,
		WSHub:       hub,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Infof("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Info("Server exited")
}
