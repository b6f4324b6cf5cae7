package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dcode-github/dream_nest/cache"
	"github.com/dcode-github/dream_nest/config"
	"github.com/dcode-github/dream_nest/events"
	"github.com/dcode-github/dream_nest/repositories"
	"github.com/dcode-github/dream_nest/routes"
	"github.com/dcode-github/dream_nest/services"
	"github.com/dcode-github/dream_nest/uploads"
	"github.com/dcode-github/dream_nest/utils"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func setupRouter(deps routes.Dependencies) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, deps)
	return router
}

func setupPublisher(settings config.RabbitMQSettings) events.Publisher {
	if settings.URL == "" {
		log.Println("RABBITMQ_URL not set, events will not be published")
		return events.NoopPublisher{}
	}
	publisher, err := events.NewRabbitMQPublisher(settings.URL, settings.Queue)
	if err != nil {
		log.Printf("Error connecting to RabbitMQ, events will not be published: %v", err)
		return events.NoopPublisher{}
	}
	log.Println("Connected to RabbitMQ")
	return publisher
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	settings, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if settings.Auth.JWTKey == "" {
		log.Println("JWT_KEY not set, login will fail until it is configured")
	}
	utils.InitJWT(settings.Auth.JWTKey, time.Duration(settings.Auth.TokenTTLMinutes)*time.Minute)

	client, err := config.ConnectDB(settings.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer config.CloseDBConnection(client)

	db := client.Database(settings.Mongo.Database)
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := config.EnsureIndexes(indexCtx, db); err != nil {
		log.Printf("Error ensuring indexes: %v", err)
	}
	cancelIndex()

	redisClient, err := config.InitRedis(settings.Redis)
	if err != nil {
		log.Printf("Continuing without shared cache: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	listingCache := cache.NewListingCache(redisClient, settings.Redis.LocalCacheSize,
		time.Duration(settings.Redis.CacheTTLMinutes)*time.Minute)
	defer listingCache.Close()

	publisher := setupPublisher(settings.RabbitMQ)
	defer publisher.Close()

	store, err := uploads.NewStore(settings.Uploads.Dir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	listingRepo := repositories.NewListingRepository(db, userRepo)
	bookingRepo := repositories.NewBookingRepository(db, listingRepo, userRepo)

	router := setupRouter(routes.Dependencies{
		Users: services.NewUserService(userRepo),
		Listings: services.NewListingService(listingRepo, listingCache, publisher, services.PhotoSettings{
			UploadRoot:    store.Root(),
			PublicBaseURL: settings.Uploads.PublicBaseURL,
		}),
		Bookings: services.NewBookingService(bookingRepo, listingRepo, publisher),
		Uploads:  store,
	})

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   settings.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + settings.Server.Port,
		Handler:        handler,
		ReadTimeout:    time.Duration(settings.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:   time.Duration(settings.Server.WriteTimeoutSeconds) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server running on port %s", settings.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
