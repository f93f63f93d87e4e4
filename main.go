package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"

	"bistro/config"
	"bistro/controller"
	"bistro/database"
	"bistro/mail"
	"bistro/route"
	"bistro/utils"
)

func main() {
	cfg := config.Load()
	if cfg.AccessTokenSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET is not set")
	}
	stripe.Key = cfg.StripeSecretKey

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := database.Connect(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	mailer := mail.NewDispatcher(mail.NewMailgunSender(cfg.MailgunDomain, cfg.MailgunAPIKey), 64)
	defer mailer.Close()

	tokens := utils.NewTokenService(cfg.AccessTokenSecret)
	guard := utils.NewGuard(tokens, store)
	handler := controller.NewHandler(store, tokens, mailer)

	// Set Gin mode
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in debug mode")
	}

	router := gin.Default()

	// Configure CORS
	origins := []string{"http://localhost:3000"}
	if cfg.AllowedOrigins != "" {
		origins = append(origins, cfg.AllowedOrigins)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	route.Register(router, handler, guard)
	log.Println("Routes configured successfully")

	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
