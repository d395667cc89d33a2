package main

import (
	"context"
	"log"
	"time"

	"quefood/internal/auth"
	"quefood/internal/cart"
	"quefood/internal/config"
	"quefood/internal/db"
	"quefood/internal/history"
	"quefood/internal/menu"
	"quefood/internal/middleware"
	"quefood/internal/payment"
	"quefood/internal/photo"
	"quefood/internal/restaurant"
	"quefood/internal/sms"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB, err := db.ConnectPostgres(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Postgres: %v", err)
	}
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	objectStore, err := photo.NewS3Store(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatal("❌ Object storage init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	smsSender := sms.NewTwilioSender(cfg.Twilio)
	facebookClient := auth.NewFacebookClient(
		cfg.Facebook.ClientID,
		cfg.Facebook.ClientSecret,
		cfg.Facebook.RedirectURI,
		cfg.Facebook.BaseURL,
	)

	customerRepo := auth.NewPostgresRepository(pgDB)
	authService := auth.NewService(customerRepo, smsSender, tokens, auth.SHA256Hasher{})
	authHandler := auth.NewHandler(authService, facebookClient)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/send-otp", authHandler.SendOTP)
		authGroup.POST("/resend-otp", authHandler.ResendOTP)
		authGroup.POST("/verify-otp", authHandler.VerifyOTP)
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/signin", authHandler.Signin)
		authGroup.POST("/google-signin", authHandler.GoogleSignin)
		authGroup.POST("/apple-signin", authHandler.AppleSignin)
		authGroup.GET("/facebook/callback", authHandler.FacebookCallback)
		authGroup.POST("/request-password-change", authHandler.RequestPasswordChange)
		authGroup.POST("/change-password", authHandler.ChangePassword)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	orderRepo := cart.NewPostgresRepository(pgDB)
	historyRepo := history.NewPostgresRepository(pgDB)
	photoRepo := photo.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	restaurantService := restaurant.NewService(restaurantRepo)
	cartService := cart.NewService(orderRepo, customerRepo, restaurantRepo, menuRepo)
	historyService := history.NewService(historyRepo, orderRepo)
	photoService := photo.NewService(photoRepo, objectStore)
	paymentClient := payment.NewClient(cfg.Stripe)

	// ───────────────────────── HANDLERS ─────────────────────────
	restaurantHandler := restaurant.NewHandler(restaurantService)
	menuHandler := menu.NewHandler(menuRepo)
	cartHandler := cart.NewHandler(cartService)
	historyHandler := history.NewHandler(historyService, authService)
	photoHandler := photo.NewHandler(photoService)
	paymentHandler := payment.NewHandler(paymentClient)

	// ───────────────────────── RESTAURANTS ─────────────────────────
	r.GET("/restaurants", restaurantHandler.Nearby)
	r.GET("/restaurants/:restaurant_id", restaurantHandler.GetByID)
	r.GET("/restaurants/:restaurant_id/menu", menuHandler.ListByRestaurant)
	r.POST("/restaurants/:restaurant_id/photos", photoHandler.Upload)
	r.GET("/photos/:file_name", photoHandler.Serve)

	// ───────────────────────── CART ─────────────────────────
	r.POST("/cart", cartHandler.CreateOrGet)
	r.GET("/cart/:order_number", cartHandler.Get)
	r.PUT("/cart/:order_number/items", cartHandler.AddItem)
	r.PUT("/cart/:order_number/items/:menu_id", cartHandler.RemoveItem)
	r.POST("/cart/:order_number/checkout", cartHandler.Checkout)
	r.PUT("/cart/:order_number/prepare", cartHandler.Prepare)
	r.GET("/cart/customer/:phone_number/:restaurant_id", cartHandler.GetByCustomerAndRestaurant)
	r.GET("/carts/:phone_number", cartHandler.ListByCustomer)
	r.DELETE("/cart/:phone_number/:restaurant_id", cartHandler.Delete)

	// ───────────────────────── CUSTOMER (PROTECTED) ─────────────────────────
	customerGroup := r.Group("/customer")
	customerGroup.Use(middleware.AuthMiddleware(tokens))
	{
		customerGroup.GET("/orders", historyHandler.Orders)
		customerGroup.POST("/history", historyHandler.Record)
		customerGroup.GET("/decode-token", historyHandler.DecodeToken)
	}

	// ───────────────────────── PAYMENTS ─────────────────────────
	r.POST("/payment-intent", paymentHandler.CreateIntent)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Printf("🚀 API listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("❌ Server:", err)
	}
}
