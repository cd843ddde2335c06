package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"luxestate/internal/config"
	"luxestate/internal/database"
	"luxestate/internal/middleware"
	"luxestate/internal/modules/analytics"
	"luxestate/internal/modules/booking"
	"luxestate/internal/modules/chat"
	"luxestate/internal/modules/contact"
	"luxestate/internal/modules/loans"
	"luxestate/internal/modules/newsletter"
	"luxestate/internal/modules/subscription"
	jwtsvc "luxestate/internal/pkg/jwt"
	"luxestate/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := chat.ValidateCatalog(); err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(
		&store.Entry{},
		&subscription.User{},
		&subscription.Plan{},
		&subscription.Subscription{},
	); err != nil {
		log.Fatal(err)
	}

	records := store.NewRecords(store.NewGormStore(db))

	analyticsService := analytics.NewService(records)
	analyticsHandler := analytics.NewHandler(analyticsService)

	hub := chat.NewHub()
	chatService := chat.NewService(cfg.OptionReplyDelay, cfg.TextReplyDelay, hub, analyticsService)
	chatHandler := chat.NewHandler(chatService, hub)

	bookingService := booking.NewService(records, analyticsService, cfg.ConfirmationReset, cfg.MaxDocumentBytes)
	bookingHandler := booking.NewHandler(bookingService)

	contactHandler := contact.NewHandler(contact.NewService(records))
	newsletterHandler := newsletter.NewHandler(newsletter.NewService(records, analyticsService))
	loansHandler := loans.NewHandler(loans.NewService(records))

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	subscriptionService := subscription.NewService(subscription.NewRepository(db), j)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		chatHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		contactHandler.RegisterRoutes(v1)
		newsletterHandler.RegisterRoutes(v1)
		loansHandler.RegisterRoutes(v1)
		analyticsHandler.RegisterRoutes(v1)
		subscriptionHandler.RegisterPublicRoutes(v1)

		// member-only
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			subscriptionHandler.RegisterProtectedRoutes(protected)
		}
	}

	r.GET("/ws/chat", chatHandler.HandleWebSocket)

	log.Printf("listening on %s (env=%s, db=%s)", cfg.Addr, cfg.AppEnv, cfg.DatabaseURL)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
