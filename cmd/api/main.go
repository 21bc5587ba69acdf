package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"nilinki/internal/config"
	"nilinki/internal/database"
	"nilinki/internal/middleware"
	"nilinki/internal/modules/auth"
	"nilinki/internal/modules/catalog"
	"nilinki/internal/modules/favorite"
	"nilinki/internal/modules/inquiry"
	"nilinki/internal/modules/notification"
	"nilinki/internal/modules/quote"
	"nilinki/internal/modules/review"
	jwtsvc "nilinki/internal/pkg/jwt"
	"nilinki/internal/pkg/logger"
	"nilinki/internal/pkg/mailer"
	"nilinki/internal/pkg/response"
	"nilinki/internal/pkg/task"
	"nilinki/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger.Init(cfg.AppEnv)
	defer logger.Get().Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Get().Fatal("failed to connect to database", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	bandRepo := repository.NewBandRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	tasks := task.NewRunner(cfg.NotifyTimeout)
	defer tasks.Wait()

	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPPass)
	} else {
		mail = mailer.NewDevConsoleMailer()
	}

	notifyService := notification.NewService(mail)
	notifyHandler := notification.NewHandler(notifyService)
	notifyClient := notification.NewClient(cfg.NotifyBaseURL, cfg.InternalSecret, cfg.NotifyTimeout)

	authService := auth.NewService(db, userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(bandRepo, reviewRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	quoteService := quote.NewService(bandRepo, userRepo, inquiryRepo, notifyClient, tasks)
	quoteHandler := quote.NewHandler(quoteService, j)

	inquiryService := inquiry.NewService(bandRepo, inquiryRepo)
	inquiryHandler := inquiry.NewHandler(inquiryService)

	reviewService := review.NewService(inquiryRepo, reviewRepo)
	reviewHandler := review.NewHandler(reviewService)

	favoriteService := favorite.NewService(favoriteRepo, bandRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	v1 := r.Group("/api/v1")
	{
		// public
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/bands", catalogHandler.ListBands)
		v1.GET("/bands/:id", catalogHandler.GetBand)
		v1.GET("/bands/:id/reviews", reviewHandler.ListByBand)
		v1.GET("/bands/:id/review-eligibility", middleware.OptionalAuth(j), reviewHandler.Eligibility)

		// the quote handler validates the payload before checking auth,
		// so it resolves the bearer token itself
		v1.POST("/quote-requests", quoteHandler.Submit)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			protected.GET("/auth/me", authHandler.Me)
			protected.GET("/inquiries/mine", inquiryHandler.Mine)
			protected.POST("/reviews", reviewHandler.Create)
			protected.GET("/favorites", favoriteHandler.List)
			protected.POST("/favorites/:bandId", favoriteHandler.Add)
			protected.DELETE("/favorites/:bandId", favoriteHandler.Remove)

			dashboard := protected.Group("/dashboard")
			dashboard.Use(middleware.BandOnly())
			{
				dashboard.GET("/inquiries", inquiryHandler.List)
				dashboard.GET("/inquiries/stats", inquiryHandler.Stats)
				dashboard.PATCH("/inquiries/:id/status", inquiryHandler.UpdateStatus)
			}
		}
	}

	internal := r.Group("/internal")
	internal.Use(middleware.InternalSecret(cfg.InternalSecret))
	{
		internal.POST("/notifications/inquiry", notifyHandler.SendInquiry)
		internal.POST("/notifications/confirmation", notifyHandler.SendConfirmation)
	}

	logger.Get().Info("starting server", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Get().Fatal("server stopped", zap.Error(err))
	}
}
