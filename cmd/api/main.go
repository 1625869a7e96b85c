package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/berkeoz/quizpark-backend/internal/config"
	"github.com/berkeoz/quizpark-backend/internal/handler"
	"github.com/berkeoz/quizpark-backend/internal/middleware"
	"github.com/berkeoz/quizpark-backend/internal/repository"
	"github.com/berkeoz/quizpark-backend/internal/service"
	"github.com/berkeoz/quizpark-backend/pkg/database"
	"github.com/berkeoz/quizpark-backend/pkg/email"
	"github.com/berkeoz/quizpark-backend/pkg/logger"
	"github.com/berkeoz/quizpark-backend/pkg/payment"
	"github.com/berkeoz/quizpark-backend/pkg/push"
	"github.com/berkeoz/quizpark-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()

	appLogger := logger.New()
	defer appLogger.Sync()

	// Initialize database (migrationlar içeride çalışır)
	db := database.NewDatabase()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	tagRepo := repository.NewTagRepository(db)
	eventRepo := repository.NewEventRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	planRepo := repository.NewMembershipPlanRepository(db)
	purchaseRepo := repository.NewMembershipPurchaseRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	appVersionRepo := repository.NewAppVersionRepository(db)

	// External services
	emailService := email.NewEmailService(appLogger)
	stripeService := payment.NewStripeService(
		cfg.Stripe.SecretKey,
		cfg.Stripe.WebhookSecret,
		cfg.Stripe.SuccessURL,
		cfg.Stripe.CancelURL,
	)
	pushService := push.NewPushService(cfg.Push.AppID, cfg.Push.APIKey)

	// Rastgele seçimler için ortak kaynak
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Services
	authService := service.NewAuthService(userRepo, adminRepo, otpRepo, emailService, appLogger)
	userService := service.NewUserService(userRepo, promotionRepo)
	categoryService := service.NewCategoryService(categoryRepo, tagRepo, userRepo, promotionRepo, appLogger)
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	tagService := service.NewTagService(tagRepo, rng)
	eventService := service.NewEventService(db, eventRepo, userRepo, promotionRepo, cfg.ReferenceTimezone, rng, appLogger)
	promotionService := service.NewPromotionService(promotionRepo, userRepo)
	paymentService := service.NewPaymentService(stripeService, userRepo, planRepo, purchaseRepo, appLogger)
	notificationService := service.NewNotificationService(pushService, userRepo, notificationRepo, appLogger)
	appVersionService := service.NewAppVersionService(appVersionRepo)

	// Validator
	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	categoryHandler := handler.NewCategoryHandler(categoryService, validator)
	questionHandler := handler.NewQuestionHandler(questionService, validator)
	tagHandler := handler.NewTagHandler(tagService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	promotionHandler := handler.NewPromotionHandler(promotionService, validator)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	notificationHandler := handler.NewNotificationHandler(notificationService, validator)
	appVersionHandler := handler.NewAppVersionHandler(appVersionService, validator)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "https://quizpark.app, https://www.quizpark.app, http://localhost:5173",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/request-otp", authHandler.RequestOTP)
	auth.Post("/verify-otp", authHandler.VerifyOTP)
	auth.Post("/admin/login", authHandler.AdminLogin)

	api.Get("/app-version", appVersionHandler.GetByPlatform)
	api.Get("/payments/plans", paymentHandler.GetPlans)

	// Stripe webhook (public)
	api.Post("/payments/webhook", paymentHandler.HandleStripeWebhook)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		user := api.Group("/user")
		user.Get("/profile", userHandler.GetMyProfile)
		user.Put("/profile", userHandler.UpdateProfile)
		user.Post("/device-token", userHandler.RegisterDeviceToken)

		categories := api.Group("/categories")
		categories.Get("/", categoryHandler.GetRootCategories)
		categories.Get("/:id/tree", categoryHandler.GetCategoryTree)
		categories.Get("/:id/questions", questionHandler.ListByCategory)
		categories.Post("/:id/like", categoryHandler.ToggleLike)
		categories.Post("/:id/reference", categoryHandler.RedeemReference)

		questions := api.Group("/questions")
		questions.Post("/:id/like", questionHandler.ToggleLike)
		questions.Post("/:id/complete", questionHandler.MarkCompleted)

		tags := api.Group("/tags")
		tags.Get("/", tagHandler.GetAll)
		tags.Get("/random", tagHandler.GetRandomTag)

		events := api.Group("/events")
		events.Post("/find", eventHandler.FindMatch)
		events.Get("/recent", eventHandler.RecentEvents)
		events.Post("/:id/like", eventHandler.ToggleLike)

		promotions := api.Group("/promotions")
		promotions.Post("/redeem", promotionHandler.Redeem)

		payments := api.Group("/payments")
		payments.Get("/history", paymentHandler.GetPurchaseHistory)
		payments.Post("/checkout/:planId", paymentHandler.CreateCheckoutSession)

		// Admin routes
		admin := api.Group("/admin", middleware.AdminOnly())

		adminCategories := admin.Group("/categories")
		adminCategories.Post("/", categoryHandler.CreateCategory)
		adminCategories.Put("/:id", categoryHandler.UpdateCategory)
		adminCategories.Delete("/:id", categoryHandler.DeleteCategory)

		adminQuestions := admin.Group("/questions")
		adminQuestions.Post("/", questionHandler.CreateQuestion)
		adminQuestions.Put("/:id", questionHandler.UpdateQuestion)
		adminQuestions.Delete("/:id", questionHandler.DeleteQuestion)

		adminTags := admin.Group("/tags")
		adminTags.Post("/", tagHandler.CreateTag)
		adminTags.Put("/:id", tagHandler.UpdateTag)
		adminTags.Delete("/:id", tagHandler.DeleteTag)

		adminEvents := admin.Group("/events")
		adminEvents.Get("/", eventHandler.GetEvents)
		adminEvents.Post("/", eventHandler.CreateEvent)
		adminEvents.Put("/:id", eventHandler.UpdateEvent)
		adminEvents.Delete("/:id", eventHandler.DeleteEvent)
		adminEvents.Get("/questions", eventHandler.GetEventQuestions)
		adminEvents.Post("/questions", eventHandler.CreateEventQuestion)
		adminEvents.Get("/questions/:id/answers", eventHandler.GetEventAnswers)
		adminEvents.Post("/answers", eventHandler.CreateEventAnswer)

		adminPromotions := admin.Group("/promotions")
		adminPromotions.Get("/", promotionHandler.GetCodes)
		adminPromotions.Post("/", promotionHandler.CreateCode)
		adminPromotions.Delete("/:id", promotionHandler.DeleteCode)

		adminNotifications := admin.Group("/notifications")
		adminNotifications.Get("/", notificationHandler.GetLogs)
		adminNotifications.Post("/", notificationHandler.Broadcast)

		adminVersions := admin.Group("/app-versions")
		adminVersions.Get("/", appVersionHandler.GetAll)
		adminVersions.Put("/", appVersionHandler.Upsert)
		adminVersions.Delete("/:id", appVersionHandler.Delete)
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}
