package config

import (
	"os"
	"time"

	"food-expiry-tracker/internal/api/handlers"
	"food-expiry-tracker/internal/api/routes"
	"food-expiry-tracker/internal/middleware"
	"food-expiry-tracker/internal/utils"
	"food-expiry-tracker/pkg/food"
	"food-expiry-tracker/pkg/jwt"
	"food-expiry-tracker/pkg/notification"
	"food-expiry-tracker/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, *notification.Scheduler, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)

	// Messaging client; alerts are skipped until credentials are configured.
	var sender notification.MessageSender
	accountSID := utils.GetConfig("TWILIO_ACCOUNT_SID")
	authToken := utils.GetConfig("TWILIO_AUTH_TOKEN")
	if accountSID != "" && authToken != "" {
		sender = notification.NewTwilioSender(accountSID, authToken)
	} else {
		log.Warn("Twilio credentials missing, set TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_WHATSAPP_FROM")
	}
	dispatcher := notification.NewDispatcher(sender, notification.DispatcherConfig{
		WhatsAppFrom: utils.GetConfig("TWILIO_WHATSAPP_FROM"),
		TemplateSID:  utils.GetConfig("TWILIO_WA_TEMPLATE_SID"),
		SMSFrom:      utils.GetConfig("TWILIO_SMS_FROM"),
	})

	alertTimezone := utils.GetConfig("ALERT_TIMEZONE")
	if alertTimezone == "" {
		alertTimezone = "Asia/Kolkata"
	}
	location, err := time.LoadLocation(alertTimezone)
	if err != nil {
		log.Warnf("unknown alert timezone %q, falling back to UTC: %v", alertTimezone, err)
		location = time.UTC
	}

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository)
	notificationService := notification.NewNotificationService(foodRepository, userRepository, dispatcher, location)

	scheduler, err := notification.NewScheduler(notificationService, notification.ScheduleConfig{
		ExpiringSoonSpec:  cronSpec("CRON_EXPIRING_SOON", "51 15 * * *"),
		ExpiringTodaySpec: cronSpec("CRON_EXPIRING_TODAY", "50 15 * * *"),
		Timezone:          location.String(),
	})
	if err != nil {
		return nil, nil, err
	}

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FoodHandler:         foodHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, scheduler, nil
}

func cronSpec(key, fallback string) string {
	if spec := utils.GetConfig(key); spec != "" {
		return spec
	}
	return fallback
}
