package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"courtflow/internal/config"
	"courtflow/internal/database"
	"courtflow/internal/modules/availability"
	"courtflow/internal/modules/booking"
	"courtflow/internal/modules/catalog"
	"courtflow/internal/modules/pricing"
	"courtflow/internal/pkg/logger"
	"courtflow/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	slogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stdout,
	})

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	store := repository.NewStore(db)

	availabilityService := availability.NewService(
		store,
		cfg.Timezone,
		cfg.OpenHour,
		cfg.CloseHour,
		cfg.SlotMinutes,
		slogger,
	)
	availabilityHandler := availability.NewHandler(availabilityService)

	pricingService := pricing.NewService(store, cfg.Timezone, slogger)
	pricingHandler := pricing.NewHandler(pricingService)

	bookingService := booking.NewService(
		booking.NewStore(store),
		cfg.Timezone,
		cfg.SlotMinutes,
		slogger,
	)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(store)
	catalogHandler := catalog.NewHandler(catalogService, cfg.Timezone)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		availabilityHandler.RegisterRoutes(v1)
		pricingHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)

		admin := v1.Group("/admin")
		{
			catalogHandler.RegisterRoutes(admin)
		}
	}

	slogger.Info("starting api", "addr", cfg.ListenAddr, "tz", cfg.Timezone.String())
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
