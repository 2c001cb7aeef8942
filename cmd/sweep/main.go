package main

import (
	"context"
	"log"
	"os"
	"time"

	"courtflow/internal/database"
	"courtflow/internal/repository"
)

// Marks past CONFIRMED bookings COMPLETED. Run from cron; idempotent.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	store := repository.NewStore(db)

	n, err := store.CompletePastBookings(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}

	log.Printf("sweep completed: bookings marked completed=%d", n)
}
