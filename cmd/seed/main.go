package main

import (
	"log"
	"os"

	"courtflow/internal/database"
	"courtflow/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "courtflow.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM booking_items")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM waitlist_entries")
	db.Exec("DELETE FROM coach_availability")
	db.Exec("DELETE FROM coaches")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM courts")
	db.Exec("DELETE FROM pricing_rules")

	// ================== COURTS ==================
	log.Println("Creating courts...")
	courts := []domain.Court{
		{Name: "Indoor Premium Court", Type: domain.CourtIndoor, Status: domain.CourtActive, BaseRate: 4000, Description: "Sprung wooden floor, tournament lighting"},
		{Name: "Indoor Standard Court", Type: domain.CourtIndoor, Status: domain.CourtActive, BaseRate: 3500, Description: "Synthetic mat over concrete"},
		{Name: "Outdoor Court A", Type: domain.CourtOutdoor, Status: domain.CourtActive, BaseRate: 2800, Description: "Open air, weather permitting"},
		{Name: "Outdoor Court B", Type: domain.CourtOutdoor, Status: domain.CourtActive, BaseRate: 2800, Description: "Open air, weather permitting"},
	}
	for i := range courts {
		db.Create(&courts[i])
	}

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")
	equipment := []domain.Equipment{
		{Name: "Professional Racket", Type: domain.EquipmentRacket, TotalQuantity: 20, PricePerHour: 400, PerSlotMax: 4, Status: domain.EquipmentActive},
		{Name: "Standard Racket", Type: domain.EquipmentRacket, TotalQuantity: 30, PricePerHour: 250, PerSlotMax: 4, Status: domain.EquipmentActive},
		{Name: "Court Shoes", Type: domain.EquipmentShoes, Size: "8", TotalQuantity: 10, PricePerHour: 300, PerSlotMax: 2, Status: domain.EquipmentActive},
		{Name: "Court Shoes", Type: domain.EquipmentShoes, Size: "9", TotalQuantity: 10, PricePerHour: 300, PerSlotMax: 2, Status: domain.EquipmentActive},
		{Name: "Court Shoes", Type: domain.EquipmentShoes, Size: "10", TotalQuantity: 10, PricePerHour: 300, PerSlotMax: 2, Status: domain.EquipmentActive},
	}
	for i := range equipment {
		db.Create(&equipment[i])
	}

	// ================== COACHES ==================
	log.Println("Creating coaches...")

	weekdays := []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"}

	sarah := domain.Coach{
		Name:           "Sarah Chen",
		Specialization: "Singles technique",
		HourlyRate:     5000,
		Status:         domain.CoachActive,
	}
	for _, day := range weekdays {
		sarah.Availability = append(sarah.Availability, domain.CoachAvailability{
			DayOfWeek: day, StartTime: "09:00", EndTime: "17:00", IsActive: true,
		})
	}
	db.Create(&sarah)

	michael := domain.Coach{
		Name:           "Michael Rodriguez",
		Specialization: "Doubles strategy",
		HourlyRate:     4000,
		Status:         domain.CoachActive,
	}
	for _, day := range []string{"MONDAY", "WEDNESDAY", "FRIDAY"} {
		michael.Availability = append(michael.Availability, domain.CoachAvailability{
			DayOfWeek: day, StartTime: "14:00", EndTime: "21:00", IsActive: true,
		})
	}
	for _, day := range []string{"SATURDAY", "SUNDAY"} {
		michael.Availability = append(michael.Availability, domain.CoachAvailability{
			DayOfWeek: day, StartTime: "09:00", EndTime: "17:00", IsActive: true,
		})
	}
	db.Create(&michael)

	emily := domain.Coach{
		Name:           "Emily Tanaka",
		Specialization: "Junior development",
		HourlyRate:     4500,
		Status:         domain.CoachActive,
	}
	for _, day := range []string{"TUESDAY", "THURSDAY"} {
		emily.Availability = append(emily.Availability, domain.CoachAvailability{
			DayOfWeek: day, StartTime: "15:00", EndTime: "20:00", IsActive: true,
		})
	}
	for _, day := range []string{"SATURDAY", "SUNDAY"} {
		emily.Availability = append(emily.Availability, domain.CoachAvailability{
			DayOfWeek: day, StartTime: "10:00", EndTime: "18:00", IsActive: true,
		})
	}
	db.Create(&emily)

	// ================== PRICING RULES ==================
	log.Println("Creating pricing rules...")

	peakStart, peakEnd := "18:00", "21:00"
	indoor := domain.CourtIndoor

	rules := []domain.PricingRule{
		{
			Name:        "Peak Hours Surcharge",
			Kind:        domain.RuleTimeOfDay,
			IsActive:    true,
			Priority:    10,
			Amount:      800,
			WindowStart: &peakStart,
			WindowEnd:   &peakEnd,
		},
		{
			Name:         "Weekend Premium",
			Kind:         domain.RuleWeekend,
			IsActive:     true,
			Priority:     9,
			Amount:       15,
			IsPercentage: true,
		},
		{
			Name:         "Indoor Court Premium",
			Kind:         domain.RuleCourtType,
			IsActive:     true,
			Priority:     8,
			Amount:       10,
			IsPercentage: true,
			CourtType:    &indoor,
		},
	}
	for i := range rules {
		db.Create(&rules[i])
	}

	log.Println("Seed completed: 4 courts, 5 equipment pools, 3 coaches, 3 pricing rules")
}
