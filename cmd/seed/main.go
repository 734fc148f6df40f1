// Command seed fills the configured database with sample reservations,
// staged online submissions and catalog offers for local development.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"catering/config"
	"catering/database/repository"
	"catering/models"
	"catering/services/auth"
	"catering/utils"
)

var (
	names     = []string{"Dela Cruz", "Santos", "Reyes", "Garcia", "Mendoza", "Bautista", "Villanueva", "Ramos"}
	locations = []string{"Function Room A", "Function Room B", "Garden Pavilion", "Off-site"}
	packages  = []string{"", "Fiesta", "Wedding", "Corporate"}
)

// randomInt returns a random integer between min and max (inclusive).
func randomInt(min, max int) int {
	return rand.Intn(max-min+1) + min
}

func sampleReservation(date time.Time) models.Reservation {
	pax := randomInt(20, 150)
	resType := models.ReservationTypeWalkIn
	if rand.Intn(3) == 0 {
		resType = models.ReservationTypeOnline
	}
	return models.Reservation{
		Name:            names[rand.Intn(len(names))],
		MobileNumber:    fmt.Sprintf("0917%07d", rand.Intn(10000000)),
		Location:        locations[rand.Intn(len(locations))],
		Package:         packages[rand.Intn(len(packages))],
		Pax:             pax,
		ReservationDate: utils.FormatDate(date),
		TotalPrice:      float64(pax) * float64(randomInt(250, 600)),
		Type:            resType,
	}
}

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	utils.InitializeLogger(cfg)

	repos, err := repository.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repos.CloseWithTimeout(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	today := utils.StartOfDay(time.Now().In(cfg.Location()))

	// Official reservations spread across the last six months and the next one.
	inserted := 0
	for offset := -180; offset <= 30; offset += randomInt(1, 4) {
		r := sampleReservation(today.AddDate(0, 0, offset))
		if err := repos.Reservations.Create(ctx, &r); err != nil {
			log.Fatalf("Failed to insert reservation: %v", err)
		}
		inserted++
	}
	fmt.Printf("Inserted %d reservations\n", inserted)

	// Staged online submissions, a few of them already lapsed.
	for offset := -5; offset <= 10; offset += 3 {
		r := sampleReservation(today.AddDate(0, 0, offset))
		staged := models.StagedReservation{
			Name:            r.Name,
			MobileNumber:    r.MobileNumber,
			Location:        r.Location,
			Package:         r.Package,
			Pax:             r.Pax,
			ReservationDate: r.ReservationDate,
			TotalPrice:      r.TotalPrice,
		}
		if err := repos.Staged.Create(ctx, &staged); err != nil {
			log.Fatalf("Failed to insert online reservation: %v", err)
		}
	}

	catalog := []models.CateringPackage{
		{Title: "Fiesta", Description: "Classic party spread", Foods: []string{"Lechon", "Pancit", "Lumpia"}, Desserts: []string{"Leche flan"}, Price: 450, MinPrice: 350},
		{Title: "Wedding", Description: "Plated dinner for the big day", Attributes: []string{"Plated", "Waiters"}, Foods: []string{"Beef caldereta", "Chicken cordon bleu"}, Desserts: []string{"Buko pandan"}, Price: 850, MinPrice: 700},
		{Title: "Corporate", Description: "Buffet lunch", Foods: []string{"Kare-kare", "Fish fillet"}, Price: 550, MinPrice: 450},
	}
	for i := range catalog {
		if err := repos.Packages.Create(ctx, &catalog[i]); err != nil {
			log.Fatalf("Failed to insert package: %v", err)
		}
	}
	for _, item := range []models.MenuItem{{Name: "Pancit canton", Price: 90}, {Name: "Lumpia shanghai", Price: 120}, {Name: "Halo-halo", Price: 75}} {
		item := item
		if err := repos.MenuItems.Create(ctx, &item); err != nil {
			log.Fatalf("Failed to insert menu item: %v", err)
		}
	}

	authSvc := &auth.DefaultAuthService{Users: repos.Users}
	if err := authSvc.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminDisplayName); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	fmt.Println("Seed complete")
}
