package main

import (
	"log"

	"gorm.io/gorm/clause"

	"cafeapi/internal/config"
	"cafeapi/internal/database"
	"cafeapi/internal/domain"
)

func price(p string) *string { return &p }

var sampleCafes = []domain.Cafe{
	{
		Name:        "Science Gallery London",
		MapURL:      "https://maps.example.com/science-gallery",
		ImgURL:      "https://example.com/img/science-gallery.jpg",
		Location:    "London Bridge",
		Seats:       "50+",
		HasToilet:   true,
		HasWifi:     false,
		HasSockets:  true,
		CoffeePrice: price("£2.40"),
	},
	{
		Name:         "Social - Copeland Road",
		MapURL:       "https://maps.example.com/social-copeland",
		ImgURL:       "https://example.com/img/social-copeland.jpg",
		Location:     "Peckham",
		Seats:        "20-30",
		HasToilet:    true,
		HasWifi:      true,
		HasSockets:   false,
		CanTakeCalls: true,
		CoffeePrice:  price("£2.75"),
	},
	{
		Name:        "One & All Cafe Peckham",
		MapURL:      "https://maps.example.com/one-and-all",
		ImgURL:      "https://example.com/img/one-and-all.jpg",
		Location:    "Peckham",
		Seats:       "20-30",
		HasToilet:   true,
		HasWifi:     true,
		HasSockets:  true,
		CoffeePrice: price("£2.80"),
	},
	{
		Name:         "Mare Street Market",
		MapURL:       "https://maps.example.com/mare-street",
		ImgURL:       "https://example.com/img/mare-street.jpg",
		Location:     "Hackney",
		Seats:        "50+",
		HasToilet:    true,
		HasWifi:      true,
		HasSockets:   true,
		CanTakeCalls: true,
		CoffeePrice:  price("£2.80"),
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// existing names are left untouched, so the command can run repeatedly
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&sampleCafes)
	if res.Error != nil {
		log.Fatalf("seed cafes failed: %v", res.Error)
	}

	log.Printf("seed completed: inserted=%d of %d", res.RowsAffected, len(sampleCafes))
}
