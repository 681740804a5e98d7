// Command main runs the database seeder for the shop admin backend.
package main

import (
	"flag"
	"log"

	"shopadmin/internal/config"
	"shopadmin/internal/database"
	"shopadmin/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numProducts := flag.Int("products", 50, "Number of products to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d products, clean=%v\n", *numUsers, *numProducts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Run(seed.Options{
		NumUsers:    *numUsers,
		NumProducts: *numProducts,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
