package main

import (
	"fmt"
	"log"

	"leave-management-backend/config"
	"leave-management-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment variables")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	created, err := database.SeedAdmin(db)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	if created {
		fmt.Println("Admin user created")
	} else {
		fmt.Println("Admin user already exists")
	}
}
