package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/app"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment and config file")
	}

	configPath := "config.yaml"
	if cp := os.Getenv("CONFIG_PATH"); cp != "" {
		configPath = cp
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	application.Run()
}
