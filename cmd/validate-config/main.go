package main

import (
	"fmt"
	"os"

	"github.com/DarkSyed/sugari-sub000/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("🔍 Checking configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("⚠️  .env file not found: %v\n", err)
	}

	cfg, err := config.Load(os.Getenv("SUGARI_CONFIG"))
	if err != nil {
		fmt.Printf("❌ Configuration is invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Configuration is valid!")
	fmt.Printf("📋 Resolved values:\n")
	fmt.Printf("  - Data dir: %s\n", cfg.Storage.DataDir)
	fmt.Printf("  - Database file: %s\n", cfg.Storage.DBFile)
	fmt.Printf("  - Images dir: %s\n", cfg.Storage.ImagesDir())
	fmt.Printf("  - Log Level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log Output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log Format: %s\n", cfg.Logger.Format)
}
