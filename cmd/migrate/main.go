package main

import (
	"github.com/AzizElBechir/AzPay/internal/config" // Custom import path (Config)
	"github.com/AzizElBechir/AzPay/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Create or update the schema
}
