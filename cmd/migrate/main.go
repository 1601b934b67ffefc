package main

import (
	"log"
	"os"

	"attendly.com/attendly/attendance/model"
	"attendly.com/attendly/core"
	"github.com/joho/godotenv"
)

// Creates or upgrades the attendly schema, including the composite
// unique index that backs the one-open-session-per-user-per-day rule.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DSN")
	if dsn == "" {
		log.Fatal("DSN is not set")
	}

	db := core.ConnectDB(dsn)

	if err := db.AutoMigrate(
		&core.User{},
		&model.AttendanceRecord{},
		&model.LeaveRequest{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("migration complete")
}
