package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wander/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Account{},
		&db_models.Trip{},
		&db_models.TripMember{},
		&db_models.Route{},
		&db_models.Cost{},
		&db_models.Post{},
		&db_models.Comment{},
		&db_models.PostLike{},
		&db_models.TravelGroup{},
		&db_models.GroupMember{},
		&db_models.Destination{},
		&db_models.Tag{},
		&db_models.EmergencyContact{},
		&db_models.SOSAlert{},
	); err != nil {
		log.Printf("Error migrating database schema: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
