package database

import (
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/r0nnniiee/GAME-match/internal/models"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string, logg *logrus.Logger) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		logg.Fatalf("Failed to connect to database: %v", err)
	}

	logg.Info("Database connection established.")

	// Run migrations
	err = DB.AutoMigrate(&models.User{}, &models.VoiceChannel{})
	if err != nil {
		logg.Fatalf("Failed to migrate database: %v", err)
	}

	logg.Info("Database migrated successfully.")
}
