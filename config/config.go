package config

import (
	"fmt"
	"os"

	"saapaadu-api/logger"
	"saapaadu-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(GetEnv("JWT_SECRET", "saapaadu_super_secret_2024"))

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv pulls .env into the environment when one exists. Missing file is
// fine: deployments set real env vars.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.L.Debug().Msg("no .env file found, using environment as-is")
	}
	JWTSecret = []byte(GetEnv("JWT_SECRET", "saapaadu_super_secret_2024"))
}

// InitDB connects to Postgres when DB_HOST is set, otherwise falls back to a
// local SQLite file, and migrates every model.
func InitDB() {
	dialector := openDialector()

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.L.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := Migrate(DB); err != nil {
		logger.L.Fatal().Err(err).Msg("failed to migrate database")
	}

	logger.L.Info().Msg("database connected and migrated")
}

func openDialector() gorm.Dialector {
	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			host,
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			GetEnv("DB_PORT", "5432"),
			GetEnv("DB_SSLMODE", "disable"),
		)
		return postgres.Open(dsn)
	}
	return sqlite.Open(GetEnv("SQLITE_PATH", "saapaadu.db"))
}

// Migrate runs auto-migration for all models. Split out so tests can point
// an in-memory database at the same schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Vendor{},
		&models.Hotspot{},
		&models.Order{},
		&models.Notification{},
	)
}
