package db

import (
	"fmt"
	"log"
	"strings"

	"reminder-api/confs"
	"reminder-api/entities"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens PostgreSQL when it is configured, otherwise the SQLite file
// named by cfg.SQLitePath, and runs the migrations.
func Connect(cfg *confs.Config) (Database, error) {
	level := logger.Warn
	if cfg.LogLevel == "debug" {
		level = logger.Info
	}

	if !cfg.UsesPostgres() {
		log.Printf("No PostgreSQL configuration found, using SQLite %s", cfg.SQLitePath)
		return Open(sqlite.Open(cfg.SQLitePath), level)
	}

	var dsn string
	if cfg.DatabaseURL != "" {
		dsn = cfg.DatabaseURL
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		log.Println("Connecting to database using DB_URL...")
	} else {
		sslMode := "require"
		if cfg.DBHost == "localhost" || cfg.DBHost == "127.0.0.1" {
			sslMode = "disable"
		}

		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, sslMode)
		log.Printf("Connecting to database using individual parameters (sslmode=%s)...", sslMode)
	}

	database, err := Open(postgres.Open(dsn), level)
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.GetDB().DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(0)

	return database, nil
}

// Open connects through dialector and migrates the schema.
func Open(dialector gorm.Dialector, level logger.LogLevel) (Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Printf("Database ready (%s)", db.Dialector.Name())
	return &GormDatabase{DB: db}, nil
}

// Migrate creates or updates the users, reminders and emails tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}, &entities.Reminder{}, &entities.Email{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// OpenMemory returns a migrated in-memory SQLite database private to name.
func OpenMemory(name string) (Database, error) {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)
	return Open(sqlite.Open(dsn), logger.Silent)
}
