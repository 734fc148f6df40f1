package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catering/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned by every repository driver when a row does not exist.
var ErrNotFound = errors.New("record not found")

// Tables lists every model the relational drivers migrate.
var Tables = []interface{}{
	&models.Reservation{},
	&models.StagedReservation{},
	&models.CateringPackage{},
	&models.MenuItem{},
	&models.User{},
}

// ConnectMongo opens and pings a MongoDB connection.
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	zap.L().Info("Connected to MongoDB successfully")
	return client, nil
}

// OpenGorm opens a relational database. driver is "postgres" or "sqlite".
func OpenGorm(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported relational driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	zap.S().Infof("Database connection successful, type: %s", driver)
	return db, nil
}

// Migrate creates or updates every table in Tables.
func Migrate(db *gorm.DB) error {
	if err := db.Migrator().AutoMigrate(Tables...); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}
	return nil
}
