package repository

import (
	"context"
	"fmt"
	"time"

	"catering/config"
	"catering/database"
	offerRepo "catering/database/repository/offer"
	reservationRepo "catering/database/repository/reservation"
	userRepo "catering/database/repository/user"
	"catering/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Re-export the repository interfaces.
type (
	ReservationRepository = reservationRepo.ReservationRepository
	StagedRepository      = reservationRepo.StagedRepository
	PackageRepository     = offerRepo.PackageRepository
	MenuItemRepository    = offerRepo.MenuItemRepository
	UserRepository        = userRepo.UserRepository
)

// Set bundles every repository of one database driver.
type Set struct {
	Reservations ReservationRepository
	Staged       StagedRepository
	Packages     PackageRepository
	MenuItems    MenuItemRepository
	Users        UserRepository

	// Ping is the store health probe.
	Ping utils.Probe
	// Close releases the underlying connection.
	Close func(ctx context.Context) error
}

// NewMongoSet builds the repositories on a MongoDB database.
func NewMongoSet(client *mongo.Client, dbName string) *Set {
	db := client.Database(dbName)
	return &Set{
		Reservations: reservationRepo.NewMongoReservationRepo(db),
		Staged:       reservationRepo.NewMongoStagedRepo(db),
		Packages:     offerRepo.NewMongoPackageRepo(db),
		MenuItems:    offerRepo.NewMongoMenuItemRepo(db),
		Users:        userRepo.NewMongoUserRepo(db),
		Ping:         func(ctx context.Context) error { return client.Ping(ctx, nil) },
		Close:        client.Disconnect,
	}
}

// NewGormSet builds the repositories on a relational database.
func NewGormSet(db *gorm.DB) *Set {
	return &Set{
		Reservations: reservationRepo.NewGormReservationRepo(db),
		Staged:       reservationRepo.NewGormStagedRepo(db),
		Packages:     offerRepo.NewGormPackageRepo(db),
		MenuItems:    offerRepo.NewGormMenuItemRepo(db),
		Users:        userRepo.NewGormUserRepo(db),
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// NewMemorySet builds process-local repositories. Data is lost on exit.
func NewMemorySet() *Set {
	return &Set{
		Reservations: reservationRepo.NewMemoryReservationRepo(),
		Staged:       reservationRepo.NewMemoryStagedRepo(),
		Packages:     offerRepo.NewMemoryPackageRepo(),
		MenuItems:    offerRepo.NewMemoryMenuItemRepo(),
		Users:        userRepo.NewMemoryUserRepo(),
		Ping:         func(context.Context) error { return nil },
		Close:        func(context.Context) error { return nil },
	}
}

// Open connects the configured database driver and returns its repositories.
func Open(cfg config.Config) (*Set, error) {
	switch cfg.DatabaseDriver {
	case "", "mongo":
		client, err := database.ConnectMongo(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewMongoSet(client, cfg.DatabaseName), nil
	case "postgres", "sqlite":
		db, err := database.OpenGorm(cfg.DatabaseDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		return NewGormSet(db), nil
	case "memory":
		utils.GetLogger().Warn("Using the in-memory store; data will not survive a restart")
		return NewMemorySet(), nil
	default:
		return nil, fmt.Errorf("unknown DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
}

// CloseWithTimeout closes the set, waiting at most d.
func (s *Set) CloseWithTimeout(d time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return s.Close(ctx)
}
