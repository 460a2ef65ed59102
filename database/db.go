package database

import (
	"fmt"
	"os"

	"parcel-delivery/logger"
	logModel "parcel-delivery/models/log"
	parcelModel "parcel-delivery/models/parcel"
	paymentModel "parcel-delivery/models/payment"
	riderModel "parcel-delivery/models/rider"
	trackingModel "parcel-delivery/models/tracking"
	userModel "parcel-delivery/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection, runs migrations, and creates
// the query indexes.
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency order.
func autoMigrate() error {
	// Stage 1: rows other tables reference by email.
	stage1Models := []interface{}{
		&userModel.User{},
		&riderModel.Rider{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: the parcel aggregate and its side tables.
	stage2Models := []interface{}{
		&parcelModel.Parcel{},
		&trackingModel.TrackingEvent{},
		&paymentModel.Payment{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Logging
	if err := DB.AutoMigrate(&logModel.Log{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &logModel.Log{}, err)
	}

	return nil
}

// createIndexes creates additional indexes for the hot query paths.
func createIndexes() error {
	// Parcel indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_parcels_created_by ON parcels(created_by)").Error; err != nil {
		return fmt.Errorf("failed to create parcel created_by index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_parcels_delivery_status ON parcels(delivery_status)").Error; err != nil {
		return fmt.Errorf("failed to create parcel delivery_status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_parcels_assigned_rider_email ON parcels(assigned_rider_email)").Error; err != nil {
		return fmt.Errorf("failed to create parcel assigned_rider_email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_parcels_created_at ON parcels(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create parcel created_at index: %w", err)
	}

	// Tracking indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_tracking_events_tracking_id_time ON tracking_events(tracking_id, time)").Error; err != nil {
		return fmt.Errorf("failed to create tracking_events tracking_id index: %w", err)
	}

	// Payment indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_payments_email ON payments(email)").Error; err != nil {
		return fmt.Errorf("failed to create payment email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_payments_paid_at ON payments(paid_at)").Error; err != nil {
		return fmt.Errorf("failed to create payment paid_at index: %w", err)
	}

	// Rider indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_riders_status ON riders(status)").Error; err != nil {
		return fmt.Errorf("failed to create rider status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_riders_district ON riders(district)").Error; err != nil {
		return fmt.Errorf("failed to create rider district index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}
