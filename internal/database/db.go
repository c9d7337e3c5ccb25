package database

import (
	"os"
	"time"

	"salesmgt/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
}

// Logger exposes the package logger so handlers share one configured instance.
func Logger() *logrus.Logger {
	return log
}

// Connect opens the MySQL connection and syncs the schema.
// Retries a few times so the app survives the database coming up late.
func Connect() {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set. Configure the database in .env")
	}

	var err error
	for i := 0; i < 5; i++ {
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		log.WithField("attempt", i+1).Warn("Failed to connect to database, retrying in 2 seconds")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database after 5 attempts")
	}

	log.Info("Connected to MySQL")

	if err := Migrate(DB); err != nil {
		log.WithError(err).Fatal("Schema migration failed")
	}
	log.Info("Database schema synced")
}

// Migrate syncs every model. Split out so tests can run it against
// an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Vendor{},
		&models.Customer{},
		&models.Category{},
		&models.Item{},
		&models.Purchase{},
		&models.Sale{},
		&models.SaleDetail{},
		&models.Delivery{},
	)
}
