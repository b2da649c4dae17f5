package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"broskii-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "broskii_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase inserts the current trip when the catalog is empty, so
// a fresh environment has something to book against. booked_count and
// status are maintained by the operations side, never by this service.
func SeedDatabase() {
	var tripCount int64
	DB.Model(&models.Trip{}).Count(&tripCount)
	if tripCount > 0 {
		log.Println("Trips already seeded")
		return
	}

	inclusions, err := json.Marshal([]map[string]string{
		{"text": "Return flights with BA from LHR to GVA"},
		{"text": "Full 3 Valleys Ski pass (Worth £370)"},
		{"text": "4★ Luxury Hotel (L'Oxalys)"},
		{"text": "Private Coach Transfer"},
		{"text": "Ski in/out access"},
		{"text": "Spa Facilities"},
	})
	if err != nil {
		log.Printf("warning: failed to marshal trip inclusions: %v", err)
		return
	}

	trip := models.Trip{
		ID:               uuid.NewString(),
		Title:            "SKI 3 VALLEYS",
		Subtitle:         "Europe's Highest Ski Resort",
		Location:         "Val Thorens, French Alps",
		Dates:            "10th - 17th January 2026",
		Duration:         "7 Days",
		PriceFull:        1200,
		PriceDeposit:     300,
		CardPriceFull:    1236,
		CardPriceDeposit: 309,
		DescriptionHTML:  "<p>A premium alpine ski experience in the heart of the French Alps.</p>",
		Inclusions:       datatypes.JSON(inclusions),
		Capacity:         52,
		BookedCount:      0,
		Status:           "open",
	}

	if err := DB.Create(&trip).Error; err != nil {
		log.Printf("warning: failed to seed trip: %v", err)
		return
	}
	log.Println("Trips seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Trip{},
		&models.Booking{},
		&models.WaitlistEntry{},
		&models.Subscriber{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
