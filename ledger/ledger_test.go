package ledger

import (
	"path/filepath"
	"testing"

	"github.com/Rajneesh001-hub/GiveEasy/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "ledger.db") +
		"?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// SQLite allows one writer at a time; a single pooled connection keeps
	// concurrent transactions from tripping over SQLITE_BUSY in tests.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Campaign{}, &models.Donation{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, Password: "x", Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func createCampaign(t *testing.T, db *gorm.DB, owner uint, title string, goal float64) *models.Campaign {
	t.Helper()
	c := &models.Campaign{
		Title:       title,
		Description: "test campaign",
		NGO:         "Helping Hands",
		UPIID:       "helpinghands@upi",
		GoalAmount:  goal,
		Category:    "education",
		Status:      models.CampaignStatusActive,
		Verified:    true,
		CreatedBy:   owner,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create campaign %s: %v", title, err)
	}
	return c
}

func campaignTotal(t *testing.T, db *gorm.DB, id uint) float64 {
	t.Helper()
	var c models.Campaign
	if err := db.First(&c, id).Error; err != nil {
		t.Fatalf("reload campaign %d: %v", id, err)
	}
	return c.CurrentAmount
}
