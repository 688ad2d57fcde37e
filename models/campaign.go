package models

import (
	"math"
	"time"
)

const (
	CampaignStatusPending   = "pending"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
)

// CampaignCategories is the fixed set of accepted campaign categories.
var CampaignCategories = []string{
	"education", "healthcare", "environment", "poverty", "disaster-relief", "other",
}

type Campaign struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	NGO           string    `gorm:"column:ngo;size:150;not null" json:"ngo"`
	UPIID         string    `gorm:"column:upi_id;size:100;not null" json:"upi_id"`
	GoalAmount    float64   `gorm:"type:decimal(15,2);not null" json:"goal_amount"`
	CurrentAmount float64   `gorm:"type:decimal(15,2);not null;default:0.00" json:"current_amount"`
	Image         string    `gorm:"size:255" json:"image"`
	Category      string    `gorm:"size:30;not null;index" json:"category"`
	Verified      bool      `gorm:"not null;default:false" json:"verified"`
	Status        string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedBy     uint      `gorm:"not null;index" json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"-"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// ProgressPercentage is derived on read and intentionally not clamped:
// over-funded campaigns report values above 100.
func (c *Campaign) ProgressPercentage() int {
	if c.GoalAmount <= 0 {
		return 0
	}
	return int(math.Round(c.CurrentAmount / c.GoalAmount * 100))
}

// ValidCampaignCategory reports whether cat is one of the accepted categories.
func ValidCampaignCategory(cat string) bool {
	for _, c := range CampaignCategories {
		if c == cat {
			return true
		}
	}
	return false
}
