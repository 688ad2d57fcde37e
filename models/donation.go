package models

import "time"

const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusFailed    = "failed"
)

// Donation is an immutable ledger entry. Rows are only ever inserted;
// corrections require a new compensating record.
type Donation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	CampaignID    uint      `gorm:"not null;index" json:"campaign_id"`
	Amount        float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionID string    `gorm:"size:64;not null;uniqueIndex" json:"transaction_id"`
	Message       *string   `gorm:"type:text" json:"message,omitempty"`
	Status        string    `gorm:"size:20;not null;default:'completed'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Donation) TableName() string {
	return "donations"
}
