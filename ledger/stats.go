package ledger

import (
	"fmt"

	"github.com/Rajneesh001-hub/GiveEasy/models"

	"gorm.io/gorm"
)

// Aggregator answers read-side queries over the ledger. It never writes; the
// totals it reports are recomputed from the donation rows on every call, so
// they can trail an in-flight donation but never include an uncommitted one.
type Aggregator struct {
	db *gorm.DB
}

func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// UserStats summarizes a donor's giving history.
type UserStats struct {
	DonationCount int64   `json:"total_donations"`
	TotalAmount   float64 `json:"total_amount"`
}

func (a *Aggregator) UserStats(userID uint) (*UserStats, error) {
	var stats UserStats
	if err := a.db.Model(&models.Donation{}).
		Where("user_id = ?", userID).
		Count(&stats.DonationCount).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := a.db.Model(&models.Donation{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount),0)").
		Scan(&stats.TotalAmount).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &stats, nil
}

// CampaignFeed returns the campaign's most recent completed donations, newest
// first, donor names only. Pending and failed rows never appear here.
func (a *Aggregator) CampaignFeed(campaignID uint, limit int) ([]FeedEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return NewDonationLedger(a.db).ListByCampaign(campaignID, models.DonationStatusCompleted, limit)
}
