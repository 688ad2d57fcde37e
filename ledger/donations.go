package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rajneesh001-hub/GiveEasy/models"
	"github.com/Rajneesh001-hub/GiveEasy/utils"

	"gorm.io/gorm"
)

// DonationLedger is the append-only record of donation events. Rows are only
// ever inserted; there is no update or delete path.
type DonationLedger struct {
	db *gorm.DB
}

func NewDonationLedger(db *gorm.DB) *DonationLedger {
	return &DonationLedger{db: db}
}

// UserDonation is a ledger entry joined with its campaign summary for the
// donor's own history view.
type UserDonation struct {
	models.Donation
	Campaign *CampaignSummary `json:"campaign,omitempty"`
}

// CampaignSummary is the slice of campaign fields embedded in donation views.
type CampaignSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	NGO   string `json:"ngo"`
	Image string `json:"image,omitempty"`
}

// FeedEntry is a ledger entry joined with the donor's display name for the
// public campaign feed. Donor email is deliberately not exposed here.
type FeedEntry struct {
	ID            uint    `json:"id"`
	Amount        float64 `json:"amount"`
	Message       string  `json:"message,omitempty"`
	TransactionID string  `json:"transaction_id"`
	CreatedAt     string  `json:"created_at"`
	DonorName     string  `json:"donor_name"`
}

// appendTx inserts a donation inside the coordinator's transaction, filling
// in a generated transaction reference when the caller did not supply one.
func appendTx(tx *gorm.DB, d *models.Donation) error {
	if d.Amount <= 0 {
		return ErrInvalidAmount
	}
	if d.TransactionID == "" {
		d.TransactionID = utils.GenerateTransactionRef()
	}
	if d.Status == "" {
		d.Status = models.DonationStatusCompleted
	}
	return tx.Create(d).Error
}

func (l *DonationLedger) Get(id uint) (*models.Donation, error) {
	var d models.Donation
	if err := l.db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &d, nil
}

// ListByUser returns the user's donations newest first, each with a campaign
// summary attached. Campaigns deleted since the donation keep the bare entry.
func (l *DonationLedger) ListByUser(userID uint) ([]UserDonation, error) {
	var donations []models.Donation
	if err := l.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if len(donations) == 0 {
		return []UserDonation{}, nil
	}

	campaignIDs := make([]uint, 0, len(donations))
	seen := make(map[uint]struct{})
	for _, d := range donations {
		if _, ok := seen[d.CampaignID]; !ok {
			seen[d.CampaignID] = struct{}{}
			campaignIDs = append(campaignIDs, d.CampaignID)
		}
	}

	var campaigns []models.Campaign
	if err := l.db.Select("id, title, ngo, image").Where("id IN ?", campaignIDs).
		Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	campaignMap := make(map[uint]models.Campaign, len(campaigns))
	for _, c := range campaigns {
		campaignMap[c.ID] = c
	}

	out := make([]UserDonation, 0, len(donations))
	for _, d := range donations {
		entry := UserDonation{Donation: d}
		if c, ok := campaignMap[d.CampaignID]; ok {
			entry.Campaign = &CampaignSummary{ID: c.ID, Title: c.Title, NGO: c.NGO, Image: c.Image}
		}
		out = append(out, entry)
	}
	return out, nil
}

// ListByCampaign returns up to limit donations for the campaign newest first,
// filtered to the given status when one is supplied.
func (l *DonationLedger) ListByCampaign(campaignID uint, status string, limit int) ([]FeedEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	query := l.db.Where("campaign_id = ?", campaignID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var donations []models.Donation
	if err := query.Order("created_at DESC, id DESC").Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if len(donations) == 0 {
		return []FeedEntry{}, nil
	}

	userIDs := make([]uint, 0, len(donations))
	seenUsers := make(map[uint]struct{})
	for _, d := range donations {
		if _, ok := seenUsers[d.UserID]; !ok {
			seenUsers[d.UserID] = struct{}{}
			userIDs = append(userIDs, d.UserID)
		}
	}
	var users []models.User
	if err := l.db.Select("id, name").Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	nameByID := make(map[uint]string, len(users))
	for _, u := range users {
		nameByID[u.ID] = u.Name
	}

	out := make([]FeedEntry, 0, len(donations))
	for _, d := range donations {
		out = append(out, FeedEntry{
			ID:            d.ID,
			Amount:        d.Amount,
			Message:       utils.GetStringValue(d.Message),
			TransactionID: d.TransactionID,
			CreatedAt:     d.CreatedAt.UTC().Format(time.RFC3339),
			DonorName:     nameByID[d.UserID],
		})
	}
	return out, nil
}
