package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rajneesh001-hub/GiveEasy/models"
	"github.com/Rajneesh001-hub/GiveEasy/utils"

	"gorm.io/gorm"
)

// MinDonationAmount is the smallest accepted contribution (1 unit of currency).
const MinDonationAmount float64 = 1

const maxWriteAttempts = 3

// Coordinator is the transactional boundary of the funding ledger. It is the
// only writer of campaign totals: a donation's ledger append and the total
// increment commit together or not at all.
type Coordinator struct {
	db *gorm.DB
}

func NewCoordinator(db *gorm.DB) *Coordinator {
	return &Coordinator{db: db}
}

// DonationReceipt is the fully populated record returned to the donor.
type DonationReceipt struct {
	models.Donation
	Donor    DonorSummary     `json:"donor"`
	Campaign *CampaignSummary `json:"campaign"`

	// CampaignTotal and Progress reflect the campaign right after this
	// donation was applied.
	CampaignTotal float64 `json:"campaign_total"`
	Progress      int     `json:"progress_percentage"`
}

type DonorSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RecordDonation validates the amount, then inside one transaction increments
// the campaign total (conditional UPDATE, doubling as the existence check)
// and appends the donation row. Transient backend failures are retried with
// backoff; anything else surfaces as ErrStorage with no partial state.
func (c *Coordinator) RecordDonation(donorID, campaignID uint, amount float64, message string) (*DonationReceipt, error) {
	amount = utils.Round2(amount)
	if amount < MinDonationAmount {
		return nil, ErrInvalidAmount
	}

	var msg *string
	if m := strings.TrimSpace(message); m != "" {
		msg = &m
	}

	var donation models.Donation
	backoff := 50 * time.Millisecond
	for attempt := 1; ; attempt++ {
		donation = models.Donation{
			UserID:     donorID,
			CampaignID: campaignID,
			Amount:     amount,
			Message:    msg,
			Status:     models.DonationStatusCompleted,
		}
		err := c.db.Transaction(func(tx *gorm.DB) error {
			if err := applyDeltaTx(tx, campaignID, amount); err != nil {
				return err
			}
			return appendTx(tx, &donation)
		})
		if err == nil {
			break
		}
		if errors.Is(err, ErrCampaignNotFound) || errors.Is(err, ErrInvalidAmount) {
			return nil, err
		}
		if attempt >= maxWriteAttempts || !isTransientErr(err) {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	return c.receipt(&donation)
}

// receipt attaches donor and campaign summaries to a committed donation.
// These reads run outside the write transaction; the donation itself is
// already durable.
func (c *Coordinator) receipt(d *models.Donation) (*DonationReceipt, error) {
	out := &DonationReceipt{Donation: *d}

	var donor models.User
	if err := c.db.Select("id, name, email").First(&donor, d.UserID).Error; err == nil {
		out.Donor = DonorSummary{Name: donor.Name, Email: donor.Email}
	}

	var campaign models.Campaign
	if err := c.db.First(&campaign, d.CampaignID).Error; err == nil {
		out.Campaign = &CampaignSummary{ID: campaign.ID, Title: campaign.Title, NGO: campaign.NGO, Image: campaign.Image}
		out.CampaignTotal = campaign.CurrentAmount
		out.Progress = campaign.ProgressPercentage()
	}
	return out, nil
}

// isTransientErr reports whether the storage error is worth retrying
// (deadlocks, lock waits, a busy backend). Validation and schema errors never
// match.
func isTransientErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, fragment := range []string{
		"deadlock",
		"lock wait timeout",
		"try restarting transaction",
		"database is locked",
		"database table is locked",
		"busy",
	} {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}
