package ledger

import (
	"testing"
	"time"

	"github.com/Rajneesh001-hub/GiveEasy/models"

	"gorm.io/gorm"
)

// insertDonation writes a ledger row directly, bypassing the coordinator, so
// tests can control status and timestamps.
func insertDonation(t *testing.T, db *gorm.DB, userID, campaignID uint, amount float64, status string, at time.Time) *models.Donation {
	t.Helper()
	d := &models.Donation{
		UserID:        userID,
		CampaignID:    campaignID,
		Amount:        amount,
		TransactionID: "TXN-test-" + at.Format("150405.000000000"),
		Status:        status,
		CreatedAt:     at,
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("insert donation: %v", err)
	}
	return d
}

func TestUserStats(t *testing.T) {
	db := newTestDB(t)
	donor := createUser(t, db, "Asha", "asha@example.com", models.RoleUser)
	other := createUser(t, db, "Ben", "ben@example.com", models.RoleUser)
	campaign := createCampaign(t, db, donor.ID, "Books for All", 10000)

	now := time.Now().UTC()
	insertDonation(t, db, donor.ID, campaign.ID, 100, models.DonationStatusCompleted, now)
	insertDonation(t, db, donor.ID, campaign.ID, 250.5, models.DonationStatusCompleted, now.Add(time.Second))
	insertDonation(t, db, other.ID, campaign.ID, 999, models.DonationStatusCompleted, now.Add(2*time.Second))

	agg := NewAggregator(db)
	stats, err := agg.UserStats(donor.ID)
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if stats.DonationCount != 2 {
		t.Errorf("donation count = %d, want 2", stats.DonationCount)
	}
	if stats.TotalAmount != 350.5 {
		t.Errorf("total amount = %v, want 350.5", stats.TotalAmount)
	}
}

func TestUserStatsEmptyHistory(t *testing.T) {
	db := newTestDB(t)
	donor := createUser(t, db, "Asha", "asha@example.com", models.RoleUser)

	stats, err := NewAggregator(db).UserStats(donor.ID)
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if stats.DonationCount != 0 || stats.TotalAmount != 0 {
		t.Errorf("stats = %+v for donor with no donations, want zeros", stats)
	}
}

func TestCampaignFeedOrderingAndStatusFilter(t *testing.T) {
	db := newTestDB(t)
	donor := createUser(t, db, "Asha", "asha@example.com", models.RoleUser)
	campaign := createCampaign(t, db, donor.ID, "Books for All", 10000)

	now := time.Now().UTC().Truncate(time.Second)
	oldest := insertDonation(t, db, donor.ID, campaign.ID, 10, models.DonationStatusCompleted, now.Add(-2*time.Hour))
	insertDonation(t, db, donor.ID, campaign.ID, 20, models.DonationStatusPending, now.Add(-time.Hour))
	insertDonation(t, db, donor.ID, campaign.ID, 30, models.DonationStatusFailed, now.Add(-30*time.Minute))
	newest := insertDonation(t, db, donor.ID, campaign.ID, 40, models.DonationStatusCompleted, now)

	feed, err := NewAggregator(db).CampaignFeed(campaign.ID, 10)
	if err != nil {
		t.Fatalf("CampaignFeed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("feed has %d entries, want 2 (pending and failed excluded)", len(feed))
	}
	if feed[0].ID != newest.ID || feed[1].ID != oldest.ID {
		t.Errorf("feed order = [%d %d], want newest first [%d %d]", feed[0].ID, feed[1].ID, newest.ID, oldest.ID)
	}
	if feed[0].DonorName != "Asha" {
		t.Errorf("feed donor name = %q, want Asha", feed[0].DonorName)
	}
}

func TestCampaignFeedLimit(t *testing.T) {
	db := newTestDB(t)
	donor := createUser(t, db, "Asha", "asha@example.com", models.RoleUser)
	campaign := createCampaign(t, db, donor.ID, "Books for All", 10000)

	now := time.Now().UTC()
	for i := 0; i < 15; i++ {
		insertDonation(t, db, donor.ID, campaign.ID, 5, models.DonationStatusCompleted, now.Add(time.Duration(i)*time.Second))
	}

	feed, err := NewAggregator(db).CampaignFeed(campaign.ID, 0)
	if err != nil {
		t.Fatalf("CampaignFeed: %v", err)
	}
	if len(feed) != 10 {
		t.Errorf("feed has %d entries with default limit, want 10", len(feed))
	}

	feed, err = NewAggregator(db).CampaignFeed(campaign.ID, 3)
	if err != nil {
		t.Fatalf("CampaignFeed limit 3: %v", err)
	}
	if len(feed) != 3 {
		t.Errorf("feed has %d entries, want 3", len(feed))
	}
}

func TestListByUserAttachesCampaignSummaries(t *testing.T) {
	db := newTestDB(t)
	donor := createUser(t, db, "Asha", "asha@example.com", models.RoleUser)
	kept := createCampaign(t, db, donor.ID, "Books for All", 10000)
	gone := createCampaign(t, db, donor.ID, "Short Lived", 5000)

	now := time.Now().UTC()
	insertDonation(t, db, donor.ID, kept.ID, 100, models.DonationStatusCompleted, now.Add(-time.Hour))
	insertDonation(t, db, donor.ID, gone.ID, 50, models.DonationStatusCompleted, now)
	if err := db.Delete(&models.Campaign{}, gone.ID).Error; err != nil {
		t.Fatalf("delete campaign: %v", err)
	}

	got, err := NewDonationLedger(db).ListByUser(donor.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByUser returned %d rows, want 2", len(got))
	}
	// Newest first: the donation to the deleted campaign keeps its bare entry.
	if got[0].CampaignID != gone.ID || got[0].Campaign != nil {
		t.Errorf("entry for deleted campaign = %+v, want nil summary", got[0].Campaign)
	}
	if got[1].Campaign == nil || got[1].Campaign.Title != "Books for All" {
		t.Errorf("entry for live campaign missing summary: %+v", got[1].Campaign)
	}
}
