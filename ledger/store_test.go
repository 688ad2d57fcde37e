package ledger

import (
	"errors"
	"sync"
	"testing"

	"github.com/Rajneesh001-hub/GiveEasy/models"
)

func TestCreateForcesInitialState(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Owner", "owner@example.com", models.RoleUser)
	store := NewCampaignStore(db)

	c := &models.Campaign{
		Title:       "Shelter Drive",
		Description: "winter shelters",
		NGO:         "Roof For All",
		UPIID:       "roof@upi",
		GoalAmount:  20000,
		Category:    "disaster-relief",
		CreatedBy:   owner.ID,
		// A hostile payload tries to start verified with money in the pot.
		CurrentAmount: 9999,
		Verified:      true,
		Status:        models.CampaignStatusActive,
	}
	if err := store.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Get(c.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CurrentAmount != 0 {
		t.Errorf("new campaign total = %v, want 0", got.CurrentAmount)
	}
	if got.Verified {
		t.Error("new campaign is verified, want unverified")
	}
	if got.Status != models.CampaignStatusPending {
		t.Errorf("new campaign status = %q, want pending", got.Status)
	}
}

func TestUpdateMetadataCannotTouchProtectedColumns(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Owner", "owner@example.com", models.RoleUser)
	campaign := createCampaign(t, db, owner.ID, "Shelter Drive", 20000)
	store := NewCampaignStore(db)

	if _, err := store.ApplyDelta(campaign.ID, 500); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	got, err := store.UpdateMetadata(campaign.ID, map[string]interface{}{
		"title":          "Shelter Drive 2026",
		"goal_amount":    float64(25000),
		"current_amount": float64(0),
		"verified":       false,
		"status":         models.CampaignStatusPending,
	})
	if err != nil {
		t.Fatalf("UpdateMetadata: %v", err)
	}
	if got.Title != "Shelter Drive 2026" {
		t.Errorf("title = %q, want Shelter Drive 2026", got.Title)
	}
	if got.GoalAmount != 25000 {
		t.Errorf("goal = %v, want 25000", got.GoalAmount)
	}
	if got.CurrentAmount != 500 {
		t.Errorf("current_amount = %v after metadata update, want 500", got.CurrentAmount)
	}
	if !got.Verified || got.Status != models.CampaignStatusActive {
		t.Errorf("verified/status changed by metadata update: %v %q", got.Verified, got.Status)
	}
}

func TestUpdateMetadataMissingCampaign(t *testing.T) {
	db := newTestDB(t)
	store := NewCampaignStore(db)
	if _, err := store.UpdateMetadata(42, map[string]interface{}{"title": "x"}); !errors.Is(err, ErrCampaignNotFound) {
		t.Fatalf("UpdateMetadata error = %v, want ErrCampaignNotFound", err)
	}
}

func TestApplyDelta(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Owner", "owner@example.com", models.RoleUser)
	campaign := createCampaign(t, db, owner.ID, "Books for All", 10000)
	store := NewCampaignStore(db)

	got, err := store.ApplyDelta(campaign.ID, 120.506)
	if err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	if got.CurrentAmount != 120.51 {
		t.Errorf("total = %v, want 120.51 (rounded to 2 places)", got.CurrentAmount)
	}

	if _, err := store.ApplyDelta(campaign.ID, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("ApplyDelta(0) error = %v, want ErrInvalidAmount", err)
	}
	if _, err := store.ApplyDelta(campaign.ID, -10); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("ApplyDelta(-10) error = %v, want ErrInvalidAmount", err)
	}
	if _, err := store.ApplyDelta(777, 10); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("ApplyDelta on missing id error = %v, want ErrCampaignNotFound", err)
	}
	if total := campaignTotal(t, db, campaign.ID); total != 120.51 {
		t.Errorf("total = %v after rejected deltas, want 120.51", total)
	}
}

func TestApplyDeltaConcurrent(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Owner", "owner@example.com", models.RoleUser)
	campaign := createCampaign(t, db, owner.ID, "Flood Relief", 100000)
	store := NewCampaignStore(db)

	const n = 25
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.ApplyDelta(campaign.ID, 4); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent ApplyDelta: %v", err)
	}
	if total := campaignTotal(t, db, campaign.ID); total != n*4 {
		t.Errorf("total = %v, want %d", total, n*4)
	}
}

func TestVerifyActivatesCampaign(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Owner", "owner@example.com", models.RoleUser)
	store := NewCampaignStore(db)

	c := &models.Campaign{
		Title: "Shelter Drive", Description: "d", NGO: "Roof For All",
		UPIID: "roof@upi", GoalAmount: 20000, Category: "disaster-relief", CreatedBy: owner.ID,
	}
	if err := store.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Verify(c.ID)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !got.Verified || got.Status != models.CampaignStatusActive {
		t.Errorf("after Verify: verified=%v status=%q, want true/active", got.Verified, got.Status)
	}
	if _, err := store.Verify(555); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("Verify missing id error = %v, want ErrCampaignNotFound", err)
	}
}

func TestRemoveCampaign(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Owner", "owner@example.com", models.RoleUser)
	campaign := createCampaign(t, db, owner.ID, "Books for All", 10000)
	store := NewCampaignStore(db)

	if err := store.Remove(campaign.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := store.Get(campaign.ID); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("Get after Remove error = %v, want ErrCampaignNotFound", err)
	}
	if err := store.Remove(campaign.ID); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("second Remove error = %v, want ErrCampaignNotFound", err)
	}
}

func TestListFilters(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Owner", "owner@example.com", models.RoleUser)
	createCampaign(t, db, owner.ID, "Verified Education", 1000)
	pending := &models.Campaign{
		Title: "Pending Health", Description: "d", NGO: "n", UPIID: "n@upi",
		GoalAmount: 1000, Category: "healthcare", Status: models.CampaignStatusPending,
		CreatedBy: owner.ID,
	}
	if err := db.Create(pending).Error; err != nil {
		t.Fatalf("create pending campaign: %v", err)
	}

	store := NewCampaignStore(db)
	verified := true
	got, err := store.List(CampaignFilter{Verified: &verified})
	if err != nil {
		t.Fatalf("List verified: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Verified Education" {
		t.Errorf("List verified = %d rows, want the single verified campaign", len(got))
	}

	got, err = store.List(CampaignFilter{Category: "healthcare", Status: models.CampaignStatusPending})
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Pending Health" {
		t.Errorf("List healthcare/pending = %d rows, want the pending campaign", len(got))
	}
}
