package ledger

import (
	"errors"
	"fmt"

	"github.com/Rajneesh001-hub/GiveEasy/models"
	"github.com/Rajneesh001-hub/GiveEasy/utils"

	"gorm.io/gorm"
)

// CampaignStore owns campaign rows and their running funding total. All total
// mutations go through ApplyDelta; metadata writes use a column whitelist so
// they can never overwrite current_amount.
type CampaignStore struct {
	db *gorm.DB
}

func NewCampaignStore(db *gorm.DB) *CampaignStore {
	return &CampaignStore{db: db}
}

// CampaignFilter narrows List server-side. Nil/empty fields are ignored.
type CampaignFilter struct {
	Verified *bool
	Category string
	Status   string
}

func (s *CampaignStore) Get(id uint) (*models.Campaign, error) {
	var c models.Campaign
	if err := s.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &c, nil
}

func (s *CampaignStore) List(filter CampaignFilter) ([]models.Campaign, error) {
	query := s.db.Model(&models.Campaign{})
	if filter.Verified != nil {
		query = query.Where("verified = ?", *filter.Verified)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	var campaigns []models.Campaign
	if err := query.Order("created_at DESC, id DESC").Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return campaigns, nil
}

// Create inserts a new campaign. New campaigns always start pending and
// unverified with a zero total regardless of what the caller filled in.
func (s *CampaignStore) Create(c *models.Campaign) error {
	c.CurrentAmount = 0
	c.Verified = false
	c.Status = models.CampaignStatusPending
	if err := s.db.Create(c).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// metadataColumns is the whitelist of columns UpdateMetadata may touch.
// current_amount, verified and status are deliberately absent.
var metadataColumns = map[string]bool{
	"title": true, "description": true, "ngo": true,
	"upi_id": true, "goal_amount": true, "category": true,
}

// UpdateMetadata applies the given metadata fields and returns the fresh row.
// Unknown or protected columns are dropped, so a bulk update can never reset
// the funding total or self-verify a campaign.
func (s *CampaignStore) UpdateMetadata(id uint, fields map[string]interface{}) (*models.Campaign, error) {
	updates := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if metadataColumns[k] {
			updates[k] = v
		}
	}
	if len(updates) > 0 {
		res := s.db.Model(&models.Campaign{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrCampaignNotFound
		}
	}
	return s.Get(id)
}

// UpdateImage stores the public URL of an uploaded campaign image.
func (s *CampaignStore) UpdateImage(id uint, url string) error {
	res := s.db.Model(&models.Campaign{}).Where("id = ?", id).Update("image", url)
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

// Remove deletes the campaign row. Donation history is kept; retired
// campaigns simply stop matching aggregation queries that join campaigns.
func (s *CampaignStore) Remove(id uint) error {
	res := s.db.Delete(&models.Campaign{}, id)
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

// Verify marks the campaign verified and active. Admin only; the policy check
// happens in the handler.
func (s *CampaignStore) Verify(id uint) (*models.Campaign, error) {
	res := s.db.Model(&models.Campaign{}).Where("id = ?", id).Updates(map[string]interface{}{
		"verified": true,
		"status":   models.CampaignStatusActive,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrCampaignNotFound
	}
	return s.Get(id)
}

// ApplyDelta atomically adds delta to the campaign's current_amount and
// returns the updated row. The increment is a single conditional UPDATE, so
// concurrent donations to the same campaign serialize on the row and can
// never lose an update.
func (s *CampaignStore) ApplyDelta(id uint, delta float64) (*models.Campaign, error) {
	if delta <= 0 {
		return nil, ErrInvalidAmount
	}
	if err := applyDeltaTx(s.db, id, delta); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// applyDeltaTx runs the conditional increment on the given handle (a live
// transaction inside the coordinator). RowsAffected == 0 means the campaign
// row is gone: the existence check and the increment are the same atomic
// statement, which closes the lookup/delete race.
func applyDeltaTx(tx *gorm.DB, id uint, delta float64) error {
	res := tx.Model(&models.Campaign{}).Where("id = ?", id).
		UpdateColumn("current_amount", gorm.Expr("current_amount + ?", utils.Round2(delta)))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}
