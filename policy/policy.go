// Package policy centralizes the authorization rules for the funding ledger.
// Handlers consult these checks instead of repeating role comparisons inline.
package policy

import "github.com/Rajneesh001-hub/GiveEasy/models"

// CanCreateDonation requires any authenticated identity.
func CanCreateDonation(userID uint) bool {
	return userID != 0
}

// CanViewDonation allows the donor who made the donation, or an admin.
func CanViewDonation(userID uint, role string, d *models.Donation) bool {
	if role == models.RoleAdmin {
		return true
	}
	return d != nil && d.UserID == userID
}

// CanManageCampaign allows metadata updates and deletion by the campaign
// owner or an admin.
func CanManageCampaign(userID uint, role string, c *models.Campaign) bool {
	if role == models.RoleAdmin {
		return true
	}
	return c != nil && c.CreatedBy == userID
}

// CanVerifyCampaign is admin only.
func CanVerifyCampaign(role string) bool {
	return role == models.RoleAdmin
}

// PublicFeedStatus is the only donation status exposed on the unauthenticated
// campaign feed.
func PublicFeedStatus() string {
	return models.DonationStatusCompleted
}
