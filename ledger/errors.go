package ledger

import "errors"

// Sentinel errors returned by the funding ledger. Handlers match these with
// errors.Is to pick the HTTP status.
var (
	// ErrInvalidAmount rejects donations below the minimum of 1 unit of currency.
	ErrInvalidAmount = errors.New("donation amount must be at least 1")

	// ErrCampaignNotFound is returned when the referenced campaign does not exist
	// (or was deleted while the request was in flight).
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrDonationNotFound is returned for lookups of unknown donation ids.
	ErrDonationNotFound = errors.New("donation not found")

	// ErrStorage wraps backend failures after retries are exhausted. The
	// transaction guarantees no partial state was left behind.
	ErrStorage = errors.New("storage failure")
)
