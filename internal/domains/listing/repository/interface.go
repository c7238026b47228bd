package repository

import (
	"marketplace-catalog/internal/domains/listing/model"
)

// Repository owns the authoritative listing map and the favorites set.
// All operations are synchronous and run to completion; the only writer is
// the facade's command path, so no locking is required beyond the internal
// guard against accidental concurrent reads.
type Repository interface {
	// Create validates, assigns id/timestamps/zero counters and stores the
	// record. Returns *model.ValidationError naming the offending field.
	Create(data model.CreateListingData, sellerID, sellerName string) (model.Listing, error)

	// Update merges the present fields and refreshes UpdatedAt.
	Update(id string, data model.UpdateListingData) (model.Listing, error)

	// Delete removes the listing and purges its id from the favorites set.
	Delete(id string) error

	Get(id string) (model.Listing, error)
	ListAll() []model.Listing
	ListBySeller(sellerID string) []model.Listing

	// Narrow mutators; each refreshes UpdatedAt.
	IncrementViews(id string) error
	IncrementLikes(id string) error
	// MarkSold is a one-way transition and idempotent.
	MarkSold(id string) error
	// GrantPremium restarts the boost window at now + durationDays.
	GrantPremium(id string, durationDays int) (model.Listing, error)

	// Favorites. ToggleFavorite reports the new state.
	ToggleFavorite(id string) (bool, error)
	IsFavorite(id string) bool
	FavoriteIDs() []string

	// Load replaces state with regenerated seed listings unioned with the
	// snapshot's user-authored listings. SnapshotState is the inverse:
	// user-authored listings and favorite ids only.
	Load(snap model.Snapshot)
	SnapshotState() model.Snapshot
}
