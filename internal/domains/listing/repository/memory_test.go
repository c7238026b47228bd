package repository

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-catalog/internal/domains/listing/model"
	"marketplace-catalog/internal/domains/premium"
)

// tickingClock advances one second per reading so UpdatedAt visibly moves.
func tickingClock(start time.Time) func() time.Time {
	cur := start
	return func() time.Time {
		cur = cur.Add(time.Second)
		return cur
	}
}

func newTestRepo(t *testing.T) *Memory {
	t.Helper()
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return NewMemoryWithClock(zerolog.Nop(), tickingClock(start))
}

func createData() model.CreateListingData {
	return model.CreateListingData{
		Title:       "Warn VR EVO 10 Winch",
		Description: "Brand new, still in box.",
		Price:       decimal.NewFromInt(950),
		Category:    model.CategoryAccessories,
		Condition:   model.ConditionNew,
		Images:      []string{"https://images.unsplash.com/photo-1"},
		Location:    "La Mesa, CA",
		Tags:        []string{"winch", "recovery"},
	}
}

func TestMemory_Create(t *testing.T) {
	repo := newTestRepo(t)

	l, err := repo.Create(createData(), "user-1", "Trail Gear Co")
	require.NoError(t, err)

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "user-1", l.SellerID)
	assert.Equal(t, "Trail Gear Co", l.SellerName)
	assert.Zero(t, l.Views)
	assert.Zero(t, l.Likes)
	assert.False(t, l.IsSold)
	assert.False(t, l.IsPremium)
	assert.True(t, l.CreatedAt.Equal(l.UpdatedAt))

	t.Run("invalid data rejected", func(t *testing.T) {
		bad := createData()
		bad.Title = ""
		_, err := repo.Create(bad, "user-1", "Trail Gear Co")
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("trade-only price forced to zero", func(t *testing.T) {
		d := createData()
		d.IsTradeOnly = true
		d.Price = decimal.NewFromInt(500)
		l, err := repo.Create(d, "user-1", "Trail Gear Co")
		require.NoError(t, err)
		assert.True(t, l.Price.IsZero())
	})
}

func TestMemory_Update(t *testing.T) {
	repo := newTestRepo(t)
	l, err := repo.Create(createData(), "user-1", "Trail Gear Co")
	require.NoError(t, err)

	title := "Warn VR EVO 12 Winch"
	updated, err := repo.Update(l.ID, model.UpdateListingData{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, title, updated.Title)
	assert.True(t, updated.CreatedAt.Equal(l.CreatedAt), "CreatedAt is immutable")
	assert.True(t, updated.UpdatedAt.After(l.UpdatedAt))

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.Update("missing", model.UpdateListingData{Title: &title})
		assert.ErrorIs(t, err, model.ErrListingNotFound)
	})

	t.Run("trade-only flip zeroes price", func(t *testing.T) {
		trade := true
		got, err := repo.Update(l.ID, model.UpdateListingData{IsTradeOnly: &trade})
		require.NoError(t, err)
		assert.True(t, got.Price.IsZero())
	})

	t.Run("trade-only cannot flip off without a positive price", func(t *testing.T) {
		trade := false
		_, err := repo.Update(l.ID, model.UpdateListingData{IsTradeOnly: &trade})
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "price", verr.Field)

		// Rejected update leaves the record untouched.
		got, gerr := repo.Get(l.ID)
		require.NoError(t, gerr)
		assert.True(t, got.IsTradeOnly)
	})

	t.Run("trade-only flips off with a price in the same update", func(t *testing.T) {
		trade := false
		price := decimal.NewFromInt(300)
		got, err := repo.Update(l.ID, model.UpdateListingData{IsTradeOnly: &trade, Price: &price})
		require.NoError(t, err)
		assert.False(t, got.IsTradeOnly)
		assert.True(t, got.Price.Equal(price))
	})

	t.Run("price cannot drop to zero on a cash listing", func(t *testing.T) {
		zero := decimal.Zero
		before, err := repo.Get(l.ID)
		require.NoError(t, err)

		_, err = repo.Update(l.ID, model.UpdateListingData{Price: &zero})
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "price", verr.Field)

		after, gerr := repo.Get(l.ID)
		require.NoError(t, gerr)
		assert.True(t, after.Price.Equal(before.Price))
		assert.True(t, after.UpdatedAt.Equal(before.UpdatedAt))
	})
}

func TestMemory_CreatedAtNeverAfterUpdatedAt(t *testing.T) {
	repo := newTestRepo(t)
	l, err := repo.Create(createData(), "user-1", "Trail Gear Co")
	require.NoError(t, err)

	check := func() {
		got, err := repo.Get(l.ID)
		require.NoError(t, err)
		assert.False(t, got.CreatedAt.After(got.UpdatedAt))
	}

	check()
	require.NoError(t, repo.IncrementViews(l.ID))
	check()
	require.NoError(t, repo.IncrementLikes(l.ID))
	check()
	require.NoError(t, repo.MarkSold(l.ID))
	check()
}

func TestMemory_MarkSoldIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	l, err := repo.Create(createData(), "user-1", "Trail Gear Co")
	require.NoError(t, err)

	require.NoError(t, repo.MarkSold(l.ID))
	once, err := repo.Get(l.ID)
	require.NoError(t, err)

	require.NoError(t, repo.MarkSold(l.ID))
	twice, err := repo.Get(l.ID)
	require.NoError(t, err)

	assert.True(t, once.IsSold)
	assert.Equal(t, once, twice, "second MarkSold must be a no-op")
}

func TestMemory_GrantPremiumResetsWindow(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cur := start
	repo := NewMemoryWithClock(zerolog.Nop(), func() time.Time { return cur })

	l, err := repo.Create(createData(), "user-1", "Trail Gear Co")
	require.NoError(t, err)

	first, err := repo.GrantPremium(l.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, first.PremiumExpiresAt)
	assert.True(t, first.PremiumExpiresAt.Equal(start.Add(7*24*time.Hour)))

	// Re-boost two days later: the window restarts, it does not stack.
	cur = start.Add(2 * 24 * time.Hour)
	second, err := repo.GrantPremium(l.ID, 7)
	require.NoError(t, err)
	assert.True(t, second.PremiumExpiresAt.Equal(cur.Add(7*24*time.Hour)))
	assert.True(t, second.IsPremium)
	assert.True(t, premium.IsActiveAt(second.PremiumExpiresAt, cur))
}

func TestMemory_DeletePurgesFavorites(t *testing.T) {
	repo := newTestRepo(t)
	l, err := repo.Create(createData(), "user-1", "Trail Gear Co")
	require.NoError(t, err)

	fav, err := repo.ToggleFavorite(l.ID)
	require.NoError(t, err)
	require.True(t, fav)
	require.Contains(t, repo.FavoriteIDs(), l.ID)

	require.NoError(t, repo.Delete(l.ID))

	assert.NotContains(t, repo.FavoriteIDs(), l.ID)
	_, err = repo.Get(l.ID)
	assert.ErrorIs(t, err, model.ErrListingNotFound)

	t.Run("deleting again is NotFound", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(l.ID), model.ErrListingNotFound)
	})
}

func TestMemory_ToggleFavorite(t *testing.T) {
	repo := newTestRepo(t)
	l, err := repo.Create(createData(), "user-1", "Trail Gear Co")
	require.NoError(t, err)

	on, err := repo.ToggleFavorite(l.ID)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, repo.IsFavorite(l.ID))

	off, err := repo.ToggleFavorite(l.ID)
	require.NoError(t, err)
	assert.False(t, off)
	assert.False(t, repo.IsFavorite(l.ID))

	_, err = repo.ToggleFavorite("missing")
	assert.ErrorIs(t, err, model.ErrListingNotFound)
}

func TestMemory_SnapshotExcludesSeed(t *testing.T) {
	repo := newTestRepo(t)
	require.NotEmpty(t, repo.ListAll(), "constructor seeds the catalog")

	l, err := repo.Create(createData(), "user-1", "Trail Gear Co")
	require.NoError(t, err)
	_, err = repo.ToggleFavorite(l.ID)
	require.NoError(t, err)

	snap := repo.SnapshotState()

	require.Len(t, snap.Listings, 1, "only user-authored listings are durable")
	assert.Equal(t, l.ID, snap.Listings[0].ID)
	assert.Equal(t, []string{l.ID}, snap.FavoriteIDs)
}

func TestMemory_LoadMergesSeedWithUserListings(t *testing.T) {
	repo := newTestRepo(t)
	l, err := repo.Create(createData(), "user-1", "Trail Gear Co")
	require.NoError(t, err)
	_, err = repo.ToggleFavorite(l.ID)
	require.NoError(t, err)
	snap := repo.SnapshotState()

	// Fresh repository rehydrated from the snapshot.
	fresh := newTestRepo(t)
	fresh.Load(snap)

	all := fresh.ListAll()
	seedCount := len(seedCatalog(time.Now()))
	require.Len(t, all, seedCount+1)

	restored, err := fresh.Get(l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.Title, restored.Title)
	assert.True(t, fresh.IsFavorite(l.ID))

	t.Run("persisted seed copies are ignored", func(t *testing.T) {
		poisoned := snap
		stale := l.Clone()
		stale.ID = "stale-seed"
		stale.SellerID = "seller1"
		poisoned.Listings = append(poisoned.Listings, stale)

		r := newTestRepo(t)
		r.Load(poisoned)
		_, err := r.Get("stale-seed")
		assert.ErrorIs(t, err, model.ErrListingNotFound)
	})

	t.Run("favorites of unknown listings dropped", func(t *testing.T) {
		r := newTestRepo(t)
		r.Load(model.Snapshot{FavoriteIDs: []string{"gone"}})
		assert.Empty(t, r.FavoriteIDs())
	})
}

func TestMemory_ListBySeller(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Create(createData(), "user-1", "Trail Gear Co")
	require.NoError(t, err)
	_, err = repo.Create(createData(), "user-2", "Someone Else")
	require.NoError(t, err)

	mine := repo.ListBySeller("user-1")
	require.Len(t, mine, 1)
	assert.Equal(t, "user-1", mine[0].SellerID)
}

func TestMemory_HandsOutCopies(t *testing.T) {
	repo := newTestRepo(t)
	l, err := repo.Create(createData(), "user-1", "Trail Gear Co")
	require.NoError(t, err)

	got, err := repo.Get(l.ID)
	require.NoError(t, err)
	got.Title = "mutated"
	got.Tags[0] = "mutated"

	again, err := repo.Get(l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Warn VR EVO 10 Winch", again.Title)
	assert.Equal(t, "winch", again.Tags[0])
}
