package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"marketplace-catalog/internal/domains/listing/model"
	"marketplace-catalog/internal/domains/premium"
)

// Memory is the in-memory listing store. It owns the canonical
// id -> listing map plus the favorites set, and hands out copies so callers
// can never mutate canonical records. Insertion order is tracked so query
// sorting can tie-break deterministically.
type Memory struct {
	mu        sync.RWMutex
	listings  map[string]*model.Listing
	order     []string
	favorites map[string]struct{}
	now       func() time.Time
	logger    zerolog.Logger
}

var _ Repository = (*Memory)(nil)

// NewMemory builds a repository pre-populated with the seed catalog.
func NewMemory(logger zerolog.Logger) *Memory {
	return NewMemoryWithClock(logger, time.Now)
}

// NewMemoryWithClock injects the clock, for deterministic tests.
func NewMemoryWithClock(logger zerolog.Logger, now func() time.Time) *Memory {
	m := &Memory{
		listings:  make(map[string]*model.Listing),
		favorites: make(map[string]struct{}),
		now:       now,
		logger:    logger.With().Str("component", "listing_repository").Logger(),
	}
	for _, l := range seedCatalog(now()) {
		m.insert(l)
	}
	return m
}

func (m *Memory) insert(l model.Listing) {
	m.listings[l.ID] = &l
	m.order = append(m.order, l.ID)
}

func (m *Memory) Create(data model.CreateListingData, sellerID, sellerName string) (model.Listing, error) {
	if err := data.Validate(); err != nil {
		return model.Listing{}, err
	}
	data = data.Normalize()

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	l := model.Listing{
		ID:          uuid.NewString(),
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		Condition:   data.Condition,
		Images:      append([]string(nil), data.Images...),
		Location:    data.Location,
		SellerID:    sellerID,
		SellerName:  sellerName,
		IsTradeOnly: data.IsTradeOnly,
		TradeFor:    data.TradeFor,
		Tags:        append([]string(nil), data.Tags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.insert(l)

	m.logger.Info().Str("listing_id", l.ID).Str("seller_id", sellerID).
		Str("title", l.Title).Msg("listing created")
	return l.Clone(), nil
}

func (m *Memory) Update(id string, data model.UpdateListingData) (model.Listing, error) {
	if err := data.Validate(); err != nil {
		return model.Listing{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.listings[id]
	if !ok {
		return model.Listing{}, &model.NotFoundError{ID: id}
	}

	// Merge into a copy so a rejected update leaves the record untouched.
	merged := l.Clone()
	if data.Title != nil {
		merged.Title = *data.Title
	}
	if data.Description != nil {
		merged.Description = *data.Description
	}
	if data.Price != nil {
		merged.Price = *data.Price
	}
	if data.Category != nil {
		merged.Category = *data.Category
	}
	if data.Condition != nil {
		merged.Condition = *data.Condition
	}
	if data.Images != nil {
		merged.Images = append([]string(nil), data.Images...)
	}
	if data.Location != nil {
		merged.Location = *data.Location
	}
	if data.IsTradeOnly != nil {
		merged.IsTradeOnly = *data.IsTradeOnly
	}
	if data.TradeFor != nil {
		merged.TradeFor = *data.TradeFor
	}
	if data.Tags != nil {
		merged.Tags = append([]string(nil), data.Tags...)
	}
	// Re-apply the commerce invariant to the merged state.
	if merged.IsTradeOnly {
		merged.Price = decimal.Zero
	} else if !merged.Price.IsPositive() {
		return model.Listing{}, &model.ValidationError{
			Field: "price", Reason: "price must be positive unless the listing is trade-only",
		}
	}
	merged.UpdatedAt = m.now()
	*l = merged

	return l.Clone(), nil
}

func (m *Memory) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.listings[id]; !ok {
		return &model.NotFoundError{ID: id}
	}
	delete(m.listings, id)
	delete(m.favorites, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	m.logger.Info().Str("listing_id", id).Msg("listing deleted")
	return nil
}

func (m *Memory) Get(id string) (model.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.listings[id]
	if !ok {
		return model.Listing{}, &model.NotFoundError{ID: id}
	}
	return l.Clone(), nil
}

func (m *Memory) ListAll() []model.Listing {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Listing, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.listings[id].Clone())
	}
	return out
}

func (m *Memory) ListBySeller(sellerID string) []model.Listing {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []model.Listing
	for _, id := range m.order {
		if l := m.listings[id]; l.SellerID == sellerID {
			out = append(out, l.Clone())
		}
	}
	return out
}

func (m *Memory) IncrementViews(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.listings[id]
	if !ok {
		return &model.NotFoundError{ID: id}
	}
	l.Views++
	l.UpdatedAt = m.now()
	return nil
}

func (m *Memory) IncrementLikes(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.listings[id]
	if !ok {
		return &model.NotFoundError{ID: id}
	}
	l.Likes++
	l.UpdatedAt = m.now()
	return nil
}

// MarkSold is idempotent: selling an already-sold listing is a no-op.
func (m *Memory) MarkSold(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.listings[id]
	if !ok {
		return &model.NotFoundError{ID: id}
	}
	if l.IsSold {
		return nil
	}
	l.IsSold = true
	l.UpdatedAt = m.now()

	m.logger.Info().Str("listing_id", id).Msg("listing marked sold")
	return nil
}

// GrantPremium restarts the boost window unconditionally; consecutive grants
// do not stack.
func (m *Memory) GrantPremium(id string, durationDays int) (model.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.listings[id]
	if !ok {
		return model.Listing{}, &model.NotFoundError{ID: id}
	}
	now := m.now()
	expiry := premium.Grant(now, durationDays)
	l.IsPremium = true
	l.PremiumExpiresAt = &expiry
	l.UpdatedAt = now

	m.logger.Info().Str("listing_id", id).Time("expires_at", expiry).
		Msg("premium boost granted")
	return l.Clone(), nil
}

func (m *Memory) ToggleFavorite(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.listings[id]; !ok {
		return false, &model.NotFoundError{ID: id}
	}
	if _, ok := m.favorites[id]; ok {
		delete(m.favorites, id)
		return false, nil
	}
	m.favorites[id] = struct{}{}
	return true, nil
}

func (m *Memory) IsFavorite(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.favorites[id]
	return ok
}

func (m *Memory) FavoriteIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Insertion order of the catalog keeps this stable across calls.
	out := make([]string, 0, len(m.favorites))
	for _, id := range m.order {
		if _, ok := m.favorites[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Load rebuilds the catalog as fresh seed listings unioned with the
// snapshot's user-authored listings. Persisted copies of seed listings are
// ignored so the demo catalog never duplicates, and favorites referencing
// unknown listings are dropped.
func (m *Memory) Load(snap model.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listings = make(map[string]*model.Listing)
	m.order = nil
	m.favorites = make(map[string]struct{})

	for _, l := range seedCatalog(m.now()) {
		m.insert(l)
	}
	restored := 0
	for _, l := range snap.Listings {
		if isSeedSeller(l.SellerID) {
			continue
		}
		if _, exists := m.listings[l.ID]; exists {
			continue
		}
		m.insert(l.Clone())
		restored++
	}
	for _, id := range snap.FavoriteIDs {
		if _, ok := m.listings[id]; ok {
			m.favorites[id] = struct{}{}
		}
	}

	m.logger.Info().Int("restored", restored).Int("favorites", len(m.favorites)).
		Msg("catalog loaded from snapshot")
}

// SnapshotState returns the durable subset: user-authored listings and
// favorite ids. Seed listings are filtered out before anything reaches the
// persistence collaborator.
func (m *Memory) SnapshotState() model.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := model.Snapshot{
		Listings:    []model.Listing{},
		FavoriteIDs: []string{},
	}
	for _, id := range m.order {
		l := m.listings[id]
		if isSeedSeller(l.SellerID) {
			continue
		}
		snap.Listings = append(snap.Listings, l.Clone())
	}
	for _, id := range m.order {
		if _, ok := m.favorites[id]; ok {
			snap.FavoriteIDs = append(snap.FavoriteIDs, id)
		}
	}
	return snap
}
