package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"marketplace-catalog/internal/domains/listing/model"
	"marketplace-catalog/internal/domains/listing/repository"
	moderation "marketplace-catalog/internal/domains/moderation/model"
	"marketplace-catalog/internal/domains/premium"
	"marketplace-catalog/internal/infrastructure/identity"
	"marketplace-catalog/pkg/store"
)

// Moderator is what the facade needs from the moderation service: an
// awaitable batch that resolves every listing to a verdict.
type Moderator interface {
	ModerateBatch(ctx context.Context, listings []model.Listing) map[string]moderation.Verdict
}

// ModeratedListing annotates a listing with its display-time verdict.
type ModeratedListing struct {
	model.Listing
	Verdict moderation.Verdict `json:"verdict"`
}

// Marketplace is the single entry point for external callers. Commands
// mutate the repository and trigger a best-effort snapshot write; queries
// flow through the query engine and, on request, the moderation batch.
// It owns the session state (current filter spec) that is not durable.
type Marketplace struct {
	repo      repository.Repository
	query     *QueryEngine
	moderator Moderator // nil disables the moderation gate
	snapshots store.SnapshotStore
	ids       identity.Provider
	logger    zerolog.Logger
	now       func() time.Time

	filters model.FilterSpec
}

func NewMarketplace(
	repo repository.Repository,
	query *QueryEngine,
	moderator Moderator,
	snapshots store.SnapshotStore,
	ids identity.Provider,
	logger zerolog.Logger,
) *Marketplace {
	return &Marketplace{
		repo:      repo,
		query:     query,
		moderator: moderator,
		snapshots: snapshots,
		ids:       ids,
		logger:    logger.With().Str("component", "marketplace").Logger(),
		now:       time.Now,
	}
}

// Load rehydrates the repository from the persistence collaborator. Any
// load failure degrades to an empty user-listing set plus regenerated seed
// data; the error is returned so the caller can report it.
func (m *Marketplace) Load(ctx context.Context) error {
	data, found, err := m.snapshots.Load(ctx)
	if err != nil {
		m.logger.Error().Err(err).Msg("snapshot load failed, starting from seed catalog")
		m.repo.Load(model.Snapshot{})
		return &model.PersistenceError{Op: "load", Err: err}
	}
	if !found {
		m.repo.Load(model.Snapshot{})
		return nil
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		m.logger.Error().Err(err).Msg("snapshot corrupt, starting from seed catalog")
		m.repo.Load(model.Snapshot{})
		return &model.PersistenceError{Op: "load", Err: err}
	}
	m.repo.Load(snap)
	return nil
}

// persist writes the current snapshot. Save failures are surfaced to the
// command caller but the in-memory mutation stands; durability is
// best-effort.
func (m *Marketplace) persist(ctx context.Context) error {
	data, err := json.Marshal(m.repo.SnapshotState())
	if err != nil {
		return &model.PersistenceError{Op: "save", Err: err}
	}
	if err := m.snapshots.Save(ctx, data); err != nil {
		m.logger.Warn().Err(err).Msg("snapshot save failed, in-memory state kept")
		return &model.PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// CreateListing validates and stores a new listing owned by the current
// user. Returns ErrNotAuthenticated when nobody is signed in.
func (m *Marketplace) CreateListing(ctx context.Context, data model.CreateListingData) (model.Listing, error) {
	user, ok := m.ids.CurrentUser()
	if !ok {
		return model.Listing{}, model.ErrNotAuthenticated
	}
	l, err := m.repo.Create(data, user.ID, user.DisplayName)
	if err != nil {
		return model.Listing{}, err
	}
	return l, m.persist(ctx)
}

func (m *Marketplace) UpdateListing(ctx context.Context, id string, data model.UpdateListingData) (model.Listing, error) {
	l, err := m.repo.Update(id, data)
	if err != nil {
		return model.Listing{}, err
	}
	return l, m.persist(ctx)
}

func (m *Marketplace) DeleteListing(ctx context.Context, id string) error {
	if err := m.repo.Delete(id); err != nil {
		return err
	}
	return m.persist(ctx)
}

func (m *Marketplace) MarkSold(ctx context.Context, id string) error {
	if err := m.repo.MarkSold(id); err != nil {
		return err
	}
	return m.persist(ctx)
}

func (m *Marketplace) IncrementViews(ctx context.Context, id string) error {
	if err := m.repo.IncrementViews(id); err != nil {
		return err
	}
	return m.persist(ctx)
}

func (m *Marketplace) IncrementLikes(ctx context.Context, id string) error {
	if err := m.repo.IncrementLikes(id); err != nil {
		return err
	}
	return m.persist(ctx)
}

// ToggleFavorite flips membership in the favorites set and reports the new
// state. Favoriting touches the favorites set, never the listing record.
func (m *Marketplace) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	nowFavorite, err := m.repo.ToggleFavorite(id)
	if err != nil {
		return false, err
	}
	return nowFavorite, m.persist(ctx)
}

// BoostListing purchases a premium boost for the listing and grants the
// default window. The purchase is simulated: it always succeeds with a
// generated transaction id, standing in for a real store transaction.
func (m *Marketplace) BoostListing(ctx context.Context, id string) (model.Listing, premium.PurchaseResult, error) {
	// The listing must exist before we "charge" anyone.
	if _, err := m.repo.Get(id); err != nil {
		return model.Listing{}, premium.PurchaseResult{}, err
	}

	result := premium.PurchaseResult{
		Success:       true,
		TransactionID: fmt.Sprintf("txn_%d_%s", m.now().UnixMilli(), uuid.NewString()[:8]),
	}
	l, err := m.repo.GrantPremium(id, premium.DefaultBoostDays)
	if err != nil {
		return model.Listing{}, premium.PurchaseResult{}, err
	}

	m.logger.Info().Str("listing_id", id).Str("transaction_id", result.TransactionID).
		Msg("premium boost purchased")
	return l, result, m.persist(ctx)
}

// SetFilters replaces the session's current filter spec.
func (m *Marketplace) SetFilters(spec model.FilterSpec) {
	m.filters = spec
}

func (m *Marketplace) ClearFilters() {
	m.filters = model.FilterSpec{}
}

func (m *Marketplace) Filters() model.FilterSpec {
	return m.filters
}

// Browse queries with the session's current filters, unmoderated.
func (m *Marketplace) Browse() []model.Listing {
	return m.query.Query(m.repo.ListAll(), m.filters, nil)
}

// Query returns the filtered, sorted feed without the moderation gate.
func (m *Marketplace) Query(spec model.FilterSpec) []model.Listing {
	return m.query.Query(m.repo.ListAll(), spec, nil)
}

// QueryModerated runs the moderation batch over the visible feed and
// excludes listings with an inappropriate verdict, annotating the rest.
// With no moderator configured it behaves like Query.
func (m *Marketplace) QueryModerated(ctx context.Context, spec model.FilterSpec) []ModeratedListing {
	visible := m.query.Query(m.repo.ListAll(), spec, nil)
	if m.moderator == nil {
		out := make([]ModeratedListing, len(visible))
		for i, l := range visible {
			out[i] = ModeratedListing{Listing: l, Verdict: moderation.Safe(0.6, "moderation disabled")}
		}
		return out
	}

	verdicts := m.moderator.ModerateBatch(ctx, visible)
	out := make([]ModeratedListing, 0, len(visible))
	for _, l := range visible {
		v, ok := verdicts[l.ID]
		if ok && !v.IsAppropriate {
			m.logger.Warn().Str("listing_id", l.ID).Strs("reasons", v.Reasons).
				Msg("listing excluded by moderation")
			continue
		}
		out = append(out, ModeratedListing{Listing: l, Verdict: v})
	}
	return out
}

// Get returns one listing by id.
func (m *Marketplace) Get(id string) (model.Listing, error) {
	return m.repo.Get(id)
}

// MyListings returns the current user's listings, sold ones included.
func (m *Marketplace) MyListings() []model.Listing {
	user, ok := m.ids.CurrentUser()
	if !ok {
		return nil
	}
	return m.repo.ListBySeller(user.ID)
}

// Favorites resolves the favorites set to listing records, skipping ids
// whose listing has since been deleted.
func (m *Marketplace) Favorites() []model.Listing {
	ids := m.repo.FavoriteIDs()
	out := make([]model.Listing, 0, len(ids))
	for _, id := range ids {
		if l, err := m.repo.Get(id); err == nil {
			out = append(out, l)
		}
	}
	return out
}

// IsFavorite reports membership in the favorites set.
func (m *Marketplace) IsFavorite(id string) bool {
	return m.repo.IsFavorite(id)
}

// BoostRemaining renders the remaining boost time of a listing.
func (m *Marketplace) BoostRemaining(id string) (string, error) {
	l, err := m.repo.Get(id)
	if err != nil {
		return "", err
	}
	return premium.RemainingLabel(l.PremiumExpiresAt, m.now()), nil
}
