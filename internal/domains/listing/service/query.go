package service

import (
	"sort"
	"strings"
	"time"

	"marketplace-catalog/internal/domains/listing/model"
	moderation "marketplace-catalog/internal/domains/moderation/model"
	"marketplace-catalog/internal/domains/premium"
)

// QueryEngine derives the display-ready view over a catalog snapshot. It is
// pure given its inputs and the clock: it never mutates the input listings.
type QueryEngine struct {
	now func() time.Time
}

func NewQueryEngine() *QueryEngine {
	return NewQueryEngineWithClock(time.Now)
}

func NewQueryEngineWithClock(now func() time.Time) *QueryEngine {
	return &QueryEngine{now: now}
}

// Query applies the pipeline in order: sold exclusion, AND filters, stable
// premium-partitioned sort, then the moderation gate when verdicts are
// supplied. Boost activity is recomputed at query time, never read from the
// stored IsPremium flag.
func (e *QueryEngine) Query(listings []model.Listing, spec model.FilterSpec, verdicts map[string]moderation.Verdict) []model.Listing {
	now := e.now()

	result := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if l.IsSold {
			continue
		}
		if !matches(l, spec) {
			continue
		}
		result = append(result, l)
	}

	// Stable: equal keys keep their insertion order.
	sort.SliceStable(result, func(i, j int) bool {
		bi := premium.IsActiveAt(result[i].PremiumExpiresAt, now)
		bj := premium.IsActiveAt(result[j].PremiumExpiresAt, now)
		if bi != bj {
			return bi
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if verdicts == nil {
		return result
	}
	moderated := result[:0]
	for _, l := range result {
		if v, ok := verdicts[l.ID]; ok && !v.IsAppropriate {
			continue
		}
		moderated = append(moderated, l)
	}
	return moderated
}

func matches(l model.Listing, spec model.FilterSpec) bool {
	if spec.Category != nil && l.Category != *spec.Category {
		return false
	}
	if spec.Condition != nil && l.Condition != *spec.Condition {
		return false
	}
	if spec.MinPrice != nil && l.Price.LessThan(*spec.MinPrice) {
		return false
	}
	if spec.MaxPrice != nil && l.Price.GreaterThan(*spec.MaxPrice) {
		return false
	}
	if spec.TradeOnly && !l.IsTradeOnly {
		return false
	}
	if spec.Location != "" &&
		!strings.Contains(strings.ToLower(l.Location), strings.ToLower(spec.Location)) {
		return false
	}
	if spec.SearchQuery != "" && !matchesSearch(l, spec.SearchQuery) {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match against title,
// description, or any tag.
func matchesSearch(l model.Listing, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(l.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Description), q) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
