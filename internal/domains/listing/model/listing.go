package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the fixed set of marketplace categories
type Category string

const (
	CategoryVehicles    Category = "vehicles"
	CategoryParts       Category = "parts"
	CategoryAccessories Category = "accessories"
	CategoryGear        Category = "gear"
	CategoryTools       Category = "tools"
	CategoryTires       Category = "tires"
	CategoryCamping     Category = "camping"
	CategoryElectronics Category = "electronics"
	CategoryOther       Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryVehicles, CategoryParts, CategoryAccessories, CategoryGear,
		CategoryTools, CategoryTires, CategoryCamping, CategoryElectronics, CategoryOther:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Categories returns every valid category, in display order
func Categories() []Category {
	return []Category{
		CategoryVehicles, CategoryParts, CategoryAccessories, CategoryGear,
		CategoryTools, CategoryTires, CategoryCamping, CategoryElectronics, CategoryOther,
	}
}

// Condition is the fixed set of item conditions
type Condition string

const (
	ConditionNew       Condition = "new"
	ConditionLikeNew   Condition = "like_new"
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
	ConditionForParts  Condition = "for_parts"
)

func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionExcellent, ConditionGood,
		ConditionFair, ConditionPoor, ConditionForParts:
		return true
	}
	return false
}

func (c Condition) String() string {
	return string(c)
}

func Conditions() []Condition {
	return []Condition{
		ConditionNew, ConditionLikeNew, ConditionExcellent, ConditionGood,
		ConditionFair, ConditionPoor, ConditionForParts,
	}
}

// Listing is the canonical marketplace item record.
// Commerce invariant: exactly one of {Price > 0} or {IsTradeOnly} holds;
// a trade-only listing always carries a zero price.
// IsPremium is a historical flag only - boost activity is always recomputed
// from PremiumExpiresAt against the current time, never read from the flag.
type Listing struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Condition   Condition       `json:"condition"`
	Images      []string        `json:"images"`
	Location    string          `json:"location"`

	SellerID   string `json:"seller_id"`
	SellerName string `json:"seller_name"`

	IsSold      bool   `json:"is_sold"`
	IsTradeOnly bool   `json:"is_trade_only"`
	TradeFor    string `json:"trade_for,omitempty"`

	Views int      `json:"views"`
	Likes int      `json:"likes"`
	Tags  []string `json:"tags"`

	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy. Query and moderation layers hand out copies so
// callers can never mutate the repository's canonical records.
func (l Listing) Clone() Listing {
	out := l
	out.Images = append([]string(nil), l.Images...)
	out.Tags = append([]string(nil), l.Tags...)
	if l.PremiumExpiresAt != nil {
		t := *l.PremiumExpiresAt
		out.PremiumExpiresAt = &t
	}
	return out
}

// Snapshot is the durable subset handed to the persistence collaborator.
// Seed listings are never included - they are regenerated on every load.
type Snapshot struct {
	Listings    []Listing `json:"listings"`
	FavoriteIDs []string  `json:"favorite_ids"`
}
