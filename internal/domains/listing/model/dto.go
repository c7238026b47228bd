package model

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CreateListingData - input for creating a listing. Seller identity is
// supplied by the caller from the identity provider, not by this DTO.
type CreateListingData struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Condition   Condition       `json:"condition"`
	Images      []string        `json:"images"`
	Location    string          `json:"location"`
	IsTradeOnly bool            `json:"is_trade_only"`
	TradeFor    string          `json:"trade_for,omitempty"`
	Tags        []string        `json:"tags"`
}

func (d CreateListingData) Validate() error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, 80).Error("title must be at most 80 characters"),
		),
		validation.Field(&d.Description,
			validation.Required.Error("description is required"),
		),
		validation.Field(&d.Category,
			validation.Required.Error("category is required"),
			validation.By(categoryRule),
		),
		validation.Field(&d.Condition,
			validation.Required.Error("condition is required"),
			validation.By(conditionRule),
		),
		validation.Field(&d.Images,
			validation.Required.Error("at least one image is required"),
			validation.Length(1, 5).Error("listing must have 1-5 images"),
		),
		validation.Field(&d.Location,
			validation.Required.Error("location is required"),
		),
		validation.Field(&d.Price,
			validation.By(d.priceRule),
		),
	)
	return asValidationError(err)
}

// Normalize applies the trade-only price rule: a trade-only listing always
// stores a zero price, whatever the caller supplied.
func (d CreateListingData) Normalize() CreateListingData {
	if d.IsTradeOnly {
		d.Price = decimal.Zero
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return d
}

// UpdateListingData - partial update; nil fields are left untouched.
type UpdateListingData struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *Category        `json:"category,omitempty"`
	Condition   *Condition       `json:"condition,omitempty"`
	Images      []string         `json:"images,omitempty"`
	Location    *string          `json:"location,omitempty"`
	IsTradeOnly *bool            `json:"is_trade_only,omitempty"`
	TradeFor    *string          `json:"trade_for,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
}

func (d UpdateListingData) Validate() error {
	if d.Title != nil {
		if *d.Title == "" {
			return &ValidationError{Field: "title", Reason: "title is required"}
		}
		if len([]rune(*d.Title)) > 80 {
			return &ValidationError{Field: "title", Reason: "title must be at most 80 characters"}
		}
	}
	if d.Description != nil && *d.Description == "" {
		return &ValidationError{Field: "description", Reason: "description is required"}
	}
	if d.Category != nil && !d.Category.IsValid() {
		return &ValidationError{Field: "category", Reason: "unknown category"}
	}
	if d.Condition != nil && !d.Condition.IsValid() {
		return &ValidationError{Field: "condition", Reason: "unknown condition"}
	}
	if d.Images != nil && (len(d.Images) < 1 || len(d.Images) > 5) {
		return &ValidationError{Field: "images", Reason: "listing must have 1-5 images"}
	}
	if d.Price != nil && d.Price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "price must be non-negative"}
	}
	return nil
}

// FilterSpec is the caller's transient browse intent. Never persisted.
type FilterSpec struct {
	Category    *Category        `json:"category,omitempty"`
	Condition   *Condition       `json:"condition,omitempty"`
	MinPrice    *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice    *decimal.Decimal `json:"max_price,omitempty"`
	Location    string           `json:"location,omitempty"`
	SearchQuery string           `json:"search_query,omitempty"`
	TradeOnly   bool             `json:"trade_only,omitempty"`
}

// IsEmpty reports whether no filter field is set.
func (f FilterSpec) IsEmpty() bool {
	return f.Category == nil && f.Condition == nil && f.MinPrice == nil &&
		f.MaxPrice == nil && f.Location == "" && f.SearchQuery == "" && !f.TradeOnly
}

func categoryRule(value interface{}) error {
	c, _ := value.(Category)
	if c == "" || c.IsValid() {
		return nil
	}
	return validation.NewError("validation_category", "unknown category")
}

func conditionRule(value interface{}) error {
	c, _ := value.(Condition)
	if c == "" || c.IsValid() {
		return nil
	}
	return validation.NewError("validation_condition", "unknown condition")
}

// priceRule enforces the commerce invariant on the price side: a listing is
// either trade-only with a zero price or carries a positive price.
func (d CreateListingData) priceRule(value interface{}) error {
	p, _ := value.(decimal.Decimal)
	if p.IsNegative() {
		return validation.NewError("validation_price", "price must be non-negative")
	}
	if !d.IsTradeOnly && !p.IsPositive() {
		return validation.NewError("validation_price", "price must be positive unless the listing is trade-only")
	}
	return nil
}

// asValidationError converts an ozzo field-error map into a single typed
// ValidationError naming the first offending field (alphabetical, so the
// message is deterministic).
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validation.Errors)
	if !ok || len(fieldErrs) == 0 {
		return &ValidationError{Field: "input", Reason: err.Error()}
	}
	fields := make([]string, 0, len(fieldErrs))
	for f := range fieldErrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	first := fields[0]
	return &ValidationError{Field: first, Reason: fieldErrs[first].Error()}
}
