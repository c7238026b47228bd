package service

import (
	listingmodel "marketplace-catalog/internal/domains/listing/model"
)

const (
	reviewTitle       = "[Content Under Review]"
	reviewDescription = "This item is currently under content review."
)

var fallbackImages = map[listingmodel.Category]string{
	listingmodel.CategoryVehicles:    "https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=400&h=300&fit=crop",
	listingmodel.CategoryParts:       "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=300&fit=crop",
	listingmodel.CategoryTires:       "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=300&fit=crop",
	listingmodel.CategoryAccessories: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop",
	listingmodel.CategoryGear:        "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400&h=300&fit=crop",
	listingmodel.CategoryCamping:     "https://images.unsplash.com/photo-1504851149312-7a075b496cc7?w=400&h=300&fit=crop",
}

const defaultFallbackImage = "https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=400&h=300&fit=crop"

// FallbackImage returns a safe stock image for the category, for callers
// that replace flagged imagery instead of hiding the listing.
func FallbackImage(category listingmodel.Category) string {
	if img, ok := fallbackImages[category]; ok {
		return img
	}
	return defaultFallbackImage
}

// ReviewPlaceholder returns a display copy of a flagged listing with its
// content replaced by under-review placeholders. The canonical record is
// untouched.
func ReviewPlaceholder(l listingmodel.Listing) listingmodel.Listing {
	out := l.Clone()
	out.Title = reviewTitle
	out.Description = reviewDescription
	out.Tags = []string{"under-review"}
	images := make([]string, len(l.Images))
	for i := range images {
		images[i] = FallbackImage(l.Category)
	}
	out.Images = images
	return out
}
