package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"marketplace-catalog/internal/domains/listing/model"
)

// Seller ids reserved for the demo catalog. Listings owned by these ids are
// regenerated on every load and never persisted.
var seedSellerIDs = map[string]struct{}{
	"seller1": {},
	"seller2": {},
	"seller3": {},
	"seller4": {},
	"seller5": {},
}

func isSeedSeller(sellerID string) bool {
	_, ok := seedSellerIDs[sellerID]
	return ok
}

// seedCatalog builds the demonstration listings fresh, aged relative to now
// so the feed always looks recently active.
func seedCatalog(now time.Time) []model.Listing {
	daysAgo := func(d int) time.Time { return now.Add(-time.Duration(d) * 24 * time.Hour) }

	return []model.Listing{
		{
			ID:          "seed-1",
			Title:       `Jeep Wrangler JK Lift Kit 4"`,
			Description: "Complete 4 inch lift kit for Jeep Wrangler JK. Includes all hardware and installation instructions. Used for 6 months, excellent condition.",
			Price:       decimal.NewFromInt(850),
			Category:    model.CategoryParts,
			Condition:   model.ConditionExcellent,
			Images: []string{
				"https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=400&h=300&fit=crop&crop=center",
				"https://images.unsplash.com/photo-1571068316344-75bc76f77890?w=400&h=300&fit=crop&crop=center",
				"https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=400&h=300&fit=crop&crop=center",
			},
			Location:   "San Diego, CA",
			SellerID:   "seller1",
			SellerName: "Mike's Jeep Parts",
			CreatedAt:  daysAgo(2),
			UpdatedAt:  daysAgo(2),
			Views:      45,
			Likes:      8,
			Tags:       []string{"jeep", "wrangler", "lift", "suspension"},
		},
		{
			ID:          "seed-2",
			Title:       "2018 Ford F-150 Raptor",
			Description: "Low mileage Raptor with all the off-road goodies. Custom exhaust, LED light bars, and more. Garage kept, never been off-road.",
			Price:       decimal.NewFromInt(65000),
			Category:    model.CategoryVehicles,
			Condition:   model.ConditionExcellent,
			Images: []string{
				"https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=400&h=300&fit=crop&crop=center",
				"https://images.unsplash.com/photo-1609521263047-f8f205293f24?w=400&h=300&fit=crop&crop=center",
				"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=400&h=300&fit=crop&crop=center",
				"https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=400&h=300&fit=crop&crop=center",
			},
			Location:   "Escondido, CA",
			SellerID:   "seller2",
			SellerName: "John Smith",
			CreatedAt:  daysAgo(5),
			UpdatedAt:  daysAgo(5),
			Views:      234,
			Likes:      42,
			Tags:       []string{"ford", "raptor", "truck", "off-road"},
		},
		{
			ID:          "seed-3",
			Title:       "BFGoodrich All-Terrain Tires 35x12.50R17",
			Description: "Set of 4 BFG All-Terrain tires. About 70% tread remaining. Great for daily driving and light off-roading.",
			Price:       decimal.NewFromInt(600),
			Category:    model.CategoryTires,
			Condition:   model.ConditionGood,
			Images: []string{
				"https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=300&fit=crop&crop=center",
				"https://images.unsplash.com/photo-1621135802920-133df287f89c?w=400&h=300&fit=crop&crop=center",
				"https://images.unsplash.com/photo-1609521263047-f8f205293f24?w=400&h=300&fit=crop&crop=center",
			},
			Location:   "Chula Vista, CA",
			SellerID:   "seller3",
			SellerName: "Desert Wheels",
			CreatedAt:  daysAgo(1),
			UpdatedAt:  daysAgo(1),
			Views:      67,
			Likes:      12,
			Tags:       []string{"tires", "bfgoodrich", "all-terrain", "35s"},
		},
		{
			ID:          "seed-4",
			Title:       "Warn VR EVO 10 Winch",
			Description: "Brand new Warn VR EVO 10,000 lb winch. Never used, still in box. Will trade for camping gear or cash.",
			Price:       decimal.NewFromInt(950),
			Category:    model.CategoryAccessories,
			Condition:   model.ConditionNew,
			Images: []string{
				"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop&crop=center",
				"https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=300&fit=crop&crop=center",
			},
			Location:   "La Mesa, CA",
			SellerID:   "seller4",
			SellerName: "Trail Gear Co",
			CreatedAt:  daysAgo(3),
			UpdatedAt:  daysAgo(3),
			TradeFor:   "RTT or camping equipment",
			Views:      89,
			Likes:      15,
			Tags:       []string{"winch", "warn", "recovery", "accessories"},
		},
		{
			ID:          "seed-5",
			Title:       "Roof Top Tent - CVT Mt. Shasta",
			Description: "Awesome roof top tent for 2-3 people. Used on a few trips, great condition. Includes ladder and cover.",
			Price:       decimal.Zero,
			Category:    model.CategoryCamping,
			Condition:   model.ConditionExcellent,
			Images: []string{
				"https://images.unsplash.com/photo-1504851149312-7a075b496cc7?w=400&h=300&fit=crop&crop=center",
				"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400&h=300&fit=crop&crop=center",
				"https://images.unsplash.com/photo-1533873984035-25970ab07461?w=400&h=300&fit=crop&crop=center",
			},
			Location:    "El Cajon, CA",
			SellerID:    "seller5",
			SellerName:  "Adventure Seeker",
			CreatedAt:   daysAgo(4),
			UpdatedAt:   daysAgo(4),
			IsTradeOnly: true,
			TradeFor:    "Jeep parts or tools",
			Views:       123,
			Likes:       28,
			Tags:        []string{"camping", "rtt", "roof-tent", "overlanding"},
		},
	}
}
