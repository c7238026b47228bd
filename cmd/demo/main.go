// Command demo exercises the catalog engine end to end from the terminal:
// load the snapshot, post a listing, boost it, browse the moderated feed,
// and leave the snapshot behind for the next run.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"marketplace-catalog/internal/config"
	"marketplace-catalog/internal/domains/listing/model"
	"marketplace-catalog/internal/infrastructure/identity"
	"marketplace-catalog/pkg/container"
	"marketplace-catalog/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo failed:", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.App.Environment)

	ctx := context.Background()
	ids := identity.NewSignedIn("demo-user", "Demo User")

	c, err := container.New(ctx, cfg, ids)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Facade.Load(ctx); err != nil {
		// Degraded start: seed catalog only.
		logger.Warn("continuing without persisted listings", err)
	}

	created, err := c.Facade.CreateListing(ctx, model.CreateListingData{
		Title:       "ARB Twin Air Compressor",
		Description: "On-board twin compressor, wired and tested. Fills 35s fast.",
		Price:       decimal.NewFromInt(420),
		Category:    model.CategoryAccessories,
		Condition:   model.ConditionGood,
		Images:      []string{"https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400"},
		Location:    "San Diego, CA",
		Tags:        []string{"compressor", "arb", "recovery"},
	})
	if err != nil {
		return fmt.Errorf("create listing: %w", err)
	}

	boosted, receipt, err := c.Facade.BoostListing(ctx, created.ID)
	if err != nil {
		return fmt.Errorf("boost listing: %w", err)
	}
	remaining, _ := c.Facade.BoostRemaining(boosted.ID)
	fmt.Printf("boosted %q (txn %s, %s)\n\n", boosted.Title, receipt.TransactionID, remaining)

	feed := c.Facade.QueryModerated(ctx, model.FilterSpec{})
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tPRICE\tCATEGORY\tPREMIUM\tVERDICT")
	for _, l := range feed {
		price := "$" + l.Price.StringFixed(2)
		if l.IsTradeOnly {
			price = "trade: " + l.TradeFor
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n",
			l.Title, price, l.Category, l.IsPremium, l.Verdict.Category)
	}
	return w.Flush()
}
