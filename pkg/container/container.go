package container

import (
	"context"
	"fmt"

	"marketplace-catalog/internal/config"
	"marketplace-catalog/internal/domains/listing/repository"
	listingService "marketplace-catalog/internal/domains/listing/service"
	moderationService "marketplace-catalog/internal/domains/moderation/service"
	"marketplace-catalog/internal/infrastructure/classifier"
	"marketplace-catalog/internal/infrastructure/identity"
	"marketplace-catalog/internal/infrastructure/persistence"
	"marketplace-catalog/pkg/logger"
	"marketplace-catalog/pkg/store"
)

// Container is the root of the dependency graph: config selects the
// infrastructure, infrastructure feeds the repository and services, and the
// facade ties them together. Every component is a singleton for the
// application lifetime; nothing is reached through package-level state, so
// tests can build as many independent containers as they like.
type Container struct {
	Config *config.Config

	Snapshots  store.SnapshotStore
	Identity   identity.Provider
	Repo       repository.Repository
	Moderation *moderationService.Service
	Query      *listingService.QueryEngine
	Facade     *listingService.Marketplace

	redisStore *persistence.RedisStore // kept for Close
}

// New wires the container. The identity provider is injected because the
// core never manages credentials itself.
func New(ctx context.Context, cfg *config.Config, ids identity.Provider) (*Container, error) {
	log := logger.New()

	c := &Container{Config: cfg, Identity: ids}

	switch cfg.Snapshot.Backend {
	case "redis":
		rs := persistence.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Key)
		if err := rs.Ping(ctx); err != nil {
			return nil, fmt.Errorf("connect snapshot store: %w", err)
		}
		c.redisStore = rs
		c.Snapshots = rs
	case "file":
		c.Snapshots = persistence.NewFileStore(cfg.Snapshot.FilePath)
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
	}

	c.Repo = repository.NewMemory(log)
	c.Query = listingService.NewQueryEngine()

	if cfg.Moderation.Enabled {
		var external moderationService.Classifier
		if cfg.Moderation.APIKey != "" {
			external = classifier.NewClient(cfg.Moderation.APIURL, cfg.Moderation.APIKey, cfg.Moderation.Model)
		}
		c.Moderation = moderationService.NewService(external, cfg.Moderation.Timeout, log)
	}

	var moderator listingService.Moderator
	if c.Moderation != nil {
		moderator = c.Moderation
	}
	c.Facade = listingService.NewMarketplace(c.Repo, c.Query, moderator, c.Snapshots, ids, log)

	return c, nil
}

// Close releases infrastructure connections.
func (c *Container) Close() error {
	if c.redisStore != nil {
		return c.redisStore.Close()
	}
	return nil
}
