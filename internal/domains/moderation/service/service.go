package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	listingmodel "marketplace-catalog/internal/domains/listing/model"
	"marketplace-catalog/internal/domains/moderation/model"
)

// Classifier is the optional external text-classification collaborator.
// It may be unavailable; the service always resolves to a verdict anyway.
type Classifier interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// Service layers the external-classifier escalation and batch moderation on
// top of the deterministic keyword tier.
type Service struct {
	classifier Classifier // nil when no external classifier is configured
	timeout    time.Duration
	logger     zerolog.Logger
}

const defaultClassifyTimeout = 10 * time.Second

func NewService(classifier Classifier, timeout time.Duration, logger zerolog.Logger) *Service {
	if timeout <= 0 {
		timeout = defaultClassifyTimeout
	}
	return &Service{
		classifier: classifier,
		timeout:    timeout,
		logger:     logger.With().Str("component", "moderation").Logger(),
	}
}

// ClassifyImage resolves an image reference to a verdict:
// local device URIs are trusted by policy, allow-listed hosts are safe,
// blocked keywords in the URL flag it, and everything else defers to the
// context text, escalating to the external classifier when available.
// An unusable untrusted reference fails closed to manual review; a total
// policy failure fails open to safe so the pipeline is never blocked.
func (s *Service) ClassifyImage(ctx context.Context, imageRef, contextText string) (verdict model.Verdict) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Str("image", imageRef).
				Msg("moderation policy failure, defaulting to safe")
			verdict = model.Safe(0.3, "moderation service unavailable, defaulting to safe")
		}
	}()

	if isLocalImage(imageRef) {
		return model.Safe(0.8, "local device image assumed safe")
	}
	if IsTrustedDomain(imageRef) {
		return model.Safe(0.9, "image from trusted domain")
	}
	if urlContainsBlockedKeyword(imageRef) {
		return model.Inappropriate(0.8, "URL contains inappropriate keywords")
	}

	if contextText != "" {
		if v := ClassifyText(contextText); !v.IsAppropriate {
			v.Reasons = []string{"image context contains inappropriate content"}
			return v
		}
		if s.classifier != nil {
			if v, ok := s.escalate(ctx, contextText); ok {
				return v
			}
		}
	}

	// Untrusted host with nothing further to check: keep it off the feed
	// until someone looks at it.
	return model.Inappropriate(0.5, "image from untrusted domain requires manual review")
}

// escalate asks the external classifier for a verdict on the context text.
// ok=false means the call was unavailable or errored and the caller should
// apply the manual-review fallback.
func (s *Service) escalate(ctx context.Context, contextText string) (model.Verdict, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		`Analyze this image description for content moderation in a family-friendly off-road marketplace: %q.

Is this appropriate for a marketplace selling vehicles, parts, tires, camping gear, and off-road accessories?
Respond with only "APPROPRIATE" or "INAPPROPRIATE" followed by a brief reason.`,
		contextText)

	resp, err := s.classifier.Classify(ctx, prompt)
	if err != nil {
		s.logger.Warn().Err(err).Msg("external classifier unavailable")
		return model.Verdict{}, false
	}

	// Anything containing the APPROPRIATE token counts as safe.
	if strings.Contains(strings.ToUpper(resp), "APPROPRIATE") {
		return model.Safe(0.7, resp), true
	}
	return model.Inappropriate(0.7, resp), true
}

// ClassifyListing combines title, description and tags into one text
// classification, then checks each image in order, short-circuiting on the
// first inappropriate verdict.
func (s *Service) ClassifyListing(ctx context.Context, listing listingmodel.Listing) model.Verdict {
	text := listing.Title + " " + listing.Description + " " + strings.Join(listing.Tags, " ")
	if v := ClassifyText(text); !v.IsAppropriate {
		return v
	}

	for _, img := range listing.Images {
		if v := s.ClassifyImage(ctx, img, listing.Title); !v.IsAppropriate {
			return v
		}
	}

	return model.Safe(0.8, "all content passed moderation checks")
}

// ModerateBatch classifies every listing concurrently and reassembles the
// verdicts by listing id. An individual failure never aborts the batch: the
// failed item resolves to a low-confidence safe verdict, leaving it in its
// pre-moderation state. Moderation never writes back to the repository.
func (s *Service) ModerateBatch(ctx context.Context, listings []listingmodel.Listing) map[string]model.Verdict {
	verdicts := make(map[string]model.Verdict, len(listings))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, l := range listings {
		wg.Add(1)
		go func(l listingmodel.Listing) {
			defer wg.Done()
			v := s.classifyIsolated(ctx, l)
			mu.Lock()
			verdicts[l.ID] = v
			mu.Unlock()
		}(l)
	}
	wg.Wait()

	return verdicts
}

func (s *Service) classifyIsolated(ctx context.Context, l listingmodel.Listing) (verdict model.Verdict) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Str("listing_id", l.ID).
				Msg("moderation failed for listing, leaving unmoderated")
			verdict = model.Safe(0.3, "moderation service unavailable, defaulting to safe")
		}
	}()
	return s.ClassifyListing(ctx, l)
}
