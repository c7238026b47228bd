package service

import (
	"fmt"
	"net/url"
	"strings"

	"marketplace-catalog/internal/domains/moderation/model"
)

// The deterministic tier. These functions are pure, never block, and always
// run before any external escalation.

// ClassifyText applies the keyword rules:
// blocked keyword present -> inappropriate (0.9, matched keywords as reason);
// more than two domain-safe keywords -> safe (0.8);
// otherwise safe with benefit-of-the-doubt confidence (0.6).
func ClassifyText(text string) model.Verdict {
	lower := strings.ToLower(text)

	var blocked []string
	for _, kw := range blockedKeywords {
		if strings.Contains(lower, kw) {
			blocked = append(blocked, kw)
		}
	}
	if len(blocked) > 0 {
		return model.Inappropriate(0.9,
			fmt.Sprintf("contains inappropriate keywords: %s", strings.Join(blocked, ", ")))
	}

	safeHits := 0
	for _, kw := range safeKeywords {
		if strings.Contains(lower, kw) {
			safeHits++
		}
	}
	if safeHits > 2 {
		return model.Safe(0.8, "contains safe marketplace keywords")
	}

	return model.Safe(0.6, "no inappropriate content detected")
}

// IsTrustedDomain reports whether an image URL is hosted on one of the
// allow-listed CDN domains.
func IsTrustedDomain(imageURL string) bool {
	u, err := url.Parse(imageURL)
	if err != nil || u.Hostname() == "" {
		return false
	}
	host := u.Hostname()
	for _, d := range trustedDomains {
		if strings.Contains(host, d) {
			return true
		}
	}
	return false
}

func isLocalImage(imageURL string) bool {
	lower := strings.ToLower(imageURL)
	for _, p := range localImagePrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func urlContainsBlockedKeyword(imageURL string) bool {
	lower := strings.ToLower(imageURL)
	for _, kw := range blockedKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
