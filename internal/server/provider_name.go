package server

import (
	"strings"

	"github.com/Bazz30/NRL/internal/providers"
	"github.com/Bazz30/NRL/internal/providers/fixture"
	"github.com/Bazz30/NRL/internal/providers/nrlfantasy"
)

// normalizeProviderName returns a lower-cased provider name, deriving it from the instance when not configured.
// Metrics and logs use the same name.
func normalizeProviderName(raw string, provider providers.DataProvider) string {
	if name := strings.ToLower(strings.TrimSpace(raw)); name != "" {
		return name
	}
	switch provider.(type) {
	case *fixture.Provider:
		return providerFixture
	case *nrlfantasy.Client:
		return providerNRLFantasy
	}
	return "provider"
}
