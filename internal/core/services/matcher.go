package services

import (
	"fmt"

	"github.com/meridianhq/localsync/internal/core/domain"
	"github.com/meridianhq/localsync/internal/logger"
)

// FindMatches pairs a default-locale file with its locale variants.
//
// A candidate matches when its localizes link equals the default
// file's current slug exactly and its (base locale, slug) has not
// already been processed. Within one base locale, the first
// candidate in discovery order wins; later duplicates are discarded
// with a warning. Deterministic over its inputs.
//
// Matching uses the default file's current slug, so renaming a
// default-locale page stops its existing locale links from matching
// until their localizes fields are updated. The orchestrator's
// unmatched pass surfaces those as warnings.
func FindMatches(defaultFile *domain.ContentFile, candidates []*domain.ContentFile, processed domain.ProcessedSlugs) []domain.LocaleMatch {
	var matches []domain.LocaleMatch
	claimed := make(map[string]*domain.ContentFile)

	for _, candidate := range candidates {
		if processed.Has(candidate.Locale, candidate.Slug) {
			continue
		}
		if candidate.Localizes != defaultFile.Slug {
			continue
		}

		base := domain.BaseLocale(candidate.Locale)
		if winner, ok := claimed[base]; ok {
			logger.Warn("%s also localizes %q in locale %s; keeping %s",
				candidate.Path, defaultFile.Slug, base, winner.Path)
			continue
		}
		claimed[base] = candidate

		matches = append(matches, domain.LocaleMatch{
			Default: defaultFile,
			Variant: candidate,
			Reason:  fmt.Sprintf("localizes=%q matches default slug (locale %s)", candidate.Localizes, candidate.Locale),
		})
	}
	return matches
}
