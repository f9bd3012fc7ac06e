package discovery

import (
	"fmt"

	"github.com/aimanifest/aimanifest/models"
)

// AnalyzeManifest discovers a site's manifest and projects it into the four
// summary groups. It fails only when no parseable manifest was located; the
// projection itself is a pure reshaping with no side effects.
func (c *Checker) AnalyzeManifest(rawURL string) (*models.ManifestSummary, error) {
	check := c.CheckWebsite(rawURL)
	if !check.Found || check.Validation == nil || check.Validation.Manifest == nil {
		return nil, fmt.Errorf("no manifest found for %s", rawURL)
	}

	m := check.Validation.Manifest
	summary := &models.ManifestSummary{
		URL:         rawURL,
		ManifestURL: check.ManifestURL,
		Method:      check.Method,
		Basic: models.BasicSummary{
			SiteName:     m.SiteName,
			Description:  m.Description,
			Version:      m.Version,
			LastModified: m.LastModified,
		},
		UsagePolicy: models.PolicySummary{
			CanSummarize:        m.DefaultUsagePolicy.CanSummarize,
			CanTrain:            m.DefaultUsagePolicy.CanTrain,
			CanQuote:            m.DefaultUsagePolicy.CanQuote,
			MustAttribute:       m.DefaultUsagePolicy.MustAttribute,
			AttributionTemplate: m.DefaultUsagePolicy.AttributionTemplate,
		},
	}

	if m.Monetization != nil {
		summary.Monetization = models.MonetizationSummary{
			HasMonetization: true,
			TipJar:          m.Monetization.TipJar,
			ServiceCount:    len(m.Monetization.Services),
		}
		if m.Monetization.Consultation != nil {
			summary.Monetization.ConsultationAvailable = m.Monetization.Consultation.Available
		}
		if m.Monetization.Subscription != nil {
			summary.Monetization.SubscriptionAvailable = m.Monetization.Subscription.Available
		}
	}

	if m.Visibility != nil {
		summary.Visibility = models.VisibilitySummary{
			HasVisibility:    true,
			AIDiscovery:      m.Visibility.AIDiscovery,
			BoostScore:       m.Visibility.BoostScore,
			PreferredQueries: m.Visibility.PreferredQueries,
			ExpertiseAreas:   m.Visibility.ExpertiseAreas,
		}
	}

	return summary, nil
}
