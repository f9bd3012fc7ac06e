package generator

import "github.com/aimanifest/aimanifest/models"

// templates is the preset catalog. Each builder returns a fresh manifest so
// callers can mutate the result freely.
var templates = map[string]func(Options) *models.Manifest{
	"blog":     blogTemplate,
	"business": businessTemplate,
	"premium":  premiumTemplate,
}

// blogTemplate: permissive personal-site defaults with attribution.
func blogTemplate(opts Options) *models.Manifest {
	m := &models.Manifest{
		Version:  "1.0.0",
		SiteName: "My Blog",
		DefaultUsagePolicy: models.UsagePolicy{
			CanSummarize:        true,
			CanTrain:            false,
			CanQuote:            true,
			MustAttribute:       true,
			AttributionTemplate: "From {siteName}: {url}",
		},
		Visibility: &models.Visibility{
			AIDiscovery: "standard",
		},
	}
	if opts.BaseURL != "" {
		m.Feeds = []models.Feed{
			{Type: "rss", URL: opts.BaseURL + "/feed.xml", Title: "All posts"},
		}
	}
	return m
}

// businessTemplate: discovery-forward defaults with consultation booking.
func businessTemplate(opts Options) *models.Manifest {
	m := &models.Manifest{
		Version:  "1.0.0",
		SiteName: "My Business",
		DefaultUsagePolicy: models.UsagePolicy{
			CanSummarize:        true,
			CanTrain:            false,
			CanQuote:            true,
			MustAttribute:       true,
			AttributionTemplate: "Source: {siteName} ({url})",
		},
		Visibility: &models.Visibility{
			AIDiscovery: "enhanced",
			BoostScore:  0.8,
		},
		Monetization: &models.Monetization{
			Consultation: &models.Consultation{Available: true},
		},
	}
	if opts.BaseURL != "" {
		m.Monetization.Consultation.BookingURL = opts.BaseURL + "/book"
	}
	return m
}

// premiumTemplate: paywalled content with subscription routing.
func premiumTemplate(opts Options) *models.Manifest {
	m := &models.Manifest{
		Version:  "1.0.0",
		SiteName: "My Premium Site",
		DefaultUsagePolicy: models.UsagePolicy{
			CanSummarize:        true,
			CanTrain:            false,
			CanQuote:            false,
			MustAttribute:       true,
			AttributionTemplate: "Excerpt from {siteName}",
		},
		Access: &models.Access{
			Type: "paywall",
		},
		Monetization: &models.Monetization{
			Subscription: &models.Subscription{Available: true},
		},
	}
	if opts.BaseURL != "" {
		m.Access.SubscriptionURL = opts.BaseURL + "/subscribe"
		m.Monetization.Subscription.URL = opts.BaseURL + "/subscribe"
	}
	return m
}
