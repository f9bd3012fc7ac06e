// Package models defines the shared data structures for manifests,
// validation results, and discovery results.
package models

// Manifest is the policy document a site publishes at
// /.well-known/ai-manifest.json describing how automated agents may use
// its content.
type Manifest struct {
	Version            string        `json:"version" yaml:"version"`
	SiteName           string        `json:"siteName" yaml:"siteName"`
	Description        string        `json:"description,omitempty" yaml:"description,omitempty"`
	LastModified       string        `json:"lastModified" yaml:"lastModified"`
	DefaultUsagePolicy UsagePolicy   `json:"defaultUsagePolicy" yaml:"defaultUsagePolicy"`
	Visibility         *Visibility   `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Monetization       *Monetization `json:"monetization,omitempty" yaml:"monetization,omitempty"`
	Access             *Access       `json:"access,omitempty" yaml:"access,omitempty"`
	Feeds              []Feed        `json:"feeds,omitempty" yaml:"feeds,omitempty"`
}

// UsagePolicy holds the four mandatory permission flags plus the optional
// attribution template.
type UsagePolicy struct {
	CanSummarize        bool   `json:"canSummarize" yaml:"canSummarize"`
	CanTrain            bool   `json:"canTrain" yaml:"canTrain"`
	CanQuote            bool   `json:"canQuote" yaml:"canQuote"`
	MustAttribute       bool   `json:"mustAttribute" yaml:"mustAttribute"`
	AttributionTemplate string `json:"attributionTemplate,omitempty" yaml:"attributionTemplate,omitempty"`
}

// Visibility carries AI-discoverability hints.
type Visibility struct {
	AIDiscovery      string   `json:"aiDiscovery,omitempty" yaml:"aiDiscovery,omitempty"` // "standard", "enhanced", or "minimal"
	BoostScore       float64  `json:"boostScore,omitempty" yaml:"boostScore,omitempty"`
	PreferredQueries []string `json:"preferredQueries,omitempty" yaml:"preferredQueries,omitempty"`
	ExpertiseAreas   []string `json:"expertiseAreas,omitempty" yaml:"expertiseAreas,omitempty"`
}

// Monetization describes how readers and agents can pay for the content.
type Monetization struct {
	TipJar       string        `json:"tipjar,omitempty" yaml:"tipjar,omitempty"`
	Consultation *Consultation `json:"consultation,omitempty" yaml:"consultation,omitempty"`
	Services     []Service     `json:"services,omitempty" yaml:"services,omitempty"`
	Subscription *Subscription `json:"subscription,omitempty" yaml:"subscription,omitempty"`
}

// Consultation describes a bookable consultation offering.
type Consultation struct {
	Available  bool   `json:"available" yaml:"available"`
	BookingURL string `json:"bookingUrl,omitempty" yaml:"bookingUrl,omitempty"`
	Pricing    string `json:"pricing,omitempty" yaml:"pricing,omitempty"`
}

// Service is a named paid offering.
type Service struct {
	Name    string `json:"name" yaml:"name"`
	URL     string `json:"url" yaml:"url"`
	Pricing string `json:"pricing,omitempty" yaml:"pricing,omitempty"`
}

// Subscription describes a recurring-payment offering.
type Subscription struct {
	Available bool   `json:"available" yaml:"available"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
	Pricing   string `json:"pricing,omitempty" yaml:"pricing,omitempty"`
}

// Access declares how the content is gated.
type Access struct {
	Type            string `json:"type,omitempty" yaml:"type,omitempty"` // "public", "authenticated", or "paywall"
	LoginURL        string `json:"loginUrl,omitempty" yaml:"loginUrl,omitempty"`
	SubscriptionURL string `json:"subscriptionUrl,omitempty" yaml:"subscriptionUrl,omitempty"`
}

// Feed points at a machine-readable content feed.
type Feed struct {
	Type  string `json:"type,omitempty" yaml:"type,omitempty"` // e.g. "rss", "atom", "json"
	URL   string `json:"url" yaml:"url"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}
