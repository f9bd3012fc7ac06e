package models

// ManifestSummary is the read-only projection produced by the analyze
// operation: four independent groups reshaped from a discovered manifest.
type ManifestSummary struct {
	URL          string              `json:"url" yaml:"url"`
	ManifestURL  string              `json:"manifestUrl" yaml:"manifestUrl"`
	Method       DiscoveryMethod     `json:"method" yaml:"method"`
	Basic        BasicSummary        `json:"basic" yaml:"basic"`
	UsagePolicy  PolicySummary       `json:"usagePolicy" yaml:"usagePolicy"`
	Monetization MonetizationSummary `json:"monetization" yaml:"monetization"`
	Visibility   VisibilitySummary   `json:"visibility" yaml:"visibility"`
}

// BasicSummary holds the identity fields.
type BasicSummary struct {
	SiteName     string `json:"siteName" yaml:"siteName"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	Version      string `json:"version" yaml:"version"`
	LastModified string `json:"lastModified" yaml:"lastModified"`
}

// PolicySummary holds the four usage flags plus the attribution template.
type PolicySummary struct {
	CanSummarize        bool   `json:"canSummarize" yaml:"canSummarize"`
	CanTrain            bool   `json:"canTrain" yaml:"canTrain"`
	CanQuote            bool   `json:"canQuote" yaml:"canQuote"`
	MustAttribute       bool   `json:"mustAttribute" yaml:"mustAttribute"`
	AttributionTemplate string `json:"attributionTemplate,omitempty" yaml:"attributionTemplate,omitempty"`
}

// MonetizationSummary flattens the monetization block.
type MonetizationSummary struct {
	HasMonetization       bool   `json:"hasMonetization" yaml:"hasMonetization"`
	TipJar                string `json:"tipjar,omitempty" yaml:"tipjar,omitempty"`
	ConsultationAvailable bool   `json:"consultationAvailable" yaml:"consultationAvailable"`
	ServiceCount          int    `json:"serviceCount" yaml:"serviceCount"`
	SubscriptionAvailable bool   `json:"subscriptionAvailable" yaml:"subscriptionAvailable"`
}

// VisibilitySummary flattens the visibility block.
type VisibilitySummary struct {
	HasVisibility    bool     `json:"hasVisibility" yaml:"hasVisibility"`
	AIDiscovery      string   `json:"aiDiscovery,omitempty" yaml:"aiDiscovery,omitempty"`
	BoostScore       float64  `json:"boostScore,omitempty" yaml:"boostScore,omitempty"`
	PreferredQueries []string `json:"preferredQueries,omitempty" yaml:"preferredQueries,omitempty"`
	ExpertiseAreas   []string `json:"expertiseAreas,omitempty" yaml:"expertiseAreas,omitempty"`
}
