package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/aimanifest/aimanifest/internal/common"
	"github.com/aimanifest/aimanifest/models"
)

var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

const maxSiteNameLength = 200

// checkStructure runs the hand-written structural pass. It deliberately
// re-checks ground the schema also covers; the schema stays a thin
// replaceable contract while these rules are guaranteed regardless of which
// schema was resolved.
func checkStructure(doc map[string]interface{}, result *models.ValidationResult) {
	addError := func(path, problem string) {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", path, problem))
	}

	// version
	if version, ok := doc["version"]; !ok {
		addError("version", "required field missing")
	} else if s, ok := version.(string); !ok {
		addError("version", "must be a string")
	} else if !versionPattern.MatchString(s) {
		addError("version", "must be a semantic version in MAJOR.MINOR.PATCH form (e.g. 1.0.0)")
	}

	// siteName
	if siteName, ok := doc["siteName"]; !ok {
		addError("siteName", "required field missing")
	} else if s, ok := siteName.(string); !ok {
		addError("siteName", "must be a string")
	} else if s == "" {
		addError("siteName", "must not be empty")
	} else if utf8.RuneCountInString(s) > maxSiteNameLength {
		addError("siteName", fmt.Sprintf("must be %d characters or fewer", maxSiteNameLength))
	}

	// lastModified
	if lastModified, ok := doc["lastModified"]; !ok {
		addError("lastModified", "required field missing")
	} else if s, ok := lastModified.(string); !ok {
		addError("lastModified", "must be a string")
	} else if _, err := dateparse.ParseAny(s); err != nil {
		addError("lastModified", "must be a parseable date-time")
	}

	// defaultUsagePolicy and its four mandatory booleans
	if policy, ok := doc["defaultUsagePolicy"]; !ok {
		addError("defaultUsagePolicy", "required field missing")
	} else if pm, ok := policy.(map[string]interface{}); !ok {
		addError("defaultUsagePolicy", "must be an object")
	} else {
		for _, flag := range []string{"canSummarize", "canTrain", "canQuote", "mustAttribute"} {
			value, present := pm[flag]
			if !present {
				addError("defaultUsagePolicy."+flag, "required field missing")
				continue
			}
			if _, ok := value.(bool); !ok {
				addError("defaultUsagePolicy."+flag, "must be a boolean")
			}
		}
	}

	checkURLFields(doc, result)

	// access.type=authenticated requires a login URL. This is an error, not
	// a warning: an agent cannot honor the gate without it.
	if access, ok := getObject(doc, "access"); ok {
		if getString(access, "type") == "authenticated" && getString(access, "loginUrl") == "" {
			addError("access.loginUrl", `required when access.type is "authenticated"`)
		}
	}
}

// checkURLFields validates every URL-bearing field as an absolute http(s)
// URL, naming the exact field path including array indices. Feed and service
// URLs are mandatory members of their entries, so an empty value there is an
// error; the standalone URL fields (tipjar, bookingUrl, loginUrl, ...) are
// optional and only checked when set.
func checkURLFields(doc map[string]interface{}, result *models.ValidationResult) {
	addError := func(path string) {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: must be a valid absolute URL", path))
	}
	checkRequired := func(path, value string) {
		if !common.IsAbsoluteURL(value) {
			addError(path)
		}
	}
	checkOptional := func(path, value string) {
		if value != "" && !common.IsAbsoluteURL(value) {
			addError(path)
		}
	}

	if feeds, ok := doc["feeds"].([]interface{}); ok {
		for i, raw := range feeds {
			if feed, ok := raw.(map[string]interface{}); ok {
				checkRequired(fmt.Sprintf("feeds[%d].url", i), getString(feed, "url"))
			}
		}
	}

	if monetization, ok := getObject(doc, "monetization"); ok {
		checkOptional("monetization.tipjar", getString(monetization, "tipjar"))

		if consultation, ok := getObject(monetization, "consultation"); ok {
			checkOptional("monetization.consultation.bookingUrl", getString(consultation, "bookingUrl"))
		}
		if services, ok := monetization["services"].([]interface{}); ok {
			for i, raw := range services {
				if service, ok := raw.(map[string]interface{}); ok {
					checkRequired(fmt.Sprintf("monetization.services[%d].url", i), getString(service, "url"))
				}
			}
		}
		if subscription, ok := getObject(monetization, "subscription"); ok {
			checkOptional("monetization.subscription.url", getString(subscription, "url"))
		}
	}

	if access, ok := getObject(doc, "access"); ok {
		checkOptional("access.loginUrl", getString(access, "loginUrl"))
		checkOptional("access.subscriptionUrl", getString(access, "subscriptionUrl"))
	}
}

// checkConsistency emits warnings for structurally valid but logically
// questionable field combinations. Warnings never affect validity.
func checkConsistency(doc map[string]interface{}, result *models.ValidationResult) {
	warn := func(message string) {
		result.Warnings = append(result.Warnings, message)
	}

	policy, hasPolicy := getObject(doc, "defaultUsagePolicy")

	if hasPolicy {
		if visibility, ok := getObject(doc, "visibility"); ok {
			if summarize, ok := policy["canSummarize"].(bool); ok && !summarize &&
				getString(visibility, "aiDiscovery") == "enhanced" {
				warn(`visibility.aiDiscovery is "enhanced" but defaultUsagePolicy.canSummarize is false; enhanced discovery conflicts with disallowing summaries`)
			}
		}

		if attribute, ok := policy["mustAttribute"].(bool); ok && attribute &&
			getString(policy, "attributionTemplate") == "" {
			warn("defaultUsagePolicy.mustAttribute is true but no attributionTemplate is provided")
		}
	}

	if monetization, ok := getObject(doc, "monetization"); ok {
		if consultation, ok := getObject(monetization, "consultation"); ok {
			if available, ok := consultation["available"].(bool); ok && available &&
				getString(consultation, "bookingUrl") == "" {
				warn("monetization.consultation.available is true but no bookingUrl is provided")
			}
		}
	}

	if access, ok := getObject(doc, "access"); ok {
		if getString(access, "type") == "paywall" && getString(access, "subscriptionUrl") == "" {
			warn(`access.type is "paywall" but no subscriptionUrl is provided`)
		}
	}
}

// addSuggestions emits advisory improvements. Suggestions never affect
// validity.
func addSuggestions(doc map[string]interface{}, result *models.ValidationResult) {
	suggest := func(message string) {
		result.Suggestions = append(result.Suggestions, message)
	}

	monetization, hasMonetization := getObject(doc, "monetization")
	if !hasMonetization {
		suggest("Add a monetization section so agents and readers can support your work")
	} else {
		consultationActive := false
		if consultation, ok := getObject(monetization, "consultation"); ok {
			if available, ok := consultation["available"].(bool); ok {
				consultationActive = available
			}
		}
		if getString(monetization, "tipjar") == "" && !consultationActive {
			suggest("Consider adding a tip jar (monetization.tipjar) for lightweight reader support")
		}
	}

	visibility, hasVisibility := getObject(doc, "visibility")
	if !hasVisibility {
		suggest("Add a visibility section to improve how AI systems discover and rank your site")
	} else {
		queries, _ := visibility["preferredQueries"].([]interface{})
		if len(queries) == 0 {
			suggest("Populate visibility.preferredQueries with the searches you want this site surfaced for")
		}
	}

	if policy, ok := getObject(doc, "defaultUsagePolicy"); ok {
		if train, ok := policy["canTrain"].(bool); ok && train {
			suggest("defaultUsagePolicy.canTrain is enabled; reconsider whether you want your content used for model training")
		}
	}

	if len(getString(doc, "description")) < 50 {
		suggest("Expand the description to at least 50 characters to give agents more context about your site")
	}

	if feeds, ok := doc["feeds"].([]interface{}); !ok || len(feeds) == 0 {
		suggest("Add a feeds list so agents can discover your latest content")
	}
}

// schemaErrors flattens a jsonschema validation error into one string per
// leaf violation, formatted as "<dotted field path>: <message>".
func schemaErrors(err error) []string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}
	var out []string
	collectLeaves(ve, &out)
	return out
}

func collectLeaves(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		path := strings.ReplaceAll(strings.TrimPrefix(ve.InstanceLocation, "/"), "/", ".")
		if path == "" {
			path = "(root)"
		}
		*out = append(*out, fmt.Sprintf("%s: %s", path, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, out)
	}
}

func getObject(doc map[string]interface{}, key string) (map[string]interface{}, bool) {
	obj, ok := doc[key].(map[string]interface{})
	return obj, ok
}

func getString(doc map[string]interface{}, key string) string {
	s, _ := doc[key].(string)
	return s
}
