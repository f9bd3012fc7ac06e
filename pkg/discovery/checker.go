// Package discovery locates ai-manifest documents on websites using three
// ordered strategies (well-known path, HTML link element, Link response
// header) and hands anything it finds to the validator.
package discovery

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/peterhellberg/link"

	"github.com/aimanifest/aimanifest/internal/common"
	"github.com/aimanifest/aimanifest/models"
	"github.com/aimanifest/aimanifest/pkg/fetcher"
	"github.com/aimanifest/aimanifest/pkg/validator"
)

// LinkRelation is the registered relation token for manifest links, both in
// HTML link elements and in HTTP Link headers.
const LinkRelation = "ai-manifest"

// Options configures a Checker.
type Options struct {
	// Timeout bounds every fetch the checker performs. Zero means the
	// fetcher default.
	Timeout time.Duration
	// Validator validates located documents. Nil gets a default validator
	// sharing the checker's timeout.
	Validator *validator.Validator
}

type Checker struct {
	fetcher   *fetcher.Fetcher
	validator *validator.Validator
}

// NewChecker creates a Checker with default options.
func NewChecker() *Checker {
	return NewCheckerWithOptions(Options{})
}

// NewCheckerWithOptions creates a Checker with explicit options.
func NewCheckerWithOptions(opts Options) *Checker {
	v := opts.Validator
	if v == nil {
		v = validator.NewWithOptions(validator.Options{Timeout: opts.Timeout})
	}
	return &Checker{
		fetcher:   fetcher.NewFetcherWithTimeout(opts.Timeout),
		validator: v,
	}
}

// CheckWebsite runs the discovery pipeline against one site. Strategies are
// tried strictly in priority order and the first one that locates a document
// wins; they are never raced. The call always completes with a structured
// result.
func (c *Checker) CheckWebsite(rawURL string) *models.CheckResult {
	result := &models.CheckResult{URL: rawURL}

	origin, err := common.Origin(rawURL)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid URL: %v", err))
		return result
	}

	if c.tryWellKnown(origin, result) {
		return result
	}
	if c.tryHTMLLink(origin, result) {
		return result
	}
	c.tryLinkHeader(origin, result)
	return result
}

// tryWellKnown fetches <origin>/.well-known/ai-manifest.json. A 404 moves
// silently to the next strategy; any other non-2xx status means the location
// exists but is broken, which counts as found-but-invalid without invoking
// the validator.
func (c *Checker) tryWellKnown(origin string, result *models.CheckResult) bool {
	manifestURL := origin + validator.WellKnownPath

	resp, err := c.fetcher.Get(manifestURL, "application/json")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("well-known: %v", err))
		return false
	}

	switch {
	case resp.OK():
		c.markFound(result, models.MethodWellKnown, manifestURL, resp)
		return true
	case resp.StatusCode == 404:
		return false
	default:
		result.Found = true
		result.Method = models.MethodWellKnown
		result.ManifestURL = manifestURL
		result.StatusCode = resp.StatusCode
		result.Validation = &models.ValidationResult{
			Valid:       false,
			Errors:      []string{fmt.Sprintf("manifest location returned HTTP %d", resp.StatusCode)},
			Warnings:    []string{},
			Suggestions: []string{},
		}
		return true
	}
}

// tryHTMLLink fetches the site root and scans it for link elements carrying
// the protocol relation. A failed follow-up fetch moves on to the next
// matching element rather than aborting the strategy.
func (c *Checker) tryHTMLLink(origin string, result *models.CheckResult) bool {
	doc, err := c.fetcher.GetHtml(origin + "/")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("html-link: %v", err))
		return false
	}

	found := false
	doc.Find(fmt.Sprintf("link[rel=%q]", LinkRelation)).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return true // keep scanning
		}

		resolved, err := common.ResolveReference(origin+"/", href)
		if err != nil {
			return true
		}

		resp, err := c.fetcher.Get(resolved, "application/json")
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("html-link: %v", err))
			return true
		}
		if !resp.OK() {
			return true
		}

		c.markFound(result, models.MethodHTMLLink, resolved, resp)
		found = true
		return false
	})
	return found
}

// tryLinkHeader issues a HEAD to the origin root and follows a Link header
// entry whose rel parameter matches the protocol token.
func (c *Checker) tryLinkHeader(origin string, result *models.CheckResult) bool {
	header, _, err := c.fetcher.Head(origin + "/")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("http-header: %v", err))
		return false
	}

	group := link.ParseHeader(header)
	if group == nil {
		return false
	}
	entry, ok := group[LinkRelation]
	if !ok {
		return false
	}

	resolved, err := common.ResolveReference(origin+"/", entry.URI)
	if err != nil {
		return false
	}

	resp, err := c.fetcher.Get(resolved, "application/json")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("http-header: %v", err))
		return false
	}
	if !resp.OK() {
		return false
	}

	c.markFound(result, models.MethodHTTPHeader, resolved, resp)
	return true
}

func (c *Checker) markFound(result *models.CheckResult, method models.DiscoveryMethod, manifestURL string, resp *fetcher.Response) {
	result.Found = true
	result.Method = method
	result.ManifestURL = manifestURL
	result.StatusCode = resp.StatusCode
	result.Validation = c.validator.Validate(string(resp.Body), "")
}
