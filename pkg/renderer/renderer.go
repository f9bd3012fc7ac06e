// Package renderer turns result types into output. Formats are
// interchangeable implementations selected by identifier; the core result
// types never depend on which one is chosen.
package renderer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/aimanifest/aimanifest/models"
)

// Supported format identifiers.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Render serializes v in the requested format. An empty format means JSON.
func Render(format string, v interface{}) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return data, nil
	case FormatText:
		return renderText(v)
	default:
		return nil, fmt.Errorf("unknown format %q (supported: json, yaml, text)", format)
	}
}

func renderText(v interface{}) ([]byte, error) {
	switch value := v.(type) {
	case *models.ValidationResult:
		return renderValidation(value), nil
	case *models.CheckResult:
		return renderCheck(value), nil
	case map[string]*models.CheckResult:
		return renderBatch(value), nil
	case *models.ManifestSummary:
		return renderSummary(value), nil
	default:
		// No dedicated text view; fall back to JSON.
		return Render(FormatJSON, v)
	}
}

func renderValidation(result *models.ValidationResult) []byte {
	var buf bytes.Buffer

	if result.Valid {
		fmt.Fprintf(&buf, "%s manifest is valid\n", color.GreenString("✓"))
	} else {
		fmt.Fprintf(&buf, "%s manifest is invalid\n", color.RedString("✗"))
	}

	writeList(&buf, color.RedString("Errors"), result.Errors)
	writeList(&buf, color.YellowString("Warnings"), result.Warnings)
	writeList(&buf, color.CyanString("Suggestions"), result.Suggestions)
	return buf.Bytes()
}

func renderCheck(result *models.CheckResult) []byte {
	var buf bytes.Buffer

	if result.Found {
		fmt.Fprintf(&buf, "%s manifest found via %s\n", color.GreenString("✓"), result.Method)
		fmt.Fprintf(&buf, "  URL:    %s\n", result.ManifestURL)
		fmt.Fprintf(&buf, "  Status: %d\n", result.StatusCode)
		if result.Validation != nil {
			buf.WriteString("\n")
			buf.Write(renderValidation(result.Validation))
		}
	} else {
		fmt.Fprintf(&buf, "%s no manifest found for %s\n", color.RedString("✗"), result.URL)
		writeList(&buf, "Network errors", result.Errors)
	}
	return buf.Bytes()
}

func renderBatch(results map[string]*models.CheckResult) []byte {
	urls := make([]string, 0, len(results))
	for url := range results {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	var buf bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.AppendHeader(table.Row{"URL", "Found", "Method", "Valid"})

	found := 0
	for _, url := range urls {
		result := results[url]
		foundMark, validMark := "no", "-"
		if result.Found {
			found++
			foundMark = "yes"
			validMark = "no"
			if result.Validation != nil && result.Validation.Valid {
				validMark = "yes"
			}
		}
		t.AppendRow(table.Row{url, foundMark, string(result.Method), validMark})
	}
	t.Render()

	fmt.Fprintf(&buf, "\n%d of %d sites publish a manifest\n", found, len(results))
	return buf.Bytes()
}

func renderSummary(summary *models.ManifestSummary) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s (%s)\n", summary.Basic.SiteName, summary.URL)
	fmt.Fprintf(&buf, "  Version:       %s\n", summary.Basic.Version)
	fmt.Fprintf(&buf, "  Last modified: %s\n", summary.Basic.LastModified)
	fmt.Fprintf(&buf, "  Discovered:    %s (%s)\n", summary.ManifestURL, summary.Method)

	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.AppendHeader(table.Row{"Permission", "Allowed"})
	t.AppendRows([]table.Row{
		{"summarize", summary.UsagePolicy.CanSummarize},
		{"train", summary.UsagePolicy.CanTrain},
		{"quote", summary.UsagePolicy.CanQuote},
		{"attribution required", summary.UsagePolicy.MustAttribute},
	})
	t.Render()

	if summary.Monetization.HasMonetization {
		fmt.Fprintf(&buf, "Monetization: tipjar=%q consultation=%v services=%d subscription=%v\n",
			summary.Monetization.TipJar,
			summary.Monetization.ConsultationAvailable,
			summary.Monetization.ServiceCount,
			summary.Monetization.SubscriptionAvailable)
	} else {
		buf.WriteString("Monetization: none declared\n")
	}

	if summary.Visibility.HasVisibility {
		fmt.Fprintf(&buf, "Visibility: aiDiscovery=%q boost=%.2f queries=%d\n",
			summary.Visibility.AIDiscovery,
			summary.Visibility.BoostScore,
			len(summary.Visibility.PreferredQueries))
	} else {
		buf.WriteString("Visibility: none declared\n")
	}

	return buf.Bytes()
}

func writeList(buf *bytes.Buffer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(buf, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(buf, "  - %s\n", item)
	}
}
