package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"guildscore/domain/explanation"
	"guildscore/domain/guild"
)

func sampleExplanation() explanation.Explanation {
	return explanation.Explanation{
		OverallCard: explanation.Card{Title: "★★★★★ - Exceptional", Body: "Overall guild compatibility: 92.5/100"},
		ClimateCard: explanation.Card{Title: "Humid Temperate", Body: "All plants compatible with Humid Temperate"},
		Benefits:    []explanation.Card{{Title: "Phylogenetically diverse guild [M1]", Body: "PD is high"}},
		Warnings:    []explanation.Card{{Title: "Soil pH incompatibility", Body: "Range too wide", Severity: explanation.SeverityHigh}},
		Metrics: []explanation.MetricRow{
			{Metric: guild.MetricPhyloIndependence, Raw: 12.5, Display: 88.0},
		},
	}
}

func TestMarkdownFormatDeterministic(t *testing.T) {
	e := sampleExplanation()
	a, err := (Markdown{}).Format(e)
	if err != nil {
		t.Fatal(err)
	}
	b, err := (Markdown{}).Format(e)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("markdown formatter is not deterministic across repeated calls")
	}
	if !strings.Contains(string(a), "Exceptional") {
		t.Error("expected overall title in markdown output")
	}
	if !strings.Contains(string(a), "Soil pH incompatibility") {
		t.Error("expected warning title in markdown output")
	}
}

func TestJSONFormatRoundTrips(t *testing.T) {
	e := sampleExplanation()
	out, err := (JSON{}).Format(e)
	if err != nil {
		t.Fatal(err)
	}
	var got explanation.Explanation
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	if got.OverallCard.Title != e.OverallCard.Title {
		t.Errorf("round-tripped overall title = %q, want %q", got.OverallCard.Title, e.OverallCard.Title)
	}
}

func TestHTMLFormatWrapsMarkdown(t *testing.T) {
	e := sampleExplanation()
	out, err := (HTML{}).Format(e)
	if err != nil {
		t.Fatal(err)
	}
	html := string(out)
	if !strings.Contains(html, "<html>") || !strings.Contains(html, "</html>") {
		t.Error("expected a wrapped HTML document")
	}
	if !strings.Contains(html, "Exceptional") {
		t.Error("expected rendered overall title in HTML body")
	}
}
