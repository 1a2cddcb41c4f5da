// Package formatters renders a generated explanation.Explanation into
// Markdown, JSON, or HTML. Each formatter is a pure function over the
// Explanation value, per spec.md 4.7's "three output formatters are
// pure functions" contract, mirroring the teacher's stateless
// adapters/*/reader.go-style value-in, bytes-out adapters.
package formatters

import (
	"fmt"
	"strings"

	"guildscore/domain/explanation"
)

// Markdown implements ports.FormatterPort, rendering an Explanation as
// Markdown text in the structure the original's markdown.rs follows:
// title, climate, benefits/warnings/risks, then the metrics table.
type Markdown struct{}

func (Markdown) Format(e explanation.Explanation) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", e.OverallCard.Title)
	fmt.Fprintf(&b, "%s\n\n", e.OverallCard.Body)

	b.WriteString("## Climate Compatibility\n\n")
	fmt.Fprintf(&b, "%s: %s\n\n", e.ClimateCard.Title, e.ClimateCard.Body)

	if len(e.Benefits) > 0 {
		b.WriteString("## Benefits\n\n")
		for _, c := range e.Benefits {
			fmt.Fprintf(&b, "### %s\n\n%s\n\n", c.Title, c.Body)
		}
	}

	if len(e.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, c := range e.Warnings {
			fmt.Fprintf(&b, "**[%s] %s**\n\n%s\n\n", c.Severity, c.Title, c.Body)
		}
	}

	if len(e.Risks) > 0 {
		b.WriteString("## Risks\n\n")
		for _, c := range e.Risks {
			fmt.Fprintf(&b, "**[%s] %s**\n\n%s\n\n", c.Severity, c.Title, c.Body)
		}
	}

	if len(e.NetworkProfiles) > 0 {
		b.WriteString("## Network Profiles\n\n")
		for _, p := range e.NetworkProfiles {
			fmt.Fprintf(&b, "### %s\n\n", p.Metric)
			if len(p.TopTaxa) > 0 {
				b.WriteString("Top taxa:\n\n")
				for _, t := range p.TopTaxa {
					fmt.Fprintf(&b, "- %s: %d\n", t.Name, t.Count)
				}
				b.WriteString("\n")
			}
			if len(p.HubPlants) > 0 {
				b.WriteString("Hub plants:\n\n")
				for _, h := range p.HubPlants {
					fmt.Fprintf(&b, "- %s (%s): %d connections\n", h.PlantID, h.Scientific, h.Connections)
				}
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("## Metrics Breakdown\n\n")
	b.WriteString("| Metric | Raw | Display |\n")
	b.WriteString("|--------|-----|---------|\n")
	for _, m := range e.Metrics {
		fmt.Fprintf(&b, "| %s | %.3f | %.1f |\n", m.Metric, m.Raw, m.Display)
	}

	return []byte(b.String()), nil
}
