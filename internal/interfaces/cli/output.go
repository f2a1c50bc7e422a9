package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/turtacn/AyurChem-Intelligence/pkg/client"
)

// ─────────────────────────────────────────────────────────────────────────────
// Primitives
// ─────────────────────────────────────────────────────────────────────────────

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	h := make([]any, len(headers))
	for i, s := range headers {
		h[i] = s
	}
	table.Header(h...)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", color.New(color.Bold).Sprint(title))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func colorConfidence(c string) string {
	switch c {
	case "high":
		return color.GreenString(c)
	case "medium":
		return color.YellowString(c)
	default:
		return color.RedString(c)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Herb lists
// ─────────────────────────────────────────────────────────────────────────────

func renderHerbList(w io.Writer, format string, names []string) error {
	switch format {
	case FormatJSON:
		return printJSON(w, map[string][]string{"herbs": names})
	case FormatText:
		for _, n := range names {
			fmt.Fprintln(w, n)
		}
	default:
		rows := make([][]string, len(names))
		for i, n := range names {
			rows[i] = []string{strconv.Itoa(i + 1), n}
		}
		renderTable(w, []string{"#", "Herb"}, rows)
	}
	if format != FormatJSON && len(names) == 0 {
		fmt.Fprintln(w, color.YellowString("no herbs matched"))
	}
	return nil
}

func renderHerbDetail(w io.Writer, format string, d *client.HerbDetail) error {
	if format == FormatJSON {
		return printJSON(w, d)
	}

	fields := [][]string{
		{"Name", d.Name},
		{"Synonyms", strings.Join(d.Synonyms, ", ")},
		{"Rasa", strings.Join(d.Rasa, ", ")},
		{"Guna", strings.Join(d.Guna, ", ")},
		{"Vipaka", d.Vipaka},
		{"Virya", d.Virya},
		{"Prabhava", strings.Join(d.Prabhava, ", ")},
		{"Dosha", d.Dosha},
		{"Actions", strings.Join(d.TherapeuticActions, ", ")},
		{"Compounds", strings.Join(d.ModernCompounds, ", ")},
		{"Synergistic", strings.Join(d.Synergistic, ", ")},
	}
	if format == FormatText {
		for _, f := range fields {
			fmt.Fprintf(w, "%-12s %s\n", f[0]+":", orDash(f[1]))
		}
		for _, mc := range d.ModernCorrelations {
			fmt.Fprintf(w, "  %s -> %s\n", mc.AncientProperty, orDash(mc.ModernUnderstanding))
		}
		return nil
	}

	renderTable(w, []string{"Field", "Value"}, fields)
	if len(d.ModernCorrelations) > 0 {
		section(w, "Modern correlations")
		rows := make([][]string, 0, len(d.ModernCorrelations))
		for _, mc := range d.ModernCorrelations {
			rows = append(rows, []string{mc.AncientProperty, orDash(mc.ModernUnderstanding), strings.Join(mc.CompoundClasses, ", ")})
		}
		renderTable(w, []string{"Property", "Modern reading", "Compound classes"}, rows)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Analysis
// ─────────────────────────────────────────────────────────────────────────────

func renderAnalysis(w io.Writer, format string, res *client.AnalysisResult) error {
	switch format {
	case FormatJSON:
		return printJSON(w, res)
	case FormatText:
		renderAnalysisText(w, res)
		return nil
	}

	if res.ID != "" {
		fmt.Fprintf(w, "Analysis %s\n", res.ID)
	}
	if len(res.Herbs) == 0 {
		fmt.Fprintln(w, color.YellowString("No herbs detected."))
		return nil
	}

	section(w, "Herbs")
	rows := make([][]string, 0, len(res.Herbs))
	for _, h := range res.Herbs {
		rec := res.HerbProperties[h]
		rows = append(rows, []string{
			h,
			orDash(strings.Join(rec.Rasa, ", ")),
			orDash(rec.Virya),
			orDash(rec.Dosha),
			strconv.Itoa(len(res.Compounds[h])),
		})
	}
	renderTable(w, []string{"Herb", "Rasa", "Virya", "Dosha", "Compounds"}, rows)

	section(w, "Compounds")
	rows = rows[:0]
	for _, h := range res.Herbs {
		for _, c := range res.Compounds[h] {
			cid, formula := "-", "-"
			if c.PubChemID != nil {
				cid = strconv.FormatInt(*c.PubChemID, 10)
			}
			if c.MolecularFormula != nil {
				formula = *c.MolecularFormula
			}
			source := c.Source
			if c.Degraded() {
				source = color.YellowString(source)
			}
			rows = append(rows, []string{h, c.Name, cid, formula, source})
		}
	}
	renderTable(w, []string{"Herb", "Compound", "CID", "Formula", "Source"}, rows)

	if len(res.Hypotheses) > 0 {
		section(w, "Hypotheses")
		rows = rows[:0]
		for _, hy := range res.Hypotheses {
			rows = append(rows, []string{hy.Type, colorConfidence(hy.Confidence), truncate(hypothesisSummary(hy), 80)})
		}
		renderTable(w, []string{"Type", "Confidence", "Summary"}, rows)
	}
	return nil
}

func renderAnalysisText(w io.Writer, res *client.AnalysisResult) {
	if res.ID != "" {
		fmt.Fprintf(w, "id: %s\n", res.ID)
	}
	fmt.Fprintf(w, "herbs: %s\n", orDash(strings.Join(res.Herbs, ", ")))
	props := res.Properties
	for _, p := range []struct {
		name string
		tags []string
	}{{"rasa", props.Rasa}, {"guna", props.Guna}, {"vipaka", props.Vipaka}, {"virya", props.Virya}, {"prabhava", props.Prabhava}} {
		if len(p.tags) > 0 {
			fmt.Fprintf(w, "%s: %s\n", p.name, strings.Join(p.tags, ", "))
		}
	}

	herbs := make([]string, 0, len(res.Compounds))
	for h := range res.Compounds {
		herbs = append(herbs, h)
	}
	sort.Strings(herbs)
	for _, h := range herbs {
		names := make([]string, 0, len(res.Compounds[h]))
		for _, c := range res.Compounds[h] {
			names = append(names, c.Name)
		}
		fmt.Fprintf(w, "compounds[%s]: %s\n", h, strings.Join(names, ", "))
	}
	for _, hy := range res.Hypotheses {
		fmt.Fprintf(w, "- [%s/%s] %s\n", hy.Type, hy.Confidence, hypothesisSummary(hy))
	}
}

// hypothesisSummary picks the most descriptive populated field.
func hypothesisSummary(h client.Hypothesis) string {
	switch {
	case h.AyurvedicProperty != "":
		return h.Herb + ": " + h.AyurvedicProperty + " -> " + strings.Join(h.PredictedBioactivity, ", ")
	case h.DoshaEffect != "":
		return h.Herb + ": " + h.DoshaEffect
	case h.Pattern != "":
		return h.Pattern
	case h.Message != "":
		return h.Message
	case h.Mechanism != "":
		return strings.Join(h.Herbs, " + ") + ": " + h.Mechanism
	case h.Title != "":
		return h.Title
	}
	parts := make([]string, 0, len(h.Herbs)+len(h.Compounds))
	parts = append(parts, h.Herbs...)
	return strings.Join(append(parts, h.Compounds...), ", ")
}

//Personal.AI order the ending
