package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printScoredTable(w io.Writer, items []domain.ScoredItem) error {
	tw := newTabWriter(w)
	tw.writef("#\tSCORE\tID\tNAME\tBRAND\tPRICE\tUSAGE\tBAND\n")
	for i := range items {
		it := &items[i].Item
		tw.writef("%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			items[i].Score,
			it.ID,
			truncate(it.Name, 32),
			it.Brand,
			itemPrice(it),
			joinUsage(it.UsageTags),
			bandOrDash(it.WeightClass()),
		)
	}
	return tw.finish()
}

func printCatalogTable(w io.Writer, items []domain.CatalogItem) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tBRAND\tPRICE\tUSAGE\tWEIGHT\n")
	for i := range items {
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			items[i].ID,
			truncate(items[i].Name, 32),
			items[i].Brand,
			itemPrice(&items[i]),
			joinUsage(items[i].UsageTags),
			formatWeight(items[i].WeightKg),
		)
	}
	return tw.finish()
}

func printCatalogDetail(w io.Writer, item *domain.CatalogItem) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", item.ID)
	tw.writef("Name:\t%s\n", item.Name)
	tw.writef("Brand:\t%s\n", item.Brand)
	tw.writef("Price:\t%s\n", itemPrice(item))
	tw.writef("Usage:\t%s\n", joinUsage(item.UsageTags))
	tw.writef("Weight:\t%s (%s)\n", formatWeight(item.WeightKg), bandOrDash(item.WeightClass()))

	keys := make([]string, 0, len(item.Specs))
	for k := range item.Specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tw.writef("%s:\t%s\n", k, item.Specs[k])
	}

	if len(item.Pros) > 0 {
		tw.writef("Pros:\t%s\n", strings.Join(item.Pros, "; "))
	}
	if len(item.Cons) > 0 {
		tw.writef("Cons:\t%s\n", strings.Join(item.Cons, "; "))
	}
	return tw.finish()
}

func printBreakdown(w io.Writer, item *domain.CatalogItem, b domain.Breakdown) error {
	tw := newTabWriter(w)
	tw.writef("Product:\t%s (%s)\n", item.Name, item.ID)
	tw.writef("Usage:\t%d\n", b.Usage)
	tw.writef("Budget:\t%d\n", b.Budget)
	tw.writef("Brand:\t%d\n", b.Brand)
	tw.writef("Portability:\t%d\n", b.Portability)
	tw.writef("Score:\t%d/100\n", b.Total)
	if b.Malformed {
		tw.writef("Note:\tproduct data is malformed and cannot be scored\n")
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func itemPrice(it *domain.CatalogItem) string {
	if !it.HasPrice() {
		return "-"
	}
	return formatPrice(it.Price)
}

// formatPrice prints whole currency units grouped by thousands, e.g. 1 850 000.
func formatPrice(p float64) string {
	s := fmt.Sprintf("%.0f", p)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func formatWeight(kg float64) string {
	if kg <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f kg", kg)
}

func joinUsage(tags []domain.Usage) string {
	if len(tags) == 0 {
		return "-"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

func bandOrDash(p domain.Portability) string {
	if p == domain.PortabilityUnknown {
		return "-"
	}
	return string(p)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
