package catalog

import (
	"slices"
	"strings"

	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

// NormalizeStats summarizes one Normalize pass.
type NormalizeStats struct {
	Total      int `json:"total"`
	Kept       int `json:"kept"`
	Duplicates int `json:"duplicates"`
	MissingID  int `json:"missing_id"`
	Malformed  int `json:"malformed"`
}

// Normalize prepares raw items for scoring. It trims text fields, rewrites
// usage tags in canonical form, derives weight_class from weight_kg when no
// band is given, and drops items without an id or with an id already seen
// (the first one wins). Malformed items are kept and counted; they score 0.
// The input is not modified.
func Normalize(items []domain.CatalogItem) ([]domain.CatalogItem, NormalizeStats) {
	stats := NormalizeStats{Total: len(items)}
	out := make([]domain.CatalogItem, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for i := range items {
		item := items[i].Clone()
		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			stats.MissingID++
			continue
		}
		if _, dup := seen[item.ID]; dup {
			stats.Duplicates++
			continue
		}
		seen[item.ID] = struct{}{}

		item.Name = strings.TrimSpace(item.Name)
		item.Brand = strings.TrimSpace(item.Brand)
		item.UsageTags = normalizeTags(item.UsageTags)
		item.Band = item.WeightClass()

		if item.Malformed() {
			stats.Malformed++
		}

		out = append(out, item)
	}

	stats.Kept = len(out)
	return out, stats
}

// normalizeTags canonicalizes and deduplicates tags, keeping first-seen
// order. Unknown tags are kept lowercased.
func normalizeTags(tags []domain.Usage) []domain.Usage {
	out := make([]domain.Usage, 0, len(tags))
	for _, t := range tags {
		u, ok := domain.ParseUsage(string(t))
		if !ok {
			u = domain.Usage(strings.ToLower(strings.TrimSpace(string(t))))
		}
		if u == "" || slices.Contains(out, u) {
			continue
		}
		out = append(out, u)
	}
	return out
}
