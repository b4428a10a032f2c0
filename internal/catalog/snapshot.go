package catalog

import (
	"strings"
	"sync"
	"time"

	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

// Snapshot is one normalized load of the catalog. It is never modified after
// it is published to a Holder.
type Snapshot struct {
	Items    []domain.CatalogItem
	Source   string
	LoadedAt time.Time
	Stats    NormalizeStats
	index    map[string]int
}

// NewSnapshot builds a snapshot over already normalized items.
func NewSnapshot(items []domain.CatalogItem, source string, stats NormalizeStats, loadedAt time.Time) *Snapshot {
	idx := make(map[string]int, len(items))
	for i := range items {
		idx[items[i].ID] = i
	}
	return &Snapshot{
		Items:    items,
		Source:   source,
		LoadedAt: loadedAt,
		Stats:    stats,
		index:    idx,
	}
}

// Len returns the number of items.
func (s *Snapshot) Len() int { return len(s.Items) }

// Find returns a copy of the item with the given id.
func (s *Snapshot) Find(id string) (domain.CatalogItem, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.CatalogItem{}, false
	}
	return s.Items[i].Clone(), true
}

// Query filters a catalog listing. Zero price bounds are unbounded; a bound
// excludes items without a price.
type Query struct {
	Usage       domain.Usage
	Brand       string
	WeightClass domain.Portability
	MinPrice    int64
	MaxPrice    int64
	Search      string // name substring, case-insensitive
	Limit       int
	Offset      int
}

// List returns copies of the items matching q in catalog order together with
// the number of matches before paging. A non-positive limit returns every
// match after offset.
func (s *Snapshot) List(q Query) ([]domain.CatalogItem, int) {
	usage := q.Usage
	if u, ok := domain.ParseUsage(string(q.Usage)); ok {
		usage = u
	}
	brand := strings.ToLower(strings.TrimSpace(q.Brand))
	if brand == domain.AnyBrand {
		brand = ""
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))

	var matched []int
	for i := range s.Items {
		item := &s.Items[i]
		if usage != "" && !item.HasUsage(usage) {
			continue
		}
		if brand != "" &&
			!strings.Contains(strings.ToLower(item.Brand), brand) &&
			!strings.Contains(strings.ToLower(item.Name), brand) {
			continue
		}
		if q.WeightClass != "" && item.WeightClass() != q.WeightClass {
			continue
		}
		if (q.MinPrice > 0 || q.MaxPrice > 0) && !priceWithin(item, q.MinPrice, q.MaxPrice) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		matched = append(matched, i)
	}

	total := len(matched)
	start := min(max(q.Offset, 0), total)
	end := total
	if q.Limit > 0 {
		end = min(start+q.Limit, total)
	}

	out := make([]domain.CatalogItem, 0, end-start)
	for _, i := range matched[start:end] {
		out = append(out, s.Items[i].Clone())
	}
	return out, total
}

func priceWithin(item *domain.CatalogItem, lo, hi int64) bool {
	if !item.HasPrice() || item.Price < float64(lo) {
		return false
	}
	return hi <= 0 || item.Price <= float64(hi)
}

// Holder publishes the current snapshot to concurrent readers.
type Holder struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewHolder returns an empty holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Set publishes s, replacing the previous snapshot.
func (h *Holder) Set(s *Snapshot) {
	h.mu.Lock()
	h.snap = s
	h.mu.Unlock()
}

// Get returns the current snapshot, or ErrNoSnapshot before the first load.
// The returned snapshot must be treated as read-only.
func (h *Holder) Get() (*Snapshot, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.snap == nil {
		return nil, ErrNoSnapshot
	}
	return h.snap, nil
}

// Items returns a copy of the current items.
func (h *Holder) Items() ([]domain.CatalogItem, error) {
	s, err := h.Get()
	if err != nil {
		return nil, err
	}
	cp := make([]domain.CatalogItem, len(s.Items))
	for i := range s.Items {
		cp[i] = s.Items[i].Clone()
	}
	return cp, nil
}
