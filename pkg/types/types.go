// Package domain defines the core business types for the configurator:
// the shopper's criteria, the catalog items they are matched against, and
// the scored results handed back to the storefront.
package domain

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Usage is the primary thing a shopper wants the machine for.
type Usage string

// Usage constants.
const (
	UsageGaming     Usage = "gaming"
	UsageWork       Usage = "work"
	UsageCreation   Usage = "creation"
	UsageStudent    Usage = "student"
	UsageMultimedia Usage = "multimedia"
)

// Usages lists every known usage category in display order.
var Usages = []Usage{UsageGaming, UsageWork, UsageCreation, UsageStudent, UsageMultimedia}

// usageAliases maps accepted spellings onto canonical usages.
var usageAliases = map[string]Usage{
	"content-creation": UsageCreation,
	"content_creation": UsageCreation,
	"office":           UsageWork,
}

// ParseUsage normalizes a usage string. It returns an empty Usage and false
// when the value is not a known category.
func ParseUsage(s string) (Usage, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := usageAliases[v]; ok {
		return alias, true
	}
	u := Usage(v)
	if slices.Contains(Usages, u) {
		return u, true
	}
	return "", false
}

// Portability is the weight band of a machine.
type Portability string

// Portability constants. PortabilityUnknown means no band could be derived.
const (
	PortabilityUnknown            Portability = ""
	PortabilityVeryPortable       Portability = "very_portable"
	PortabilityPortable           Portability = "portable"
	PortabilityDesktopReplacement Portability = "desktop_replacement"
)

// Weight thresholds (kg) separating the portability bands.
const (
	VeryPortableMaxKg = 1.5
	PortableMaxKg     = 2.5
)

// ParsePortability normalizes a portability string, accepting hyphens or
// underscores. An empty string parses to PortabilityUnknown.
func ParsePortability(s string) (Portability, bool) {
	v := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch Portability(v) {
	case PortabilityUnknown:
		return PortabilityUnknown, true
	case PortabilityVeryPortable, PortabilityPortable, PortabilityDesktopReplacement:
		return Portability(v), true
	default:
		return PortabilityUnknown, false
	}
}

// BandForWeight maps a raw weight in kilograms onto a portability band.
// Non-positive weights yield PortabilityUnknown.
func BandForWeight(kg float64) Portability {
	switch {
	case kg <= 0 || math.IsNaN(kg):
		return PortabilityUnknown
	case kg < VeryPortableMaxKg:
		return PortabilityVeryPortable
	case kg <= PortableMaxKg:
		return PortabilityPortable
	default:
		return PortabilityDesktopReplacement
	}
}

// AnyBrand is the explicit "no brand preference" token.
const AnyBrand = "any"

// Budget is a closed price range in whole currency units.
type Budget struct {
	Min int64 `json:"min" yaml:"min"`
	Max int64 `json:"max" yaml:"max"`
}

// Contains reports whether price falls inside [Min, Max].
func (b Budget) Contains(price float64) bool {
	return price >= float64(b.Min) && price <= float64(b.Max)
}

// Criteria describes what a shopper asked for.
type Criteria struct {
	Usage                 Usage       `json:"usage"                            yaml:"usage"`
	Budget                Budget      `json:"budget"                           yaml:"budget"`
	BrandPreference       string      `json:"brand_preference,omitempty"       yaml:"brand_preference,omitempty"`
	PortabilityPreference Portability `json:"portability_preference,omitempty" yaml:"portability_preference,omitempty"`
}

// BrandToken returns the lowercased brand the shopper asked for, or "" when
// any brand is acceptable.
func (c *Criteria) BrandToken() string {
	v := strings.ToLower(strings.TrimSpace(c.BrandPreference))
	if v == AnyBrand {
		return ""
	}
	return v
}

// Normalized returns a copy of the criteria with usage and portability in
// their canonical spelling. Unknown values are left untouched.
func (c *Criteria) Normalized() Criteria {
	n := *c
	if u, ok := ParseUsage(string(c.Usage)); ok {
		n.Usage = u
	}
	if p, ok := ParsePortability(string(c.PortabilityPreference)); ok {
		n.PortabilityPreference = p
	}
	n.BrandPreference = strings.TrimSpace(c.BrandPreference)
	return n
}

// Validate checks the criteria and returns every problem found.
func (c *Criteria) Validate() error {
	var errs []error

	if strings.TrimSpace(string(c.Usage)) == "" {
		errs = append(errs, errors.New("usage is required"))
	} else if _, ok := ParseUsage(string(c.Usage)); !ok {
		errs = append(errs, fmt.Errorf("usage %q is not one of %v", c.Usage, Usages))
	}

	if c.Budget.Min < 0 {
		errs = append(errs, fmt.Errorf("budget.min must be non-negative (got %d)", c.Budget.Min))
	}
	if c.Budget.Max < 0 {
		errs = append(errs, fmt.Errorf("budget.max must be non-negative (got %d)", c.Budget.Max))
	}
	if c.Budget.Min > c.Budget.Max {
		errs = append(errs, fmt.Errorf(
			"budget.min (%d) must not exceed budget.max (%d)", c.Budget.Min, c.Budget.Max,
		))
	}

	if _, ok := ParsePortability(string(c.PortabilityPreference)); !ok {
		errs = append(errs, fmt.Errorf(
			"portability_preference %q is not a known band", c.PortabilityPreference,
		))
	}

	return errors.Join(errs...)
}

// CatalogItem is a candidate product with the attributes used for scoring.
type CatalogItem struct {
	ID        string            `json:"id"                     yaml:"id"`
	Name      string            `json:"name"                   yaml:"name"`
	Price     float64           `json:"price"                  yaml:"price"      required:"false" nullable:"true"`
	UsageTags []Usage           `json:"usage_tags"             yaml:"usage_tags" required:"false"`
	Brand     string            `json:"brand"                  yaml:"brand"`
	WeightKg  float64           `json:"weight_kg,omitempty"    yaml:"weight_kg,omitempty"`
	Band      Portability       `json:"weight_class,omitempty" yaml:"weight_class,omitempty"`
	Specs     map[string]string `json:"specs,omitempty"        yaml:"specs,omitempty"`
	ImageURL  string            `json:"image_url,omitempty"    yaml:"image_url,omitempty"`
	Pros      []string          `json:"pros,omitempty"         yaml:"pros,omitempty"`
	Cons      []string          `json:"cons,omitempty"         yaml:"cons,omitempty"`

	// priceUnset is set by the decoders when the document has no price.
	priceUnset bool
}

// WeightClass returns the item's portability band. An explicit band wins
// over one derived from WeightKg.
func (i *CatalogItem) WeightClass() Portability {
	if band, ok := ParsePortability(string(i.Band)); ok && band != PortabilityUnknown {
		return band
	}
	return BandForWeight(i.WeightKg)
}

// HasUsage reports whether the item is tagged for u. Tags are compared in
// their canonical spelling.
func (i *CatalogItem) HasUsage(u Usage) bool {
	for _, tag := range i.UsageTags {
		if tag == u {
			return true
		}
		if parsed, ok := ParseUsage(string(tag)); ok && parsed == u {
			return true
		}
	}
	return false
}

// HasPrice reports whether the item carries a price at all. Items built in
// Go always do; decoded items do only when the document set one.
func (i *CatalogItem) HasPrice() bool {
	return !i.priceUnset
}

// ClearPrice marks the price as absent.
func (i *CatalogItem) ClearPrice() {
	i.Price = 0
	i.priceUnset = true
}

// Malformed reports whether the item cannot be scored: it has no usage tags,
// or its price is absent, negative or not finite.
func (i *CatalogItem) Malformed() bool {
	if len(i.UsageTags) == 0 || !i.HasPrice() {
		return true
	}
	return i.Price < 0 || math.IsNaN(i.Price) || math.IsInf(i.Price, 0)
}

// Clone returns a deep copy of the item.
func (i *CatalogItem) Clone() CatalogItem {
	c := *i
	c.UsageTags = slices.Clone(i.UsageTags)
	c.Pros = slices.Clone(i.Pros)
	c.Cons = slices.Clone(i.Cons)
	if i.Specs != nil {
		c.Specs = make(map[string]string, len(i.Specs))
		for k, v := range i.Specs {
			c.Specs[k] = v
		}
	}
	return c
}

// Breakdown shows the per-factor contributions to a score.
type Breakdown struct {
	Usage       int  `json:"usage"`
	Budget      int  `json:"budget"`
	Brand       int  `json:"brand"`
	Portability int  `json:"portability"`
	Total       int  `json:"total"`
	Malformed   bool `json:"malformed,omitempty"`
}

// ScoredItem is a catalog item annotated with its score for one request.
type ScoredItem struct {
	Item      CatalogItem `json:"item"`
	Score     int         `json:"score"`
	Breakdown Breakdown   `json:"breakdown"`
}
