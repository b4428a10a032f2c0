package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

//go:embed demo_catalog.yaml
var demoCatalogData []byte

// Format is the encoding of a catalog document.
type Format string

// Supported catalog formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from a file extension. Anything that is not
// .json is read as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// catalogFile is the wrapped document layout. A bare list of items is
// accepted as well.
type catalogFile struct {
	Products []domain.CatalogItem `json:"products" yaml:"products"`
}

// Parse decodes a catalog document, either {"products": [...]} or a bare
// list of items.
func Parse(data []byte, format Format) ([]domain.CatalogItem, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []domain.CatalogItem{}, nil
	}

	switch format {
	case FormatJSON:
		return parseJSON(trimmed)
	case FormatYAML:
		return parseYAML(trimmed)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
}

func parseJSON(data []byte) ([]domain.CatalogItem, error) {
	if data[0] == '[' {
		var items []domain.CatalogItem
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decoding catalog JSON: %w", err)
		}
		return items, nil
	}

	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding catalog JSON: %w", err)
	}
	return nonNilItems(f.Products), nil
}

func parseYAML(data []byte) ([]domain.CatalogItem, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("decoding catalog YAML: %w", err)
	}

	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		var items []domain.CatalogItem
		if err := node.Decode(&items); err != nil {
			return nil, fmt.Errorf("decoding catalog YAML: %w", err)
		}
		return items, nil
	}

	var f catalogFile
	if err := node.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding catalog YAML: %w", err)
	}
	return nonNilItems(f.Products), nil
}

func nonNilItems(items []domain.CatalogItem) []domain.CatalogItem {
	if items == nil {
		return []domain.CatalogItem{}
	}
	return items
}

// FileSource reads a catalog from a YAML or JSON file on every Fetch.
type FileSource struct {
	path string
}

// NewFileSource returns a Source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements Source.
func (s *FileSource) Name() string { return "file:" + filepath.Base(s.path) }

// Fetch implements Source.
func (s *FileSource) Fetch(_ context.Context) ([]domain.CatalogItem, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // path comes from trusted config
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data, FormatForPath(s.path))
}

// EmbeddedSource serves the demo catalog compiled into the binary. It is
// parsed once on first use.
type EmbeddedSource struct {
	once  sync.Once
	items []domain.CatalogItem
	err   error
}

// NewEmbeddedSource returns the demo catalog source.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Name implements Source.
func (s *EmbeddedSource) Name() string { return "embedded" }

// Fetch implements Source. Callers get their own copy of the items.
func (s *EmbeddedSource) Fetch(_ context.Context) ([]domain.CatalogItem, error) {
	s.once.Do(s.load)
	if s.err != nil {
		return nil, s.err
	}
	cp := make([]domain.CatalogItem, len(s.items))
	for i := range s.items {
		cp[i] = s.items[i].Clone()
	}
	return cp, nil
}

func (s *EmbeddedSource) load() {
	s.items, s.err = Parse(demoCatalogData, FormatYAML)
	if s.err != nil {
		s.err = fmt.Errorf("parsing embedded catalog: %w", s.err)
	}
}
