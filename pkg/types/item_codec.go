package domain

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// itemFields has CatalogItem's layout without its codec methods.
type itemFields CatalogItem

// MarshalJSON writes a null price for items whose price is absent so the
// absence survives a round trip through the catalog cache.
func (i CatalogItem) MarshalJSON() ([]byte, error) {
	if i.HasPrice() {
		return json.Marshal(itemFields(i))
	}
	return json.Marshal(struct {
		itemFields
		Price *float64 `json:"price"`
	}{itemFields: itemFields(i)})
}

// UnmarshalJSON decodes an item, recording whether "price" was present and
// non-null.
func (i *CatalogItem) UnmarshalJSON(data []byte) error {
	var fields itemFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var price struct {
		Price json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &price); err != nil {
		return err
	}

	*i = CatalogItem(fields)
	i.priceUnset = len(price.Price) == 0 || string(price.Price) == "null"
	return nil
}

// UnmarshalYAML decodes an item, recording whether "price" was present and
// non-null.
func (i *CatalogItem) UnmarshalYAML(value *yaml.Node) error {
	var fields itemFields
	if err := value.Decode(&fields); err != nil {
		return err
	}

	*i = CatalogItem(fields)
	i.priceUnset = !yamlKeySet(value, "price")
	return nil
}

func yamlKeySet(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for k := 0; k+1 < len(node.Content); k += 2 {
		if node.Content[k].Value != key {
			continue
		}
		v := node.Content[k+1]
		return !(v.Kind == yaml.ScalarNode && v.Tag == "!!null")
	}
	return false
}
