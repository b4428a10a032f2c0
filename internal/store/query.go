package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCatalog   = "catalog"
	orderByPrice     = "price"
	orderByName      = "name"
	orderByUpdatedAt = "updated_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCatalog:   "seq ASC",
	orderByPrice:     "price ASC, seq ASC",
	orderByName:      "name ASC, seq ASC",
	orderByUpdatedAt: "updated_at DESC, seq ASC",
}

// defaultOrderBy keeps insertion order, which is the catalog order the
// ranking tie-break relies on.
const defaultOrderBy = "seq ASC"

const baseProductsSelect = `SELECT id, name, brand, price, usage_tags,
	weight_kg, weight_class, COALESCE(specs, '{}'), image_url, pros, cons
FROM products`

const countProductsSelect = "SELECT COUNT(*) FROM products"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a product
// query. It returns the data query, the count query, and their positional
// parameters.
func (q *ProductQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Usage != nil {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(usage_tags)", paramIdx))
		args = append(args, strings.ToLower(*q.Usage))
		paramIdx++
	}

	if q.Brand != nil {
		conditions = append(conditions, fmt.Sprintf(
			"(brand ILIKE $%d OR name ILIKE $%d)", paramIdx, paramIdx,
		))
		args = append(args, "%"+*q.Brand+"%")
		paramIdx++
	}

	if q.WeightClass != nil {
		conditions = append(conditions, fmt.Sprintf("weight_class = $%d", paramIdx))
		args = append(args, *q.WeightClass)
		paramIdx++
	}

	if q.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price >= $%d", paramIdx))
		args = append(args, *q.MinPrice)
		paramIdx++
	}

	if q.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", paramIdx))
		args = append(args, *q.MaxPrice)
		paramIdx++
	}

	if q.Search != nil {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", paramIdx))
		args = append(args, "%"+*q.Search+"%")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseProductsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countProductsSelect + whereClause

	return dataSQL, countSQL, args
}
