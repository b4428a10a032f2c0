package store

// SQL query constants. PostgresStore methods reference these constants.

const (
	queryUpsertProduct = `
		INSERT INTO products (
			id, name, brand, price, usage_tags,
			weight_kg, weight_class, specs, image_url, pros, cons,
			created_at, updated_at
		) VALUES (
			@id, @name, @brand, @price, @usage_tags,
			@weight_kg, @weight_class, @specs, @image_url, @pros, @cons,
			now(), now()
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			brand = EXCLUDED.brand,
			price = EXCLUDED.price,
			usage_tags = EXCLUDED.usage_tags,
			weight_kg = EXCLUDED.weight_kg,
			weight_class = EXCLUDED.weight_class,
			specs = EXCLUDED.specs,
			image_url = EXCLUDED.image_url,
			pros = EXCLUDED.pros,
			cons = EXCLUDED.cons,
			updated_at = now()`

	queryGetProduct = baseProductsSelect + ` WHERE id = $1`

	queryAllProducts = baseProductsSelect + ` ORDER BY ` + defaultOrderBy

	queryCountProducts = countProductsSelect
)
