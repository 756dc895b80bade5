package domain

// DefaultSpecs returns the storefront seed catalog in dependency order:
// independent entities first, then every entity whose fields reference another
// type after the type it references. The orchestrator re-checks this ordering
// at startup, so reordering entries here fails fast rather than producing
// foreign-key violations mid-run.
func DefaultSpecs() []EntitySpec {
	return []EntitySpec{
		{
			Name:       "users",
			SourceFile: "users.csv",
			KeyField:   "id",
			Fields: []FieldSpec{
				{Name: "id", Type: FieldTypeString},
				{Name: "name", Type: FieldTypeString},
				{Name: "email", Type: FieldTypeString},
				{Name: "is_admin", Type: FieldTypeBoolean},
				{Name: "created_at", Type: FieldTypeTimestamp, Optional: true},
			},
		},
		{
			Name:       "products",
			SourceFile: "products.csv",
			KeyField:   "id",
			Fields: []FieldSpec{
				{Name: "id", Type: FieldTypeString},
				{Name: "name", Type: FieldTypeString},
				{Name: "description", Type: FieldTypeString},
				{Name: "price", Type: FieldTypeFloat},
				{Name: "stock", Type: FieldTypeInteger},
				{Name: "active", Type: FieldTypeBoolean},
				{Name: "created_at", Type: FieldTypeTimestamp, Optional: true},
			},
		},
		{
			Name:       "carts",
			SourceFile: "carts.csv",
			KeyField:   "id",
			Fields: []FieldSpec{
				{Name: "id", Type: FieldTypeString},
				{Name: "status", Type: FieldTypeString},
				{Name: "created_at", Type: FieldTypeTimestamp, Optional: true},
			},
		},
		{
			Name:       "cart_items",
			SourceFile: "cart_items.csv",
			KeyField:   "id",
			Fields: []FieldSpec{
				{Name: "id", Type: FieldTypeString},
				{Name: "cart_id", Type: FieldTypeString, References: "carts"},
				{Name: "product_id", Type: FieldTypeString, References: "products"},
				{Name: "quantity", Type: FieldTypeInteger},
				{Name: "unit_price", Type: FieldTypeFloat},
				{Name: "added_at", Type: FieldTypeTimestamp, Optional: true},
			},
		},
		{
			Name:       "favorites",
			SourceFile: "favorites.csv",
			KeyField:   "id",
			Fields: []FieldSpec{
				{Name: "id", Type: FieldTypeString},
				{Name: "user_id", Type: FieldTypeString, RequiredIdentifier: true, References: "users"},
				{Name: "product_id", Type: FieldTypeString, RequiredIdentifier: true, References: "products"},
				{Name: "favorited_at", Type: FieldTypeTimestamp, Optional: true},
			},
		},
		{
			Name:       "reviews",
			SourceFile: "reviews.csv",
			KeyField:   "id",
			Fields: []FieldSpec{
				{Name: "id", Type: FieldTypeString},
				{Name: "product_id", Type: FieldTypeString, References: "products"},
				{Name: "user_id", Type: FieldTypeString, References: "users"},
				{Name: "rating", Type: FieldTypeInteger},
				{Name: "body", Type: FieldTypeString},
				{Name: "verified", Type: FieldTypeBoolean},
				{Name: "reviewed_at", Type: FieldTypeTimestamp, Optional: true},
			},
		},
	}
}
