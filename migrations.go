package localize

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-localize/internal/records"
)

// RegisterModels registers the module's bun models so relations resolve before
// any query runs.
func RegisterModels(db *bun.DB) {
	db.RegisterModel(
		(*records.Locale)(nil),
		(*records.Record)(nil),
		(*records.Translation)(nil),
	)
}

// CreateSchema creates the module's tables when they do not exist yet.
// Intended for embedded deployments and tests; production setups usually run
// their own migrations.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	RegisterModels(db)

	models := []any{
		(*records.Locale)(nil),
		(*records.Record)(nil),
		(*records.Translation)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
