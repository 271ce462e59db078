package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schemaSQL string

type columnMigration struct {
	name       string
	definition string
}

// taskColumnMigrations lists columns added to tasks after the baseline
// schema. Order matters: they are applied in this order on old stores.
var taskColumnMigrations = []columnMigration{
	{name: "position", definition: "INTEGER"},
	{name: "priority", definition: "INTEGER DEFAULT 0"},
}

// EnsureSchema creates the tables when missing and adds any known column the
// tasks table lacks. It never drops or renames anything and is safe to run
// on every startup.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	existing, err := tableColumns(ctx, db, "tasks")
	if err != nil {
		return err
	}

	for _, column := range taskColumnMigrations {
		if _, ok := existing[column.name]; ok {
			continue
		}

		stmt := fmt.Sprintf("ALTER TABLE tasks ADD COLUMN %s %s", column.name, column.definition)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("add tasks.%s column: %w", column.name, err)
		}
		zap.L().Info("migrated tasks table", zap.String("column", column.name))
	}

	return nil
}

func tableColumns(ctx context.Context, db *sqlx.DB, table string) (map[string]struct{}, error) {
	var names []string
	if err := db.SelectContext(ctx, &names, "SELECT name FROM pragma_table_info(?)", table); err != nil {
		return nil, fmt.Errorf("inspect %s columns: %w", table, err)
	}

	columns := make(map[string]struct{}, len(names))
	for _, name := range names {
		columns[name] = struct{}{}
	}
	return columns, nil
}
