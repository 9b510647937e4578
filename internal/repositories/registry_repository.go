package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// registryRepository persists one of the flat name registries (tags or word
// groups). Both tables are a single name column, so they share one
// implementation bound to a table name.
type registryRepository struct {
	db    *sql.DB
	table string
}

// NewTagRepository creates the tag registry repository.
func NewTagRepository(db *sql.DB) *registryRepository {
	return &registryRepository{db: db, table: "tags"}
}

// NewWordGroupRepository creates the word-group registry repository.
func NewWordGroupRepository(db *sql.DB) *registryRepository {
	return &registryRepository{db: db, table: "word_groups"}
}

// List returns every registered name in insertion order.
func (r *registryRepository) List(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT name FROM %s ORDER BY id`, r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.table, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return names, nil
}

// Add registers a name. Re-adding an existing name is a no-op.
func (r *registryRepository) Add(ctx context.Context, name string) error {
	query := fmt.Sprintf(`INSERT IGNORE INTO %s (name) VALUES (?)`, r.table)

	if _, err := r.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("failed to add to %s: %w", r.table, err)
	}
	return nil
}

// Delete removes a name from the registry.
func (r *registryRepository) Delete(ctx context.Context, name string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE name = ?`, r.table)

	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s not found", singular(r.table))
	}
	return nil
}

// DeleteAll wipes the registry. Used by non-merge imports.
func (r *registryRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, r.table)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.table, err)
	}
	return nil
}

func singular(table string) string {
	switch table {
	case "tags":
		return "tag"
	case "word_groups":
		return "word group"
	}
	return table
}
