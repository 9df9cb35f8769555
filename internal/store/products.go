package store

import (
	"fmt"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/model"
)

// BatchInsertProducts inserts line list rows inside one transaction.
func (s *Store) BatchInsertProducts(records []*model.Product) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO products (
			style_number, style_name, description, category, division,
			color, season, msrp, wholesale, source_file, import_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.StyleNumber, r.StyleName, r.Description, r.Category, r.Division,
			r.Color, r.Season, r.MSRP, r.Wholesale, r.SourceFile, r.ImportID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert product: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ProductQueryOptions filters product listings.
type ProductQueryOptions struct {
	Season      *string
	Category    *string
	Division    *string
	StyleNumber *string
	Limit       int
	Offset      int
}

// where builds the filter clauses shared by ListProducts and CountProducts.
func (opts ProductQueryOptions) where() (string, []interface{}) {
	query := " WHERE 1=1"
	args := []interface{}{}

	if opts.Season != nil {
		query += " AND season = ?"
		args = append(args, *opts.Season)
	}
	if opts.Category != nil {
		query += " AND category = ?"
		args = append(args, *opts.Category)
	}
	if opts.Division != nil {
		query += " AND division = ?"
		args = append(args, *opts.Division)
	}
	if opts.StyleNumber != nil {
		query += " AND style_number = ?"
		args = append(args, *opts.StyleNumber)
	}
	return query, args
}

// ListProducts returns products matching the options.
func (s *Store) ListProducts(opts ProductQueryOptions) ([]*model.Product, error) {
	where, args := opts.where()
	query := `
		SELECT id, style_number, style_name, description, category, division,
		       color, season, msrp, wholesale, source_file, import_id
		FROM products` + where

	query += " ORDER BY style_number, color"
	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var out []*model.Product
	for rows.Next() {
		r := &model.Product{}
		if err := rows.Scan(
			&r.ID, &r.StyleNumber, &r.StyleName, &r.Description, &r.Category,
			&r.Division, &r.Color, &r.Season, &r.MSRP, &r.Wholesale,
			&r.SourceFile, &r.ImportID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountProducts counts products matching the options.
func (s *Store) CountProducts(opts ProductQueryOptions) (int, error) {
	where, args := opts.where()
	query := "SELECT COUNT(1) FROM products" + where

	var n int
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}
