package store

import (
	"fmt"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/model"
)

// BatchInsertPricing inserts pricing rows inside one transaction.
func (s *Store) BatchInsertPricing(records []*model.PricingRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO pricing (
			style_number, color, season, price, msrp, currency,
			source_file, import_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.StyleNumber, r.Color, r.Season, r.Price, r.MSRP, r.Currency,
			r.SourceFile, r.ImportID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert pricing record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// PricingQueryOptions filters pricing listings.
type PricingQueryOptions struct {
	Season      *string
	StyleNumber *string
	Limit       int
	Offset      int
}

// where builds the filter clauses shared by ListPricing and CountPricing.
func (opts PricingQueryOptions) where() (string, []interface{}) {
	query := " WHERE 1=1"
	args := []interface{}{}

	if opts.Season != nil {
		query += " AND season = ?"
		args = append(args, *opts.Season)
	}
	if opts.StyleNumber != nil {
		query += " AND style_number = ?"
		args = append(args, *opts.StyleNumber)
	}
	return query, args
}

// ListPricing returns pricing rows matching the options.
func (s *Store) ListPricing(opts PricingQueryOptions) ([]*model.PricingRecord, error) {
	where, args := opts.where()
	query := `
		SELECT id, style_number, color, season, price, msrp, currency,
		       source_file, import_id
		FROM pricing` + where

	query += " ORDER BY style_number, color"
	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing: %w", err)
	}
	defer rows.Close()

	var out []*model.PricingRecord
	for rows.Next() {
		r := &model.PricingRecord{}
		if err := rows.Scan(
			&r.ID, &r.StyleNumber, &r.Color, &r.Season, &r.Price, &r.MSRP,
			&r.Currency, &r.SourceFile, &r.ImportID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pricing record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountPricing counts pricing rows matching the options.
func (s *Store) CountPricing(opts PricingQueryOptions) (int, error) {
	where, args := opts.where()
	query := "SELECT COUNT(1) FROM pricing" + where

	var n int
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count pricing: %w", err)
	}
	return n, nil
}
