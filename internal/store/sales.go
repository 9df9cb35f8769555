package store

import (
	"fmt"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/model"
)

// BatchInsertSales inserts sales rows inside one transaction.
func (s *Store) BatchInsertSales(records []*model.Sale) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO sales (
			customer_name, customer_type, season, style_number,
			revenue, units_booked, units_shipped, ship_date,
			source_file, import_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.CustomerName, r.CustomerType, r.Season, r.StyleNumber,
			r.Revenue, r.UnitsBooked, r.UnitsShipped, r.ShipDate,
			r.SourceFile, r.ImportID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sale: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SaleQueryOptions filters sales listings.
type SaleQueryOptions struct {
	Season       *string
	CustomerName *string
	CustomerType *string
	Limit        int
	Offset       int
}

// where builds the filter clauses shared by ListSales and CountSales.
func (opts SaleQueryOptions) where() (string, []interface{}) {
	query := " WHERE 1=1"
	args := []interface{}{}

	if opts.Season != nil {
		query += " AND season = ?"
		args = append(args, *opts.Season)
	}
	if opts.CustomerName != nil {
		query += " AND customer_name = ?"
		args = append(args, *opts.CustomerName)
	}
	if opts.CustomerType != nil {
		query += " AND customer_type = ?"
		args = append(args, *opts.CustomerType)
	}
	return query, args
}

// ListSales returns sales rows matching the options.
func (s *Store) ListSales(opts SaleQueryOptions) ([]*model.Sale, error) {
	where, args := opts.where()
	query := `
		SELECT id, customer_name, customer_type, season, style_number,
		       revenue, units_booked, units_shipped, ship_date,
		       source_file, import_id
		FROM sales` + where

	query += " ORDER BY customer_name"
	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var out []*model.Sale
	for rows.Next() {
		r := &model.Sale{}
		if err := rows.Scan(
			&r.ID, &r.CustomerName, &r.CustomerType, &r.Season, &r.StyleNumber,
			&r.Revenue, &r.UnitsBooked, &r.UnitsShipped, &r.ShipDate,
			&r.SourceFile, &r.ImportID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountSales counts sales rows matching the options.
func (s *Store) CountSales(opts SaleQueryOptions) (int, error) {
	where, args := opts.where()
	query := "SELECT COUNT(1) FROM sales" + where

	var n int
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}
	return n, nil
}
