package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"partnerevents/internal/domain"
)

type partnerRepository struct {
	DB *sql.DB
}

// NewPartnerRepository returns a PartnerDirectory backed by the partners table.
func NewPartnerRepository(db *sql.DB) domain.PartnerDirectory {
	return &partnerRepository{
		DB: db,
	}
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func (r *partnerRepository) Fetch(ctx context.Context) ([]domain.PartnerRecord, error) {
	query := `
		SELECT email, country, available_dates
		FROM partners
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryUnavailable, err)
	}
	defer rows.Close()

	var partners []domain.PartnerRecord
	for rows.Next() {
		var p domain.PartnerRecord
		var dates pq.StringArray
		if err := rows.Scan(&p.Email, &p.Country, &dates); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		p.AvailableDates = []string(dates)
		partners = append(partners, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryUnavailable, err)
	}
	if len(partners) == 0 {
		return nil, domain.ErrNoPartners
	}
	return partners, nil
}
