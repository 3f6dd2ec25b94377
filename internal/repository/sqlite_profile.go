package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/quadro/internal/db"
	"github.com/alexanderramin/quadro/internal/domain"
)

// SQLiteProfileRepo stores the single local profile row.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(db db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: db}
}

// Get returns ErrNotFound until the profile has been saved once.
func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT id, first_name, last_name, avatar_url, updated_at FROM profiles WHERE id = ?`
	var p domain.Profile
	var updatedAtStr string
	err := r.db.QueryRowContext(ctx, query, domain.LocalProfileID).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.AvatarURL, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	if err := parseTimestamps(timestampField{"updated_at", updatedAtStr, &p.UpdatedAt}); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, first_name, last_name, avatar_url, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			avatar_url = excluded.avatar_url,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		domain.LocalProfileID,
		p.FirstName,
		p.LastName,
		p.AvatarURL,
		formatTimestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
