package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shortener/internal/entity"

	pgutil "github.com/vadimbarashkov/shortener/pkg/postgres"
)

const (
	keyConstraint       = "urls_key_key"
	secretKeyConstraint = "urls_secret_key_key"
)

const columns = `id, key, secret_key, target_url, is_active, clicks, created_at, updated_at`

type urlDB struct {
	ID        int64     `db:"id"`
	Key       string    `db:"key"`
	SecretKey string    `db:"secret_key"`
	TargetURL string    `db:"target_url"`
	IsActive  bool      `db:"is_active"`
	Clicks    int64     `db:"clicks"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (u *urlDB) toEntity() *entity.URL {
	return &entity.URL{
		ID:        u.ID,
		Key:       u.Key,
		SecretKey: u.SecretKey,
		TargetURL: u.TargetURL,
		IsActive:  u.IsActive,
		Clicks:    u.Clicks,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// URLRepository stores URL records in the urls table.
// Every method runs a single statement, so each call is atomic on its own.
type URLRepository struct {
	db *sqlx.DB
}

func NewURLRepository(db *sqlx.DB) *URLRepository {
	return &URLRepository{db: db}
}

func (r *URLRepository) Save(ctx context.Context, key, secretKey, targetURL string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.Save"
	const query = `INSERT INTO urls(key, secret_key, target_url) VALUES ($1, $2, $3) RETURNING ` + columns

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, key, secretKey, targetURL); err != nil {
		if constraint, ok := pgutil.UniqueViolation(err); ok {
			switch constraint {
			case keyConstraint:
				return nil, fmt.Errorf("%s: %w", op, entity.ErrKeyExists)
			case secretKeyConstraint:
				return nil, fmt.Errorf("%s: %w", op, entity.ErrSecretKeyExists)
			}
		}

		return nil, fmt.Errorf("%s: failed to insert into urls table: %w", op, err)
	}

	return url.toEntity(), nil
}

func (r *URLRepository) RetrieveActiveByKey(ctx context.Context, key string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveActiveByKey"
	const query = `SELECT ` + columns + ` FROM urls WHERE key = $1 AND is_active`

	return r.get(ctx, op, query, key)
}

func (r *URLRepository) RetrieveByKey(ctx context.Context, key string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveByKey"
	const query = `SELECT ` + columns + ` FROM urls WHERE key = $1`

	return r.get(ctx, op, query, key)
}

func (r *URLRepository) RetrieveBySecretKey(ctx context.Context, secretKey string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveBySecretKey"
	const query = `SELECT ` + columns + ` FROM urls WHERE secret_key = $1`

	return r.get(ctx, op, query, secretKey)
}

// IncrementClicks bumps the click counter of the active URL with the given key.
// Inactive and missing keys both yield entity.ErrURLNotFound.
func (r *URLRepository) IncrementClicks(ctx context.Context, key string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.IncrementClicks"
	const query = `UPDATE urls SET clicks = clicks + 1, updated_at = NOW()
		WHERE key = $1 AND is_active
		RETURNING ` + columns

	return r.get(ctx, op, query, key)
}

func (r *URLRepository) ToggleActive(ctx context.Context, secretKey string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.ToggleActive"
	const query = `UPDATE urls SET is_active = NOT is_active, updated_at = NOW()
		WHERE secret_key = $1
		RETURNING ` + columns

	return r.get(ctx, op, query, secretKey)
}

func (r *URLRepository) Remove(ctx context.Context, secretKey string) error {
	const op = "adapter.repository.postgres.URLRepository.Remove"
	const query = `DELETE FROM urls WHERE secret_key = $1`

	res, err := r.db.ExecContext(ctx, query, secretKey)
	if err != nil {
		return fmt.Errorf("%s: failed to delete from urls table: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get number of affected rows: %w", op, err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	return nil
}

func (r *URLRepository) RetrieveAll(ctx context.Context) ([]entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveAll"
	const query = `SELECT ` + columns + ` FROM urls ORDER BY id`

	var rows []urlDB

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%s: failed to select from urls table: %w", op, err)
	}

	urls := make([]entity.URL, 0, len(rows))
	for i := range rows {
		urls = append(urls, *rows[i].toEntity())
	}

	return urls, nil
}

func (r *URLRepository) get(ctx context.Context, op, query, arg string) (*entity.URL, error) {
	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from urls table: %w", op, err)
	}

	return url.toEntity(), nil
}
