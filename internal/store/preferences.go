package store

import (
	"context"
	"database/sql"
	errs "errors"
	"time"
)

const preferenceTimeout = 5 * time.Second

// PreferenceRepo is the key-value preference table. It serves both the
// preference editor and the counters' settings lookups. Those interfaces
// take no context, so each query gets its own bounded one.
type PreferenceRepo struct {
	db      *DB
	timeout time.Duration
}

func NewPreferenceRepo(db *DB) *PreferenceRepo {
	return &PreferenceRepo{db: db, timeout: preferenceTimeout}
}

func (r *PreferenceRepo) PersistString(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	err := r.db.gorm.WithContext(ctx).Exec(`INSERT INTO preferences(key, value) VALUES (?, ?)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, key, value).Error
	return wrap(err, "persist preference "+key)
}

func (r *PreferenceRepo) PersistedString(key, def string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	row := r.db.gorm.WithContext(ctx).Raw(`SELECT value FROM preferences WHERE key = ?`, key).Row()
	var v string
	if err := row.Scan(&v); err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return def, nil
		}
		return def, wrap(err, "read preference "+key)
	}
	return v, nil
}

// String is the settings lookup; read failures yield def.
func (r *PreferenceRepo) String(key, def string) string {
	v, err := r.PersistedString(key, def)
	if err != nil {
		return def
	}
	return v
}
