package store

import (
	"context"
	"database/sql"
	"encoding/json"
	errs "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DaanHessen/lifecounter/internal/life"
)

// GameRepo saves whole games: one life model per seat.
type GameRepo struct{ db *DB }

func NewGameRepo(db *DB) *GameRepo { return &GameRepo{db: db} }

func (g *GameRepo) SaveGame(ctx context.Context, players []*life.Model) (uuid.UUID, error) {
	id := uuid.New()
	err := g.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Exec(`INSERT INTO games(id) VALUES (?)`, id).Error; err != nil {
			return err
		}
		for seat, m := range players {
			b, err := json.Marshal(m)
			if err != nil {
				return err
			}
			if err := tx.Exec(`INSERT INTO game_players(game_id, seat, model) VALUES (?,?,?)`, id, seat, b).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, wrap(err, "save game")
	}
	return id, nil
}

// LatestGame loads the most recently saved game, seats in order.
func (g *GameRepo) LatestGame(ctx context.Context) ([]*life.Model, error) {
	var id uuid.UUID
	row := g.db.gorm.WithContext(ctx).Raw(`SELECT id FROM games ORDER BY created_at DESC LIMIT 1`).Row()
	if err := row.Scan(&id); err != nil {
		return nil, latestGameErr(err)
	}
	rows, err := g.db.gorm.WithContext(ctx).Raw(`SELECT model FROM game_players WHERE game_id = ? ORDER BY seat`, id).Rows()
	if err != nil {
		return nil, wrap(err, "load game")
	}
	defer rows.Close()
	var out []*life.Model
	for rows.Next() {
		var b []byte
		if err := rows.Scan(&b); err != nil {
			return nil, wrap(err, "scan game")
		}
		m := new(life.Model)
		if err := json.Unmarshal(b, m); err != nil {
			return nil, wrap(err, "decode game")
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// latestGameErr maps an empty games table to ErrNoGame and wraps the rest.
func latestGameErr(err error) error {
	if errs.Is(err, sql.ErrNoRows) {
		return ErrNoGame
	}
	return wrap(err, "find latest game")
}

// Postgres bundles the repositories over one connection.
type Postgres struct {
	*PreferenceRepo
	*GameRepo
	db *DB
}

func NewPostgres(db *DB) *Postgres {
	return &Postgres{PreferenceRepo: NewPreferenceRepo(db), GameRepo: NewGameRepo(db), db: db}
}

func (p *Postgres) Close() error { return p.db.Close() }
