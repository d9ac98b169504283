package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/safewalk/go-safewalk/graph"
)

//*******************************************
// way cache
//*******************************************

const schema = `
	CREATE TABLE IF NOT EXISTS cached_ways (
		way_id BIGINT PRIMARY KEY,
		name   TEXT NOT NULL DEFAULT '',
		points JSONB NOT NULL
	)`

// WayStore caches fetched raw ways in Postgres so a graph rebuild does not
// have to hit the live street data source again.
type WayStore struct {
	db *sqlx.DB
}

func NewWayStore(conn_str string) (*WayStore, error) {
	db, err := sqlx.Connect("postgres", conn_str)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to way cache: %w", err)
	}
	return &WayStore{db: db}, nil
}

func (self *WayStore) EnsureSchema(ctx context.Context) error {
	if _, err := self.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create way cache schema: %w", err)
	}
	return nil
}

func (self *WayStore) Close() error {
	return self.db.Close()
}

// SaveWays replaces the cached way set wholesale, mirroring the wholesale
// graph rebuild it feeds.
func (self *WayStore) SaveWays(ctx context.Context, ways []graph.RawWay) error {
	tx, err := self.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cached_ways`); err != nil {
		return fmt.Errorf("failed to clear way cache: %w", err)
	}
	const insert = `INSERT INTO cached_ways (way_id, name, points) VALUES ($1, $2, $3)`
	for _, way := range ways {
		points, err := json.Marshal(way.Points)
		if err != nil {
			return fmt.Errorf("failed to encode way %v: %w", way.ID, err)
		}
		if _, err := tx.ExecContext(ctx, insert, way.ID, way.Name, points); err != nil {
			return fmt.Errorf("failed to insert way %v: %w", way.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit way cache: %w", err)
	}
	return nil
}

type _WayRow struct {
	WayID  int64  `db:"way_id"`
	Name   string `db:"name"`
	Points []byte `db:"points"`
}

// LoadWays returns the cached way set in way-id order. An empty cache yields
// an empty slice, not an error.
func (self *WayStore) LoadWays(ctx context.Context) ([]graph.RawWay, error) {
	var rows []_WayRow
	err := self.db.SelectContext(ctx, &rows, `SELECT way_id, name, points FROM cached_ways ORDER BY way_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query way cache: %w", err)
	}
	ways := make([]graph.RawWay, 0, len(rows))
	for _, row := range rows {
		var points []graph.RawPoint
		if err := json.Unmarshal(row.Points, &points); err != nil {
			return nil, fmt.Errorf("failed to decode way %v: %w", row.WayID, err)
		}
		ways = append(ways, graph.RawWay{
			ID:     row.WayID,
			Name:   row.Name,
			Points: points,
		})
	}
	return ways, nil
}
