// Package pocketindex keeps a queryable SQLite index of generated pockets.
package pocketindex

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/OCharnyshevich/undergroundbiome/pkg/pocket"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

// Index stores one row per pocket and one row per chunk part.
type Index struct {
	db *sql.DB
}

// Open creates or opens the index at path.
func Open(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("empty index path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Index{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS pockets (
			seed INTEGER NOT NULL,
			type TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			z INTEGER NOT NULL,
			radius_x INTEGER NOT NULL,
			radius_y INTEGER NOT NULL,
			radius_z INTEGER NOT NULL,
			PRIMARY KEY (seed, type, x, y, z)
		);`,
		`CREATE TABLE IF NOT EXISTS parts (
			seed INTEGER NOT NULL,
			type TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			z INTEGER NOT NULL,
			chunk_x INTEGER NOT NULL,
			chunk_z INTEGER NOT NULL,
			filled INTEGER NOT NULL,
			floor INTEGER NOT NULL,
			ceiling INTEGER NOT NULL,
			walls INTEGER NOT NULL,
			inside INTEGER NOT NULL,
			PRIMARY KEY (seed, type, x, y, z, chunk_x, chunk_z),
			FOREIGN KEY (seed, type, x, y, z) REFERENCES pockets(seed, type, x, y, z)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_parts_chunk ON parts(seed, chunk_x, chunk_z);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying database.
func (x *Index) Close() error {
	return x.db.Close()
}

// Record stores instances generated under seed in a single transaction.
// Re-recording the same part replaces it.
func (x *Index) Record(ctx context.Context, seed int64, instances []pocket.Instance) error {
	tx, err := x.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// upsert: REPLACE would delete a parent row that parts still reference
	pocketStmt, err := tx.PrepareContext(ctx, `INSERT INTO pockets
		(seed, type, x, y, z, radius_x, radius_y, radius_z) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (seed, type, x, y, z) DO UPDATE SET
			radius_x=excluded.radius_x, radius_y=excluded.radius_y, radius_z=excluded.radius_z`)
	if err != nil {
		return err
	}
	defer pocketStmt.Close()

	partStmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO parts
		(seed, type, x, y, z, chunk_x, chunk_z, filled, floor, ceiling, walls, inside)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer partStmt.Close()

	for _, in := range instances {
		s := in.Source
		if _, err := pocketStmt.ExecContext(ctx, seed, in.Type, s.X, s.Y, s.Z, in.RadiusX, in.RadiusY, in.RadiusZ); err != nil {
			return fmt.Errorf("record pocket %s at %s: %w", in.Type, s, err)
		}
		if _, err := partStmt.ExecContext(ctx, seed, in.Type, s.X, s.Y, s.Z, in.Chunk.X, in.Chunk.Z,
			in.Filled, in.Floor, in.Ceiling, in.Walls, in.Inside); err != nil {
			return fmt.Errorf("record part %s at %s: %w", in.Type, s, err)
		}
	}
	return tx.Commit()
}

// CountByType returns the number of distinct pockets per type for seed.
func (x *Index) CountByType(ctx context.Context, seed int64) (map[string]int, error) {
	rows, err := x.db.QueryContext(ctx, `SELECT type, COUNT(*) FROM pockets WHERE seed=? GROUP BY type`, seed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			typ string
			n   int
		)
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, err
		}
		out[typ] = n
	}
	return out, rows.Err()
}

// PartsInChunk returns the parts recorded for one chunk, ordered by type and source.
func (x *Index) PartsInChunk(ctx context.Context, seed int64, chunk gen.ChunkPos) ([]pocket.Instance, error) {
	rows, err := x.db.QueryContext(ctx, `SELECT p.type, p.x, p.y, p.z, k.radius_x, k.radius_y, k.radius_z,
			p.filled, p.floor, p.ceiling, p.walls, p.inside
		FROM parts p JOIN pockets k USING (seed, type, x, y, z)
		WHERE p.seed=? AND p.chunk_x=? AND p.chunk_z=?
		ORDER BY p.type, p.x, p.y, p.z`, seed, chunk.X, chunk.Z)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []pocket.Instance
	for rows.Next() {
		in := pocket.Instance{Chunk: chunk}
		if err := rows.Scan(&in.Type, &in.Source.X, &in.Source.Y, &in.Source.Z,
			&in.RadiusX, &in.RadiusY, &in.RadiusZ,
			&in.Filled, &in.Floor, &in.Ceiling, &in.Walls, &in.Inside); err != nil {
			return nil, err
		}
		in.SourceChunk = gen.ChunkPosOf(in.Source)
		out = append(out, in)
	}
	return out, rows.Err()
}
