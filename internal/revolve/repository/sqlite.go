package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("render not found")

//go:embed migrations/001_init_renders.sql
var initMigration string

// ============================================================
// Models
// ============================================================

// Render сохранённый документ.
type Render struct {
	ID        string  `json:"id"`
	Object    string  `json:"object"`
	Angle     float64 `json:"angle"`
	Namespace string  `json:"namespace"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	SVG       string  `json:"-"`
	CreatedAt string  `json:"created_at"`
}

// ============================================================
// SQLite Repository
// ============================================================

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init применяет миграции.
func (r *Repository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, initMigration); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

// Save сохраняет рендер и возвращает его ID.
func (r *Repository) Save(ctx context.Context, rd Render) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO renders (id, object, angle, namespace, width, height, svg)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `, id, rd.Object, rd.Angle, rd.Namespace, rd.Width, rd.Height, rd.SVG)
	if err != nil {
		return "", fmt.Errorf("insert render: %w", err)
	}
	return id, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*Render, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, object, angle, namespace, width, height, svg, created_at
        FROM renders
        WHERE id = ?
    `, id)

	var rd Render
	if err := row.Scan(&rd.ID, &rd.Object, &rd.Angle, &rd.Namespace, &rd.Width, &rd.Height, &rd.SVG, &rd.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rd, nil
}

// List возвращает последние рендеры без тела документа.
func (r *Repository) List(ctx context.Context, limit int) ([]Render, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, object, angle, namespace, width, height, created_at
        FROM renders
        ORDER BY created_at DESC, rowid DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Render{}
	for rows.Next() {
		var rd Render
		if err := rows.Scan(&rd.ID, &rd.Object, &rd.Angle, &rd.Namespace, &rd.Width, &rd.Height, &rd.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
