package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"
)

// Postgres is the durable document store.
type Postgres struct {
	db  *sql.DB
	log *zap.Logger
}

func NewPostgres(dsn string, log *zap.Logger) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	p := &Postgres{db: db, log: log}
	if err := p.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return p, nil
}

func (p *Postgres) migrate() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS cv_documents (
			id         TEXT PRIMARY KEY,
			doc_text   TEXT NOT NULL,
			metadata   JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

func (p *Postgres) Add(ctx context.Context, text string, metadata map[string]string) (string, error) {
	if text == "" {
		return "", errors.New("document text is empty")
	}

	meta, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}

	id := uuid.NewString()
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO cv_documents (id, doc_text, metadata) VALUES ($1, $2, $3)`,
		id, text, meta)
	if err != nil {
		return "", fmt.Errorf("store document: %w", err)
	}
	return id, nil
}

func (p *Postgres) GetByID(ctx context.Context, id string) (*Document, error) {
	row := p.db.QueryRowContext(ctx,
		`SELECT id, doc_text, metadata FROM cv_documents WHERE id = $1`, id)

	doc, err := scanDocument(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		p.log.Warn("failed to load document", zap.String("id", id), zap.Error(err))
		return nil, ErrNotFound
	}
	return doc, nil
}

func (p *Postgres) GetAll(ctx context.Context) ([]Document, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, doc_text, metadata FROM cv_documents ORDER BY created_at, id`)
	if err != nil {
		p.log.Warn("failed to list documents", zap.Error(err))
		return nil, nil
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			p.log.Warn("failed to scan document", zap.Error(err))
			continue
		}
		out = append(out, *doc)
	}
	if err := rows.Err(); err != nil {
		p.log.Warn("failed to list documents", zap.Error(err))
	}
	return out, nil
}

func (p *Postgres) Count(ctx context.Context) (int, error) {
	var n int
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cv_documents`).Scan(&n); err != nil {
		p.log.Warn("failed to count documents", zap.Error(err))
		return 0, nil
	}
	return n, nil
}

func (p *Postgres) Delete(ctx context.Context, id string) bool {
	res, err := p.db.ExecContext(ctx, `DELETE FROM cv_documents WHERE id = $1`, id)
	if err != nil {
		p.log.Warn("failed to delete document", zap.String("id", id), zap.Error(err))
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

func (p *Postgres) Clear(ctx context.Context) bool {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM cv_documents`); err != nil {
		p.log.Warn("failed to clear documents", zap.Error(err))
		return false
	}
	return true
}

func (p *Postgres) Close() error { return p.db.Close() }

func scanDocument(scan func(...any) error) (*Document, error) {
	var doc Document
	var meta []byte
	if err := scan(&doc.ID, &doc.Text, &meta); err != nil {
		return nil, err
	}
	doc.Metadata = map[string]string{}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &doc.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return &doc, nil
}
