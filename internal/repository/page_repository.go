package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/almhaga/brf-intranet/internal/model"
)

// PageRepo manages the intranet's content pages.  Pages are addressed
// by slug; the stored content is markdown source.
type PageRepo struct {
	db *sql.DB
}

// NewPageRepo returns a PageRepo bound to the given database.
func NewPageRepo(db *sql.DB) *PageRepo { return &PageRepo{db: db} }

// ErrSlugExists is returned when creating a page whose slug is taken.
var ErrSlugExists = errors.New("page slug already exists")

const pageColumns = `id, slug, title, content, created_by, created_at, updated_at`

// List returns all pages ordered by title, with content omitted; the
// sidebar only needs slugs and titles.
func (r *PageRepo) List(ctx context.Context) ([]model.Page, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, slug, title, created_by, created_at, updated_at FROM pages ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Page, 0)
	for rows.Next() {
		var p model.Page
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns a page with its content by slug, or ErrNotFound.
func (r *PageRepo) Get(ctx context.Context, slug string) (*model.Page, error) {
	var p model.Page
	err := r.db.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE slug = ?`, slug).
		Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new page and populates its generated ID.
func (r *PageRepo) Create(ctx context.Context, p *model.Page) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO pages (slug, title, content, created_by) VALUES (?, ?, ?, ?)`,
		p.Slug, p.Title, p.Content, p.CreatedBy)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrSlugExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// UpdateContent replaces a page's markdown source.
func (r *PageRepo) UpdateContent(ctx context.Context, slug, content string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pages SET content = ?, updated_at = NOW() WHERE slug = ?`, content, slug)
	if err != nil {
		return err
	}
	return r.requireRow(ctx, res, slug)
}

// Rename changes a page's display title.
func (r *PageRepo) Rename(ctx context.Context, slug, title string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pages SET title = ?, updated_at = NOW() WHERE slug = ?`, title, slug)
	if err != nil {
		return err
	}
	return r.requireRow(ctx, res, slug)
}

// Delete removes a page, returning ErrNotFound when no row matched.
func (r *PageRepo) Delete(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE slug = ?`, slug)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// requireRow maps a zero-row UPDATE to ErrNotFound unless the page
// exists with identical values already.
func (r *PageRepo) requireRow(ctx context.Context, res sql.Result, slug string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.Get(ctx, slug); err != nil {
			return err
		}
	}
	return nil
}
