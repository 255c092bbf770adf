package model

import "time"

// Page is a content page of the intranet as stored in the `pages`
// table.  Content is markdown source; rendering to HTML happens at
// read time in the handler layer.
//
// Fields:
//  ID        – primary key identifier.
//  Slug      – URL identifier, unique.
//  Title     – display title shown in the sidebar.
//  Content   – markdown source of the page body.
//  CreatedBy – user who created the page.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Page struct {
	ID        uint64    // pages.id
	Slug      string    // pages.slug
	Title     string    // pages.title
	Content   string    // pages.content
	CreatedBy uint64    // pages.created_by
	CreatedAt time.Time // pages.created_at
	UpdatedAt time.Time // pages.updated_at
}
