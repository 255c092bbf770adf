package handler

import (
	"bytes"
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/almhaga/brf-intranet/internal/model"
	"github.com/almhaga/brf-intranet/internal/repository"
)

// PageHandler serves the intranet content pages.  Stored content is
// markdown; reads return both the source and the rendered, sanitized
// HTML so clients never interpret markdown themselves.
type PageHandler struct {
	Pages    *repository.PageRepo
	md       goldmark.Markdown
	sanitize *bluemonday.Policy
}

func NewPageHandler(p *repository.PageRepo) *PageHandler {
	return &PageHandler{
		Pages: p,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		sanitize: bluemonday.UGCPolicy(),
	}
}

// render converts markdown to sanitized HTML.
func (h *PageHandler) render(content string) (string, error) {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return h.sanitize.Sanitize(buf.String()), nil
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type pageSummary struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updated_at"`
}

type pageResp struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	HTML      string `json:"html"`
	UpdatedAt string `json:"updated_at"`
}

// List returns slugs and titles for the sidebar, title order.
func (h *PageHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pages, err := h.Pages.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list pages failed"})
	}
	out := make([]pageSummary, 0, len(pages))
	for _, p := range pages {
		out = append(out, pageSummary{
			Slug:      p.Slug,
			Title:     p.Title,
			UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"pages": out})
}

// Get returns one page with its markdown source and rendered HTML.
func (h *PageHandler) Get(c echo.Context) error {
	slug := c.Param("slug")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Pages.Get(ctx, slug)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "page not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load page failed"})
	}
	html, err := h.render(p.Content)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "render page failed"})
	}
	return c.JSON(http.StatusOK, pageResp{
		Slug:      p.Slug,
		Title:     p.Title,
		Content:   p.Content,
		HTML:      html,
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

type createPageReq struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create adds a new page.  Slugs are lowercase kebab-case and unique.
func (h *PageHandler) Create(c echo.Context) error {
	uid, _ := c.Get("user_id").(uint64)

	var req createPageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Slug = strings.TrimSpace(req.Slug)
	req.Title = strings.TrimSpace(req.Title)
	if !slugPattern.MatchString(req.Slug) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slug must be lowercase kebab-case"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p := &model.Page{
		Slug:      req.Slug,
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: uid,
	}
	if err := h.Pages.Create(ctx, p); err != nil {
		if err == repository.ErrSlugExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create page failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"slug": p.Slug, "title": p.Title})
}

type updatePageReq struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Update changes a page's title, content or both.
func (h *PageHandler) Update(c echo.Context) error {
	slug := c.Param("slug")

	var req updatePageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title == nil && req.Content == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nothing to update"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "title must not be empty"})
		}
		if err := h.Pages.Rename(ctx, slug, title); err != nil {
			return pageUpdateError(c, err)
		}
	}
	if req.Content != nil {
		if err := h.Pages.UpdateContent(ctx, slug, *req.Content); err != nil {
			return pageUpdateError(c, err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a page.
func (h *PageHandler) Delete(c echo.Context) error {
	slug := c.Param("slug")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Pages.Delete(ctx, slug); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "page not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete page failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

func pageUpdateError(c echo.Context, err error) error {
	if err == repository.ErrNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "page not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update page failed"})
}
