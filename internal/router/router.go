// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/almhaga/brf-intranet/internal/handler"
	"github.com/almhaga/brf-intranet/internal/middleware"
	"github.com/almhaga/brf-intranet/internal/model"
)

// Handlers bundles every handler the route table needs.
type Handlers struct {
	Auth       *handler.AuthHandler
	Apartments *handler.ApartmentHandler
	Bookings   *handler.BookingHandler
	Seasons    *handler.SeasonHandler
	Pages      *handler.PageHandler
	AdminUsers *handler.AdminUserHandler
}

// RegisterRoutes registers the whole route table.  cacheMW is applied
// to public page reads only; pass a pass-through middleware to disable
// caching.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Unauthenticated session management.
	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/refresh-access", h.Auth.RefreshAccess)
	auth.POST("/logout", h.Auth.Logout)

	// Content pages are readable without a session; responses are
	// cacheable because they are identical for every visitor.
	e.GET("/v1/pages", h.Pages.List, cacheMW)
	e.GET("/v1/pages/:slug", h.Pages.Get, cacheMW)

	// Resident endpoints: any authenticated role.
	member := e.Group("/v1")
	member.Use(middleware.JWTAuth(jwtSecret))
	member.Use(middleware.RequireRole(model.RoleMember, model.RoleAdmin))
	member.GET("/me", h.Auth.Me)
	member.GET("/apartments", h.Apartments.List)
	member.GET("/apartments/:id", h.Apartments.Get)
	member.GET("/apartments/:id/bookings", h.Bookings.ListForApartment)
	member.GET("/apartments/:id/calendar", h.Bookings.Calendar)
	member.GET("/apartments/:id/quote", h.Bookings.Quote)
	member.POST("/bookings", h.Bookings.Create)
	member.DELETE("/bookings/:id", h.Bookings.Delete)
	member.GET("/seasons", h.Seasons.List)

	// Administration.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/seasons", h.Seasons.CreateSetting)
	admin.PUT("/seasons/:year", h.Seasons.UpsertSetting)
	admin.PUT("/seasons/:year/weeks", h.Seasons.ReplaceWeeks)
	admin.POST("/pages", h.Pages.Create)
	admin.PUT("/pages/:slug", h.Pages.Update)
	admin.DELETE("/pages/:slug", h.Pages.Delete)
	admin.GET("/admin/users", h.AdminUsers.List)
	admin.POST("/admin/users", h.AdminUsers.Create)
	admin.PATCH("/admin/users/:id", h.AdminUsers.Update)
	admin.DELETE("/admin/users/:id", h.AdminUsers.Delete)
}
