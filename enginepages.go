// Package enginepages serves the engine review site: one page per engine in
// the content table, plus its JSON-LD and Markdown alternates, search,
// sitemap, feed and a small admin dashboard that audits the content.
package enginepages

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/views"
)

// ViewFuncs holds the page components the handlers render. DefaultViews
// returns the built-in set; callers may replace any of them.
type ViewFuncs struct {
	Home           func(site views.Site, brands []views.BrandSummary) templ.Component
	Brand          func(site views.Site, brand views.BrandSummary) templ.Component
	Engine         func(site views.Site, engine views.EngineView) templ.Component
	Search         func(site views.Site, query string, results []views.SearchResult, limited bool) templ.Component
	AdminLogin     func(site views.Site, showError bool, csrfToken string) templ.Component
	AdminDashboard func(site views.Site, data views.AdminView) templ.Component
	NotFound       func(site views.Site) templ.Component
	ServerError    func(site views.Site) templ.Component
}

// DefaultViews returns the components from package views.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:           views.Home,
		Brand:          views.Brand,
		Engine:         views.Engine,
		Search:         views.Search,
		AdminLogin:     views.AdminLogin,
		AdminDashboard: views.AdminDashboard,
		NotFound:       views.NotFound,
		ServerError:    views.ServerError,
	}
}

// App wires together the content table, store, caches, handlers and
// middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Table  content.Table
	Store  *Store
	Cache  *RenderCache
	Views  ViewFuncs

	loginLimiter  *LoginLimiter
	searchLimiter *SearchLimiter
	customRoutes  []func(*App)
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Table:  content.Default(),
		Views:  DefaultViews(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the store, indexes the table and registers middleware and
// routes. Start calls it; tests call it directly and drive a.Echo.
func (a *App) Init(ctx context.Context) error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("enginepages: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("enginepages: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("enginepages: init store: %w", err)
	}
	a.Store = store
	if err := a.Store.IndexTable(ctx, a.Table); err != nil {
		return fmt.Errorf("enginepages: index content: %w", err)
	}

	a.Cache = NewRenderCache(a.Config.CacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.searchLimiter = NewSearchLimiter(a.Config.SearchRate, a.Config.SearchBurst)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and serves until the server is shut down.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(ctx); err != nil {
		return err
	}
	a.Echo.Logger.Infof("serving %d engine pages on %s", a.Table.Len(), a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully and releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if cerr := a.Close(); err == nil {
		err = cerr
	}
	return err
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/healthz", a.handleHealth)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/images/:width/*", a.handleImage)

	e.GET("/", a.handleHome)
	e.GET("/search/", a.handleSearch)
	e.GET("/engines/:brand/", a.handleBrand)
	e.GET("/engines/:brand/:engine/", a.handleEngine)
	e.GET("/engines/:brand/:engine/schema.json", a.handleSchema)
	e.GET("/engines/:brand/:engine/index.md", a.handleMarkdown)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
}

// Close releases the store and limiter goroutines.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.searchLimiter != nil {
		a.searchLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("enginepages: required environment variable %s is not set", key)
	}
	return v
}
