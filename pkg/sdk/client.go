package classdex

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fitlocal/classdex/internal/db"
	dbRedis "github.com/fitlocal/classdex/internal/db/redis"
	"github.com/fitlocal/classdex/internal/domain"
	"github.com/fitlocal/classdex/internal/domain/geo"
	domhist "github.com/fitlocal/classdex/internal/domain/history"
	"github.com/fitlocal/classdex/internal/domain/search/preset"
	"github.com/fitlocal/classdex/internal/domain/search/request"
	"github.com/fitlocal/classdex/internal/domain/search/result"
	"github.com/fitlocal/classdex/internal/domain/search/sortby"
	logpkg "github.com/fitlocal/classdex/internal/logger"
	catalogrepo "github.com/fitlocal/classdex/internal/repository/catalog"
	historyrepo "github.com/fitlocal/classdex/internal/repository/history"
	searchuc "github.com/fitlocal/classdex/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interface for test substitution.
type searchUseCase interface {
	Search(ctx context.Context, req *request.Request) ([]result.Item, int, error)
	Trending(ctx context.Context, limit int) ([]preset.CategoryTrend, error)
	Recent(ctx context.Context, limit int) ([]domhist.Entry, error)
}

// Client is the classdex SDK entry point.
type Client struct {
	store     db.Store
	closeFn   func()
	searchSvc searchUseCase
	logger    *zap.Logger
}

// New creates a classdex Client on the configured storage driver.
// The provided context is used for the initial readiness check.
// Default driver: seeded in-memory catalog.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:     "memory",
		keyPrefix:  catalogrepo.DefaultKeyPrefix,
		historyTTL: historyrepo.DefaultTTL,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	c := &Client{logger: cfg.logger}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	switch cfg.driver {
	case "redis":
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("classdex: create redis store: %w", err)
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("classdex: database not ready: %w", err)
		}
		c.store = store
		c.closeFn = store.Close

		repo := catalogrepo.New(store).WithKeyPrefix(cfg.keyPrefix)
		c.searchSvc = withClock(
			searchuc.New(repo).WithHistory(
				historyrepo.New(store, cfg.keyPrefix).WithTTL(cfg.historyTTL),
			),
			cfg.clock,
		)
	case "sqlite":
		repo, err := catalogrepo.OpenSQLite(cfg.sqlitePath)
		if err != nil {
			return nil, fmt.Errorf("classdex: open sqlite catalog: %w", err)
		}
		c.closeFn = func() { _ = repo.Close() }
		c.searchSvc = withClock(searchuc.New(repo), cfg.clock)
	case "memory":
		now := time.Now
		if cfg.clock != nil {
			now = cfg.clock
		}
		c.searchSvc = withClock(searchuc.New(catalogrepo.NewMemorySeeded(now())), cfg.clock)
	default:
		return nil, fmt.Errorf("classdex: unknown driver %q", cfg.driver)
	}

	return c, nil
}

func withClock(svc *searchuc.Service, clock func() time.Time) *searchuc.Service {
	if clock != nil {
		return svc.WithClock(clock)
	}
	return svc
}

// ctx returns a context carrying the client logger.
func (c *Client) ctx(parent context.Context) context.Context {
	return logpkg.ContextWithLogger(parent, c.logger)
}

// Close releases all resources.
func (c *Client) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}

// Ping checks storage connectivity. Always succeeds for drivers without
// a remote connection.
func (c *Client) Ping(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search runs the full pipeline: filter, text match, rank, paginate.
// It returns the requested page and the total number of matches.
func (c *Client) Search(ctx context.Context, q Query) ([]Item, int, error) {
	spec, err := specFromFilters(q.Filters)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	if q.Preset != "" {
		p, ok := preset.ByID(q.Preset)
		if !ok {
			return nil, 0, fmt.Errorf("%w: %q", domain.ErrPresetNotFound, q.Preset)
		}
		spec = p.Spec
	}

	var loc *geo.Coordinate
	if q.Location != nil {
		coord := geo.NewCoordinate(q.Location.Lat, q.Location.Lng)
		loc = &coord
	}

	req, err := request.New(
		q.Text,
		request.Scope(q.Scope),
		loc,
		q.RadiusKm,
		q.Offset, q.Limit,
		spec,
		sortby.Strategy(q.SortBy),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	items, total, err := c.searchSvc.Search(c.ctx(ctx), &req)
	if err != nil {
		return nil, 0, fmt.Errorf("search: %w", err)
	}

	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = itemFromResult(it)
	}
	return out, total, nil
}

// Presets returns the curated filter combinations, in display order.
func (c *Client) Presets() []Preset {
	all := preset.All()
	out := make([]Preset, len(all))
	for i, p := range all {
		out[i] = presetFromDomain(p)
	}
	return out
}

// Trending returns up to limit categories ranked by upcoming class count.
func (c *Client) Trending(ctx context.Context, limit int) ([]Trend, error) {
	trends, err := c.searchSvc.Trending(c.ctx(ctx), limit)
	if err != nil {
		return nil, fmt.Errorf("trending: %w", err)
	}
	out := make([]Trend, len(trends))
	for i, t := range trends {
		out[i] = Trend{Category: string(t.Category), UpcomingCount: t.UpcomingCount}
	}
	return out, nil
}

// Recent returns the most recent recorded searches, newest first.
// Returns ErrHistoryDisabled for drivers without history support.
func (c *Client) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	entries, err := c.searchSvc.Recent(c.ctx(ctx), limit)
	if err != nil {
		return nil, fmt.Errorf("recent: %w", err)
	}
	out := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		out[i] = historyFromDomain(e)
	}
	return out, nil
}
