// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log/slog"

	badger "github.com/dgraph-io/badger/v4"

	fsout "shopfront/internal/adapters/out/firestore"
	httpout "shopfront/internal/adapters/out/http"
	"shopfront/internal/adapters/out/localstore"
	"shopfront/internal/application/query"
	"shopfront/internal/application/usecase"
	cartdom "shopfront/internal/domain/cart"
	badgerinfra "shopfront/internal/infra/badger"
	"shopfront/internal/infra/config"
	firestoreinfra "shopfront/internal/infra/firestore"
	"shopfront/internal/infra/logging"
	"shopfront/internal/platform/notify"
)

// Container is the bundle of wired dependencies handed to the commands.
// main stays thin; everything is assembled here.
type Container struct {
	Config *config.Config
	Log    *slog.Logger

	ClientID string
	Notices  *notify.Center

	State *localstore.StateStore
	Cart  cartdom.Store

	CartUC     *usecase.CartUsecase
	CheckoutUC *usecase.CheckoutUsecase
	CartView   *query.CartViewQuery
	Badge      *query.BadgeQuery
	Catalog    *httpout.CatalogClient

	db      *badger.DB
	cleanup []func()
}

// Close releases the underlying resources. Safe to call once, after the
// command finished.
func (c *Container) Close() {
	for i := len(c.cleanup) - 1; i >= 0; i-- {
		c.cleanup[i]()
	}
	if c.db != nil {
		_ = c.db.Close()
	}
}

// Options carry the pieces the presentation layer provides: where notices
// and navigations surface, and where the badge count lands.
type Options struct {
	Notifier usecase.Notifier
	Nav      usecase.Navigator
	Badge    usecase.BadgeSink
}

// Build assembles the whole runtime from configuration: local state DB,
// cart slot (badger or firestore), backend clients, usecases and queries.
func Build(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("di: config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logging.New(cfg.LogLevel)

	c := &Container{
		Config:  cfg,
		Log:     log,
		Notices: notify.NewCenter(),
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = c.Notices
	}

	// Local state DB holds the durable slots (cart, location, client id).
	db, err := badgerinfra.Open(badgerinfra.DefaultConfig(cfg.StateDir))
	if err != nil {
		return nil, fmt.Errorf("di: open state db: %w", err)
	}
	c.db = db

	c.State = localstore.NewStateStore(db)
	clientID, err := c.State.EnsureClientID(ctx)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("di: client identity: %w", err)
	}
	c.ClientID = clientID

	// Cart slot backend.
	switch cfg.StoreBackend {
	case config.BackendFirestore:
		fsClient, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("di: firestore: %w", err)
		}
		c.cleanup = append(c.cleanup, func() { _ = fsClient.Close() })
		c.Cart = fsout.NewCartStoreFS(fsClient.Client, clientID, logging.For(log, "cart_store_fs"))
	default:
		c.Cart = localstore.NewCartStore(db, logging.For(log, "cart_store"))
	}

	// Backend clients.
	c.Catalog = httpout.NewCatalogClient(cfg.BaseURL, cfg.RequestTimeout)
	orders := httpout.NewOrderClient(cfg.BaseURL, cfg.RequestTimeout)

	// Usecases and queries.
	c.CartUC = usecase.NewCartUsecase(c.Cart, notifier, opts.Badge, logging.For(log, "cart_usecase"))
	c.CheckoutUC = usecase.NewCheckoutUsecase(
		cfg.CheckoutMode, c.Cart, orders, notifier, opts.Nav, opts.Badge,
		clientID, logging.For(log, "checkout_usecase"),
	)
	c.CartView = query.NewCartViewQuery(c.Cart, c.Catalog, logging.For(log, "cart_view"))
	c.Badge = query.NewBadgeQuery(c.Cart, queryBadgeSink(opts.Badge), logging.For(log, "badge"))

	return c, nil
}

// queryBadgeSink adapts the usecase-facing sink to the query package's
// identical port. Both declare SetCount(int) on their own side.
func queryBadgeSink(s usecase.BadgeSink) query.BadgeSink {
	if s == nil {
		return nil
	}
	return s
}
