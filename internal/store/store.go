package store

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/domain/enum"
	"github.com/mfarouk/marketpro-api/internal/storage"
)

// Clock is the wall-clock source injected into the store so tests can pin
// timestamps.
type Clock func() time.Time

// Store owns every entity collection and is the only mutation API over them.
// Each successful mutation is mirrored to the persistence surface as a
// fire-and-forget write: a failed write is logged and otherwise unobserved,
// the in-memory state stays the source of truth.
type Store struct {
	mu  sync.Mutex
	kv  storage.KV
	now Clock

	companies     []entity.Company
	products      []entity.Product
	invoices      []entity.Invoice
	sales         []entity.Sale
	notifications []entity.Notification
	settings      entity.Settings
	priceLists    []entity.PriceList
	users         []entity.User
	sessionUser   *entity.User
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the store's wall-clock source
func WithClock(now Clock) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New builds a store on top of the given persistence surface and rebuilds
// the collections from the persisted blobs. A missing key simply yields an
// empty collection; an empty user list is seeded with the default admin.
func New(kv storage.KV, opts ...Option) (*Store, error) {
	s := &Store{
		kv:  kv,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	loaders := []struct {
		key string
		out interface{}
	}{
		{storage.KeyCompanies, &s.companies},
		{storage.KeyProducts, &s.products},
		{storage.KeyInvoices, &s.invoices},
		{storage.KeySales, &s.sales},
		{storage.KeyNotifications, &s.notifications},
		{storage.KeyPriceLists, &s.priceLists},
		{storage.KeyUsers, &s.users},
	}
	for _, l := range loaders {
		if _, err := s.kv.Get(l.key, l.out); err != nil {
			return fmt.Errorf("failed to load %s: %w", l.key, err)
		}
	}

	found, err := s.kv.Get(storage.KeySettings, &s.settings)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", storage.KeySettings, err)
	}
	if !found {
		s.settings = entity.DefaultSettings()
	}

	var session entity.User
	found, err = s.kv.Get(storage.KeySessionUser, &session)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", storage.KeySessionUser, err)
	}
	if found {
		s.sessionUser = &session
	}

	// First run: seed the default admin so the operator can log in.
	if len(s.users) == 0 {
		s.users = append(s.users, entity.User{
			ID:          uuid.New(),
			Username:    "admin",
			Password:    "admin",
			Role:        enum.UserRoleAdmin,
			Name:        "General Manager",
			StartDate:   s.now(),
			Permissions: []string{"all"},
		})
		s.persist(storage.KeyUsers, s.users)
	}

	return nil
}

// persist mirrors a collection to the persistence surface. Write failures
// are logged and swallowed; the mutation that triggered them still stands.
func (s *Store) persist(key string, v interface{}) {
	if err := s.kv.Set(key, v); err != nil {
		log.Printf("Warning: failed to persist %s: %v", key, err)
	}
}
