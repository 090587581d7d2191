package availability

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// DefaultContext is the lookup context of callers that do not name one.
const DefaultContext = "default"

// Contexts keeps one Service per lookup context. A context that is not
// used for the TTL is dropped together with its cached route.
type Contexts struct {
	mu         sync.Mutex
	services   *cache.Cache
	newService func() *Service
}

func NewContexts(ttl time.Duration, newService func() *Service) *Contexts {
	return &Contexts{
		services:   cache.New(ttl, 2*ttl), //nolint:mnd // cleanup every other TTL
		newService: newService,
	}
}

// Get returns the Service of the context, creating it on first use, and
// extends the context's lifetime.
func (c *Contexts) Get(id string) *Service {
	if id == "" {
		id = DefaultContext
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	service, ok := c.lookup(id)
	if !ok {
		service = c.newService()
	}

	c.services.Set(id, service, cache.DefaultExpiration)

	return service
}

// Drop forgets the context and its cached route.
func (c *Contexts) Drop(id string) {
	if id == "" {
		id = DefaultContext
	}

	c.services.Delete(id)
}

func (c *Contexts) Len() int {
	return c.services.ItemCount()
}

func (c *Contexts) lookup(id string) (*Service, bool) {
	v, ok := c.services.Get(id)
	if !ok {
		return nil, false
	}

	service, ok := v.(*Service)

	return service, ok
}
