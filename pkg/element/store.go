package element

import "sync"

// LazyStore is a per-type cell for data that is somewhat costly to compute
// and should be initialized at most once for the process lifetime, however
// many goroutines race on first access.
//
// Element packages declare one package-level cell per type and hand its
// accessor to [Define]:
//
//	var quoteStore element.LazyStore
//	... Define[Quote](..., func() *element.LazyStore { return &quoteStore })
type LazyStore struct {
	once  sync.Once
	value any
}

// Get returns the stored value, running init on first access. Later calls
// ignore init and return the original value.
func (s *LazyStore) Get(init func() any) any {
	s.once.Do(func() {
		s.value = init()
	})
	return s.value
}
