package config

import (
	"strconv"
	"sync"
	"sync/atomic"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DescriptorSource = (*Source)(nil)

// Source implements ports.DescriptorSource over a route-table file.
// Snapshots are immutable; Load and Reload publish a new collection with a
// strictly increasing version through a single atomic pointer swap, so
// readers never observe a partially built snapshot.
type Source struct {
	log ports.Logger

	// mu serializes publishers. Readers never take it.
	mu      sync.Mutex
	path    string
	current atomic.Pointer[domain.ActionDescriptorCollection]
}

// NewSource creates a Source holding an empty version-zero snapshot.
func NewSource(log ports.Logger) *Source {
	s := &Source{log: log}
	s.current.Store(&domain.ActionDescriptorCollection{Version: 0})
	return s
}

// Current returns the live snapshot.
func (s *Source) Current() *domain.ActionDescriptorCollection {
	return s.current.Load()
}

// Load reads the route table at path and publishes it. The path is
// remembered for Reload.
func (s *Source) Load(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.path = path
	return s.publish(path)
}

// Reload re-reads the last loaded route table and publishes a new
// snapshot, bumping the version even when the content is unchanged.
func (s *Source) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return zerr.New("no route table loaded")
	}
	return s.publish(s.path)
}

// publish loads and swaps in a new snapshot. Callers hold mu.
func (s *Source) publish(path string) error {
	items, err := Load(path)
	if err != nil {
		return err
	}

	next := &domain.ActionDescriptorCollection{
		Items:   items,
		Version: s.current.Load().Version + 1,
	}
	s.current.Store(next)

	if s.log != nil {
		s.log.Info("route table published: " + strconv.Itoa(len(items)) + " actions at version " + strconv.Itoa(next.Version))
	}
	return nil
}
