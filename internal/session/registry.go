package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Registry maps session IDs to sessions.
type Registry struct {
	sessions map[string]*Session
	defaults []game.Option
	log      *logrus.Entry
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry. defaults are applied to every game
// it creates, before the options given to Create.
func NewRegistry(log *logrus.Entry, defaults ...game.Option) *Registry {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Registry{
		sessions: make(map[string]*Session),
		defaults: defaults,
		log:      log,
	}
}

// Create starts a new game and registers it under a fresh UUID.
func (r *Registry) Create(opts ...game.Option) (*Session, error) {
	id := uuid.New().String()
	log := r.log.WithField("session", id)

	all := make([]game.Option, 0, len(r.defaults)+len(opts)+1)
	all = append(all, r.defaults...)
	all = append(all, opts...)
	all = append(all, game.WithLogger(log))

	g, err := game.New(all...)
	if err != nil {
		return nil, errors.Wrap(err, "create session")
	}

	s := &Session{ID: id, Created: time.Now(), game: g}

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()

	log.Debug("session created")
	return s, nil
}

// Get returns the session with the given ID.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, errors.ErrSessionNotFound)
	}
	return s, nil
}

// Remove drops the session with the given ID.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%s: %w", id, errors.ErrSessionNotFound)
	}
	delete(r.sessions, id)
	r.log.WithField("session", id).Debug("session removed")
	return nil
}

// List returns the IDs of all sessions in lexical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	ids := maps.Keys(r.sessions)
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Len returns the number of sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
