package engine

import (
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/vitandes/innershield/internal/storage"
)

const dateLayout = "2006-01-02"

type Service struct {
	db    *sql.DB
	kv    *storage.KV
	clock Clock
	log   zerolog.Logger
}

type Option func(*Service)

// WithClock replaces the system clock (used by tests).
func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:    db,
		kv:    storage.NewKV(db),
		clock: systemClock{},
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) KV() *storage.KV { return s.kv }

func (s *Service) state(st storage.Store) *storage.State {
	return storage.NewState(st, s.log)
}

// today is the current ISO date (date-only, user-local).
func (s *Service) today() string {
	return s.clock.Now().Format(dateLayout)
}

// weekday is the three-letter label used by the mood week (Sun..Sat).
func (s *Service) weekday() string {
	return s.clock.Now().Weekday().String()[:3]
}
