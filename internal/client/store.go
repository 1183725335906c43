package client

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

// Entry is a record as the client knows it. TempID is set while the
// server has not yet confirmed the record.
type Entry[T any] struct {
	TempID string
	Record T
}

// Pending reports whether the entry awaits server confirmation.
func (e Entry[T]) Pending() bool {
	return e.TempID != ""
}

// State is everything the client keeps about the session.
type State struct {
	Token       string
	Profile     *models.UserDB
	Investments []Entry[models.InvestmentDB]
	Withdrawals []Entry[models.WithdrawalDB]

	// Admin queues hold only requests that still await a decision.
	PendingInvestments []models.InvestmentView
	PendingWithdrawals []models.WithdrawalView

	Rates     []models.Rate
	LastError string
}

// Action describes one state change. The set is closed.
type Action interface {
	action()
}

type (
	SessionStarted struct {
		Token   string
		Profile models.UserDB
	}
	SessionEnded      struct{}
	InvestmentsLoaded struct{ Items []models.InvestmentDB }
	WithdrawalsLoaded struct{ Items []models.WithdrawalDB }
	AdminQueuesLoaded struct {
		Investments []models.InvestmentView
		Withdrawals []models.WithdrawalView
	}
	RatesLoaded         struct{ Rates []models.Rate }
	InvestmentSubmitted struct {
		TempID string
		Draft  models.InvestmentDB
	}
	InvestmentConfirmed struct {
		TempID string
		Record models.InvestmentDB
	}
	InvestmentFailed struct {
		TempID string
		Err    string
	}
	WithdrawalSubmitted struct {
		TempID string
		Draft  models.WithdrawalDB
	}
	WithdrawalConfirmed struct {
		TempID string
		Record models.WithdrawalDB
	}
	WithdrawalFailed struct {
		TempID string
		Err    string
	}
	InvestmentDecided    struct{ Record models.InvestmentDB }
	WithdrawalDecided    struct{ Record models.WithdrawalDB }
	RequestWalletChanged struct {
		ID      uuid.UUID
		Address string
	}
	BalanceChanged struct{ Balance float64 }
)

func (SessionStarted) action()       {}
func (SessionEnded) action()         {}
func (InvestmentsLoaded) action()    {}
func (WithdrawalsLoaded) action()    {}
func (AdminQueuesLoaded) action()    {}
func (RatesLoaded) action()          {}
func (InvestmentSubmitted) action()  {}
func (InvestmentConfirmed) action()  {}
func (InvestmentFailed) action()     {}
func (WithdrawalSubmitted) action()  {}
func (WithdrawalConfirmed) action()  {}
func (WithdrawalFailed) action()     {}
func (InvestmentDecided) action()    {}
func (WithdrawalDecided) action()    {}
func (RequestWalletChanged) action() {}
func (BalanceChanged) action()       {}

// Reduce returns the state after applying a. It never mutates s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SessionStarted:
		profile := a.Profile
		return State{Token: a.Token, Profile: &profile, Rates: s.Rates}

	case SessionEnded:
		return State{Rates: s.Rates}

	case InvestmentsLoaded:
		s.Investments = confirmed(a.Items)
	case WithdrawalsLoaded:
		s.Withdrawals = confirmed(a.Items)

	case AdminQueuesLoaded:
		s.PendingInvestments = filter(a.Investments, func(v models.InvestmentView) bool {
			return v.Status == models.InvestmentPending
		})
		s.PendingWithdrawals = filter(a.Withdrawals, func(v models.WithdrawalView) bool {
			return v.Status == models.WithdrawalPending
		})

	case RatesLoaded:
		s.Rates = append([]models.Rate(nil), a.Rates...)

	case InvestmentSubmitted:
		s.Investments = prepend(s.Investments, Entry[models.InvestmentDB]{TempID: a.TempID, Record: a.Draft})
	case InvestmentConfirmed:
		s.Investments = replaceTemp(s.Investments, a.TempID, a.Record)
	case InvestmentFailed:
		s.Investments = dropTemp(s.Investments, a.TempID)
		s.LastError = a.Err

	case WithdrawalSubmitted:
		s.Withdrawals = prepend(s.Withdrawals, Entry[models.WithdrawalDB]{TempID: a.TempID, Record: a.Draft})
	case WithdrawalConfirmed:
		s.Withdrawals = replaceTemp(s.Withdrawals, a.TempID, a.Record)
	case WithdrawalFailed:
		s.Withdrawals = dropTemp(s.Withdrawals, a.TempID)
		s.LastError = a.Err

	case InvestmentDecided:
		s.PendingInvestments = filter(s.PendingInvestments, func(v models.InvestmentView) bool {
			return v.ID != a.Record.ID
		})
		s.Investments = mapEntries(s.Investments, func(e Entry[models.InvestmentDB]) Entry[models.InvestmentDB] {
			if !e.Pending() && e.Record.ID == a.Record.ID {
				e.Record = a.Record
			}
			return e
		})

	case WithdrawalDecided:
		s.PendingWithdrawals = filter(s.PendingWithdrawals, func(v models.WithdrawalView) bool {
			return v.ID != a.Record.ID
		})
		s.Withdrawals = mapEntries(s.Withdrawals, func(e Entry[models.WithdrawalDB]) Entry[models.WithdrawalDB] {
			if !e.Pending() && e.Record.ID == a.Record.ID {
				e.Record = a.Record
			}
			return e
		})

	case RequestWalletChanged:
		queue := make([]models.InvestmentView, len(s.PendingInvestments))
		for i, v := range s.PendingInvestments {
			if v.ID == a.ID {
				v.WalletAddress = a.Address
			}
			queue[i] = v
		}
		s.PendingInvestments = queue
		s.Investments = mapEntries(s.Investments, func(e Entry[models.InvestmentDB]) Entry[models.InvestmentDB] {
			if !e.Pending() && e.Record.ID == a.ID {
				e.Record.WalletAddress = a.Address
			}
			return e
		})

	case BalanceChanged:
		if s.Profile != nil {
			profile := *s.Profile
			profile.Balance = a.Balance
			s.Profile = &profile
		}
	}
	return s
}

func confirmed[T any](items []T) []Entry[T] {
	out := make([]Entry[T], len(items))
	for i, item := range items {
		out[i] = Entry[T]{Record: item}
	}
	return out
}

func prepend[T any](entries []Entry[T], e Entry[T]) []Entry[T] {
	out := make([]Entry[T], 0, len(entries)+1)
	return append(append(out, e), entries...)
}

func replaceTemp[T any](entries []Entry[T], tempID string, record T) []Entry[T] {
	return mapEntries(entries, func(e Entry[T]) Entry[T] {
		if e.TempID == tempID {
			return Entry[T]{Record: record}
		}
		return e
	})
}

func dropTemp[T any](entries []Entry[T], tempID string) []Entry[T] {
	return filter(entries, func(e Entry[T]) bool { return e.TempID != tempID })
}

func mapEntries[T any](entries []Entry[T], fn func(Entry[T]) Entry[T]) []Entry[T] {
	out := make([]Entry[T], len(entries))
	for i, e := range entries {
		out[i] = fn(e)
	}
	return out
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Store holds State and changes it only through Dispatch.
type Store struct {
	mu     sync.RWMutex
	state  State
	subs   map[int]func(State)
	nextID int
}

// NewStore creates a store with the given initial state.
func NewStore(initial State) *Store {
	return &Store{state: initial, subs: make(map[int]func(State))}
}

// Dispatch applies a and notifies subscribers with the new state.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	state := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called after every dispatch and returns a function that removes it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
