package lookup

import (
	"sync"

	"github.com/labordao/chaincv/domain"
	"github.com/labordao/chaincv/domain/governance"
)

// Machine holds the state of one lookup session.
//
//	idle ──Begin──▶ loading ──Succeed──▶ success | empty
//	                   │
//	                   └────Fail───────▶ error
//
// Begin is allowed from idle and from any terminal state and starts a new
// generation. Completions carry the generation they were started with; those
// of an older generation are dropped with ErrStaleGeneration.
type Machine struct {
	mu         sync.Mutex
	generation uint64
	view       View
}

func NewMachine() *Machine {
	return &Machine{view: View{State: StateIdle, Votes: []governance.Vote{}}}
}

// Begin resets the session to loading for input and returns the new generation.
func (m *Machine) Begin(input string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	// a submission while loading supersedes the running one
	m.generation++
	m.view = View{
		State: StateLoading,
		Input: input,
		Votes: []governance.Vote{},
	}
	return m.generation
}

// Resolved records the address the lookup will query with
func (m *Machine) Resolved(generation uint64, address domain.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(generation); err != nil {
		return err
	}
	m.view.Address = address
	return nil
}

// Succeed moves loading to success, or to empty when votes is empty
func (m *Machine) Succeed(generation uint64, votes []governance.Vote) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(generation); err != nil {
		return err
	}
	if len(votes) == 0 {
		m.view.State = StateEmpty
		m.view.Message = MsgNoVotes
		m.view.Votes = []governance.Vote{}
		return nil
	}
	m.view.State = StateSuccess
	m.view.Message = ""
	m.view.Votes = votes
	return nil
}

// Fail moves loading to error with a user facing message
func (m *Machine) Fail(generation uint64, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(generation); err != nil {
		return err
	}
	m.view.State = StateError
	m.view.Message = message
	m.view.Votes = []governance.Vote{}
	return nil
}

// View returns a copy of the current state
func (m *Machine) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := m.view
	v.Votes = append([]governance.Vote{}, m.view.Votes...)
	return v
}

func (m *Machine) check(generation uint64) error {
	if generation != m.generation {
		return ErrStaleGeneration
	}
	if m.view.State != StateLoading {
		return ErrInvalidTransition
	}
	return nil
}
