package lookup

import (
	"errors"

	"github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/domain"
	"github.com/labordao/chaincv/domain/governance"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateEmpty   State = "empty"
	StateError   State = "error"
)

// IsTerminal reports whether a lookup in this state has finished
func (s State) IsTerminal() bool {
	return s == StateSuccess || s == StateEmpty || s == StateError
}

const (
	MsgENSFailed        = "Failed to resolve ENS name."
	MsgGovernanceFailed = "Failed to fetch governance data."
	MsgNoVotes          = "No recent governance votes found for this address."
)

var (
	ErrInvalidTransition = errors.New("invalid lookup state transition")
	ErrStaleGeneration   = errors.New("stale lookup generation")
)

// View is what one lookup renders
type View struct {
	State   State             `json:"state"`
	Input   string            `json:"input"`
	Address domain.Address    `json:"address,omitempty"`
	Message string            `json:"message,omitempty"`
	Votes   []governance.Vote `json:"votes"`
}

// Usecase runs a full lookup for a raw user input
type Usecase interface {
	Lookup(ctx ctx.Ctx, input string) View
}
