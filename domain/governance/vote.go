package governance

import (
	"github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/domain"
)

// DefaultVotesLimit is how many recent votes a lookup asks for
const DefaultVotesLimit = 20

type Proposal struct {
	Title string `json:"title"`
}

type Space struct {
	Id string `json:"id"`
}

// Vote is a read-only projection of a vote owned by the governance hub
type Vote struct {
	Id       string   `json:"id"`
	Proposal Proposal `json:"proposal"`
	Space    Space    `json:"space"`
}

// VoteRepo lists the most recent votes cast by a voter, in hub order
type VoteRepo interface {
	FindVotesByVoter(ctx ctx.Ctx, voter domain.Address, first int) ([]Vote, error)
}
