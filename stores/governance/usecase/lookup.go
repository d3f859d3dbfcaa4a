package usecase

import (
	"strings"

	"github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/base/log"
	"github.com/labordao/chaincv/domain"
	"github.com/labordao/chaincv/domain/governance"
	"github.com/labordao/chaincv/domain/lookup"
)

type LookupUseCaseCfg struct {
	Resolver   domain.ENSResolver
	VoteRepo   governance.VoteRepo
	VotesLimit int
}

type impl struct {
	resolver   domain.ENSResolver
	voteRepo   governance.VoteRepo
	votesLimit int
}

func New(cfg *LookupUseCaseCfg) lookup.Usecase {
	limit := cfg.VotesLimit
	if limit <= 0 {
		limit = governance.DefaultVotesLimit
	}
	return &impl{
		resolver:   cfg.Resolver,
		voteRepo:   cfg.VoteRepo,
		votesLimit: limit,
	}
}

// Lookup resolves input when it is an ENS name, then lists the votes of the
// resulting address. An empty input leaves the lookup idle.
func (im *impl) Lookup(ctx ctx.Ctx, input string) lookup.View {
	input = strings.TrimSpace(input)
	m := lookup.NewMachine()
	if input == "" {
		return m.View()
	}

	gen := m.Begin(input)
	search := strings.ToLower(input)

	if domain.IsENSName(search) {
		address, err := im.resolver.Resolve(ctx, search)
		if err != nil {
			ctx.WithFields(log.Fields{
				"name": search,
				"err":  err,
			}).Error("resolver.Resolve failed")
			im.transit(ctx, m.Fail(gen, lookup.MsgENSFailed))
			return m.View()
		}
		search = address.ToLowerStr()
	}

	voter := domain.Address(search)
	im.transit(ctx, m.Resolved(gen, voter))

	votes, err := im.voteRepo.FindVotesByVoter(ctx, voter, im.votesLimit)
	if err != nil {
		ctx.WithFields(log.Fields{
			"voter": voter,
			"err":   err,
		}).Error("voteRepo.FindVotesByVoter failed")
		im.transit(ctx, m.Fail(gen, lookup.MsgGovernanceFailed))
		return m.View()
	}

	im.transit(ctx, m.Succeed(gen, votes))
	return m.View()
}

func (im *impl) transit(ctx ctx.Ctx, err error) {
	if err != nil {
		ctx.WithField("err", err).Warn("lookup transition rejected")
	}
}
