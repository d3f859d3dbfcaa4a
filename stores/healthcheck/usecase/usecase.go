package usecase

import (
	"github.com/labordao/chaincv/base/config"
	"github.com/labordao/chaincv/base/ctx"
	hcdomain "github.com/labordao/chaincv/domain/healthcheck"
)

type impl struct {
	alchemy config.AlchemyCfg
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(alchemy config.AlchemyCfg) hcdomain.HealthCheckUsecase {
	return &impl{
		alchemy: alchemy,
	}
}

// Check never fails: a missing resolver credential only degrades ENS lookups
func (im *impl) Check(context ctx.Ctx) hcdomain.Status {
	status := hcdomain.Status{
		Healthy:     "ok",
		ENSResolver: hcdomain.ResolverConfigured,
	}
	if !im.alchemy.Configured() {
		context.Warn("ens resolver credential is not configured")
		status.ENSResolver = hcdomain.ResolverUnconfigured
	}
	return status
}
