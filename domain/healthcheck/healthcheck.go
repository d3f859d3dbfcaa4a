package healthcheck

import (
	"github.com/labordao/chaincv/base/ctx"
)

const (
	ResolverConfigured   = "configured"
	ResolverUnconfigured = "unconfigured"
)

type Status struct {
	Healthy     string `json:"healthy"`
	ENSResolver string `json:"ensResolver"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) Status
}
