package usecase

import (
	"github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/base/log"
	"github.com/labordao/chaincv/domain"
	"github.com/labordao/chaincv/service/alchemy"
)

type impl struct {
	alchemy alchemy.Client
}

// New returns the resolver behind the resolver proxy endpoint
func New(client alchemy.Client) domain.ENSResolver {
	return &impl{alchemy: client}
}

// Resolve answers domain.ErrENSNameNotFound when the resolver reports an
// error or no address; any other failure is returned as is.
func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	resp, err := im.alchemy.ResolveAddress(ctx, name)
	if err != nil {
		ctx.WithFields(log.Fields{
			"name": name,
			"err":  err,
		}).Error("alchemy.ResolveAddress failed")
		return "", err
	}

	if resp.HasError() || resp.Address == "" {
		ctx.WithFields(log.Fields{
			"name":  name,
			"error": string(resp.Error),
		}).Info("ens name not resolved")
		return "", domain.ErrENSNameNotFound
	}

	return domain.Address(resp.Address), nil
}
