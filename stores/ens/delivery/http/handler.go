package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/labordao/chaincv/base/delivery"
	"github.com/labordao/chaincv/base/log"
	"github.com/labordao/chaincv/domain"
)

type handler struct {
	ens domain.ENSResolver
}

func New(e *echo.Echo, ens domain.ENSResolver) {
	h := &handler{
		ens,
	}

	g := e.Group("/api")

	g.POST("/resolve-ens", h.Resolve)
}

// Resolve
//
//	@Summary		Resolve an ENS name
//	@Description	Forward an ENS name to the hosted resolver and return its address
//	@Tags			ens
//	@Accept			json
//	@Produce		json
//	@Param			params	body		domain.ResolveENSRequest	true	"params"
//	@Success		200		{object}	domain.ResolveENSResponse
//	@Failure		404		{object}	domain.ErrorResponse
//	@Failure		500		{object}	domain.ErrorResponse
//	@Router			/api/resolve-ens [post]
func (h *handler) Resolve(c echo.Context) error {
	ctx := delivery.Ctx(c)

	// body is json whatever the content type says
	p := domain.ResolveENSRequest{}
	if err := c.Echo().JSONSerializer.Deserialize(c, &p); err != nil && !errors.Is(err, io.EOF) {
		ctx.WithField("err", err).Error("decode body failed")
		return delivery.MakeErrorResp(c, xerrors.Errorf("bind resolve-ens body: %w", err))
	}

	if err := c.Validate(&p); err != nil {
		ctx.WithField("err", err).Warn("empty ens name")
		return delivery.MakeErrorResp(c, domain.ErrENSNameNotFound)
	}

	address, err := h.ens.Resolve(ctx, p.ENSName)
	if err != nil {
		ctx.WithFields(log.Fields{
			"name": p.ENSName,
			"err":  err,
		}).Error("ens.Resolve failed")
		return delivery.MakeErrorResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, domain.ResolveENSResponse{Address: address})
}
