package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labordao/chaincv/base/delivery"
	"github.com/labordao/chaincv/base/validator"
	"github.com/labordao/chaincv/domain/lookup"
)

const indexTemplate = "index.html"

type handler struct {
	lookup lookup.Usecase
}

// New mounts the lookup page and its json twin. The page needs e.Renderer to
// be able to render indexTemplate, see NewRenderer.
func New(e *echo.Echo, us lookup.Usecase) {
	h := &handler{
		lookup: us,
	}

	e.GET("/", h.page)

	g := e.Group("/api")
	g.GET("/votes", h.votes)
}

type page struct {
	lookup.View
	DisplayAddress string
}

func (p page) IsError() bool   { return p.State == lookup.StateError }
func (p page) IsEmpty() bool   { return p.State == lookup.StateEmpty }
func (p page) IsSuccess() bool { return p.State == lookup.StateSuccess }

func (h *handler) page(c echo.Context) error {
	ctx := delivery.Ctx(c)

	view := h.lookup.Lookup(ctx, c.QueryParam("address"))

	p := page{View: view}
	if !view.Address.IsEmpty() {
		p.DisplayAddress = validator.DisplayAddress(string(view.Address))
	}

	return c.Render(http.StatusOK, indexTemplate, p)
}

// votes
//
//	@Summary		Recent governance votes
//	@Description	Resolve address when it is an ENS name and list its most recent governance votes
//	@Tags			governance
//	@Produce		json
//	@Param			address	query		string	true	"wallet address or ENS name"
//	@Success		200		{object}	lookup.View
//	@Failure		502		{object}	lookup.View
//	@Router			/api/votes [get]
func (h *handler) votes(c echo.Context) error {
	ctx := delivery.Ctx(c)

	view := h.lookup.Lookup(ctx, c.QueryParam("address"))
	if view.State == lookup.StateError {
		return c.JSON(http.StatusBadGateway, view)
	}
	return c.JSON(http.StatusOK, view)
}
