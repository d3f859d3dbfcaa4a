package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labordao/chaincv/base/delivery"
	hcdomain "github.com/labordao/chaincv/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

// check
//
//	@Summary	Liveness
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	healthcheck.Status
//	@Router		/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := delivery.Ctx(c)
	return c.JSON(http.StatusOK, h.healthCheck.Check(context))
}
