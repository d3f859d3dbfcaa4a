package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/domain"
)

// MakeJsonResp answers data with status. An error is answered through
// MakeErrorResp instead.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		return MakeErrorResp(c, err)
	}
	return c.JSON(status, data)
}

// MakeErrorResp answers err as {"error": message}. Only sentinel errors keep
// their text; everything else becomes a generic internal error.
func MakeErrorResp(c echo.Context, err error) error {
	status, msg := Classify(err)
	return c.JSON(status, domain.ErrorResponse{Error: msg})
}

// Classify maps err to the status and message a client may see
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrENSNameNotFound):
		return http.StatusNotFound, domain.ErrENSNameNotFound.Error()
	default:
		return http.StatusInternalServerError, domain.ErrInternalServerError.Error()
	}
}

// Ctx returns the request ctx.Ctx installed by the AddContext middleware,
// falling back to one built from the request.
func Ctx(c echo.Context) ctx.Ctx {
	if v, ok := c.Get("ctx").(ctx.Ctx); ok {
		return v
	}
	return ctx.From(c.Request().Context())
}
