package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/suite"

	"github.com/labordao/chaincv/base/ctx"
)

type middlewareSuite struct {
	suite.Suite
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) TestAddContext() {
	e := echo.New()
	e.Use(middleware.RequestID())
	m := InitMiddleware()
	e.Use(m.AddContext())

	var got interface{}
	e.GET("/", func(c echo.Context) error {
		cont, ok := c.Get("ctx").(ctx.Ctx)
		s.True(ok)
		got = cont.Value("requestID")
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusNoContent, rec.Code)
	s.NotEmpty(got)
	s.Equal(rec.Header().Get(echo.HeaderXRequestID), got)
}

func (s *middlewareSuite) TestResponseLoggerHandlesErrors() {
	e := echo.New()
	m := InitMiddleware()
	e.Use(m.ResponseLogger())
	e.Use(m.AddContext())
	e.GET("/", func(c echo.Context) error {
		return errors.New("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *middlewareSuite) TestStatusClass() {
	s.Equal("5xx", statusClass(502))
	s.Equal("4xx", statusClass(404))
	s.Equal("ok", statusClass(200))
}
