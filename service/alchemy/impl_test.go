package alchemy

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/domain"
)

type alchemySuite struct {
	suite.Suite

	server  *httptest.Server
	handler http.HandlerFunc
	lastReq *http.Request
}

func (s *alchemySuite) SetupTest() {
	s.lastReq = nil
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":"0xabc"}`))
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastReq = r
		s.handler(w, r)
	}))
}

func (s *alchemySuite) TearDownTest() {
	s.server.Close()
}

func TestAlchemySuite(t *testing.T) {
	suite.Run(t, new(alchemySuite))
}

func (s *alchemySuite) newClient(apikey string) Client {
	return NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    time.Second,
		Apikey:     apikey,
		Url:        s.server.URL + "/v2",
	})
}

func (s *alchemySuite) TestResolveAddress() {
	res, err := s.newClient("key").ResolveAddress(bCtx.Background(), "vitalik.eth")
	s.Require().NoError(err)
	s.Equal("0xabc", res.Address)
	s.False(res.HasError())

	s.Require().NotNil(s.lastReq)
	s.Equal(http.MethodGet, s.lastReq.Method)
	s.Equal("/v2/key/resolveAddress", s.lastReq.URL.Path)
	s.Equal("vitalik.eth", s.lastReq.URL.Query().Get("ensName"))
	s.Equal("application/json", s.lastReq.Header.Get("accept"))
}

func (s *alchemySuite) TestNameIsQueryEncoded() {
	name := "evil.eth&apiKey=x#frag"
	_, err := s.newClient("key").ResolveAddress(bCtx.Background(), name)
	s.Require().NoError(err)

	s.Equal(name, s.lastReq.URL.Query().Get("ensName"))
	s.Len(s.lastReq.URL.Query(), 1)
}

func (s *alchemySuite) TestApiKeyIsPathEscaped() {
	_, err := s.newClient("a/b?c").ResolveAddress(bCtx.Background(), "vitalik.eth")
	s.Require().NoError(err)
	s.Equal("/v2/a%2Fb%3Fc/resolveAddress", s.lastReq.URL.EscapedPath())
}

func (s *alchemySuite) TestMissingApiKey() {
	_, err := s.newClient("").ResolveAddress(bCtx.Background(), "vitalik.eth")
	s.ErrorIs(err, domain.ErrMissingCredential)
	s.Nil(s.lastReq)
}

func (s *alchemySuite) TestUpstreamErrorBody() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"not found"}}`))
	}
	res, err := s.newClient("key").ResolveAddress(bCtx.Background(), "nobody.eth")
	s.Require().NoError(err)
	s.True(res.HasError())
	s.Empty(res.Address)
}

func (s *alchemySuite) TestMalformedJson() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>bad gateway</html>`))
	}
	_, err := s.newClient("key").ResolveAddress(bCtx.Background(), "vitalik.eth")
	s.Error(err)
}

func (s *alchemySuite) TestNetworkErrorDoesNotCarryKey() {
	s.server.Close()
	_, err := s.newClient("super-secret").ResolveAddress(bCtx.Background(), "vitalik.eth")
	s.Require().Error(err)
	s.False(strings.Contains(err.Error(), "super-secret"), err.Error())
}

func (s *alchemySuite) TestHasError() {
	tests := []struct {
		raw string
		exp bool
	}{
		{``, false},
		{`null`, false},
		{`false`, false},
		{`""`, false},
		{`0`, false},
		{`"not found"`, true},
		{`{"code":1}`, true},
		{`true`, true},
	}
	for _, t := range tests {
		r := &ResolveAddressResponse{Error: []byte(t.raw)}
		s.Equal(t.exp, r.HasError(), t.raw)
	}
}
