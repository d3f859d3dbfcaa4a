package resolveproxy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/domain"
)

type proxyClientSuite struct {
	suite.Suite

	server   *httptest.Server
	status   int
	response string
	calls    int
	lastName string
}

func (s *proxyClientSuite) SetupTest() {
	s.status = http.StatusOK
	s.response = `{"address":"0xD8dA6BF26964aF9D7eEd9e03E53415D37aA96045"}`
	s.calls = 0
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls++
		s.Equal(ResolvePath, r.URL.Path)
		s.Equal(http.MethodPost, r.Method)
		req := domain.ResolveENSRequest{}
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.lastName = req.ENSName
		w.WriteHeader(s.status)
		w.Write([]byte(s.response))
	}))
}

func (s *proxyClientSuite) TearDownTest() {
	s.server.Close()
}

func TestProxyClientSuite(t *testing.T) {
	suite.Run(t, new(proxyClientSuite))
}

func (s *proxyClientSuite) resolver() domain.ENSResolver {
	return NewClient(&ClientCfg{HttpClient: http.Client{}, Timeout: time.Second, Url: s.server.URL})
}

func (s *proxyClientSuite) TestResolve() {
	addr, err := s.resolver().Resolve(bCtx.Background(), "vitalik.eth")
	s.Require().NoError(err)
	s.Equal(domain.Address("0xD8dA6BF26964aF9D7eEd9e03E53415D37aA96045"), addr)
	s.Equal("vitalik.eth", s.lastName)
	s.Equal(1, s.calls)
}

func (s *proxyClientSuite) TestNotFound() {
	s.status = http.StatusNotFound
	s.response = `{"error":"ENS name not found"}`
	_, err := s.resolver().Resolve(bCtx.Background(), "nobody.eth")
	s.ErrorIs(err, domain.ErrENSNameNotFound)
}

func (s *proxyClientSuite) TestInternalError() {
	s.status = http.StatusInternalServerError
	s.response = `{"error":"Internal Server Error"}`
	_, err := s.resolver().Resolve(bCtx.Background(), "vitalik.eth")
	s.ErrorIs(err, ErrUnexpectedStatus)
}

func (s *proxyClientSuite) TestEmptyAddress() {
	s.response = `{"address":""}`
	_, err := s.resolver().Resolve(bCtx.Background(), "vitalik.eth")
	s.ErrorIs(err, domain.ErrENSNameNotFound)
}

func (s *proxyClientSuite) TestUnreachable() {
	s.server.Close()
	_, err := s.resolver().Resolve(bCtx.Background(), "vitalik.eth")
	s.Error(err)
}
