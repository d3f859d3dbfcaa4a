package alchemy

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/domain"
)

var (
	ErrMissingApiKey = xerrors.Errorf("alchemy: %w", domain.ErrMissingCredential)
)

type Client interface {
	// ResolveAddress asks the resolver for the address of ensName. The name is
	// query-encoded but otherwise sent as given.
	ResolveAddress(ctx bCtx.Ctx, ensName string) (*ResolveAddressResponse, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Apikey     string
	Url        string
}

// ResolveAddressResponse is the resolver body. Error may hold any json value.
type ResolveAddressResponse struct {
	Address string          `json:"address"`
	Error   json.RawMessage `json:"error,omitempty"`
}

var falsyJson = [][]byte{
	[]byte("null"),
	[]byte("false"),
	[]byte(`""`),
	[]byte("0"),
}

// HasError reports whether the resolver set a truthy error field
func (r *ResolveAddressResponse) HasError() bool {
	v := bytes.TrimSpace(r.Error)
	if len(v) == 0 {
		return false
	}
	for _, f := range falsyJson {
		if bytes.Equal(v, f) {
			return false
		}
	}
	return true
}
