package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/domain"
	"github.com/labordao/chaincv/service/alchemy"
	mAlchemy "github.com/labordao/chaincv/service/alchemy/mocks"
	"github.com/labordao/chaincv/stores/ens/usecase"
)

func TestResolve(t *testing.T) {
	upstreamErr := errors.New("dial tcp: connection refused")

	tests := []struct {
		desc       string
		resp       *alchemy.ResolveAddressResponse
		respErr    error
		expAddress domain.Address
		expErr     error
	}{
		{
			desc:       "address",
			resp:       &alchemy.ResolveAddressResponse{Address: "0xabc"},
			expAddress: "0xabc",
		},
		{
			desc:   "error field",
			resp:   &alchemy.ResolveAddressResponse{Error: []byte(`"not found"`)},
			expErr: domain.ErrENSNameNotFound,
		},
		{
			desc:   "error field beside an address",
			resp:   &alchemy.ResolveAddressResponse{Address: "0xabc", Error: []byte(`{"code":-32000}`)},
			expErr: domain.ErrENSNameNotFound,
		},
		{
			desc:   "no address",
			resp:   &alchemy.ResolveAddressResponse{},
			expErr: domain.ErrENSNameNotFound,
		},
		{
			desc:    "missing credential",
			respErr: alchemy.ErrMissingApiKey,
			expErr:  domain.ErrMissingCredential,
		},
		{
			desc:    "network failure",
			respErr: upstreamErr,
			expErr:  upstreamErr,
		},
	}

	for _, tt := range tests {
		client := &mAlchemy.Client{}
		client.On("ResolveAddress", mock.Anything, "vitalik.eth").Return(tt.resp, tt.respErr).Once()

		addr, err := usecase.New(client).Resolve(ctx.Background(), "vitalik.eth")
		if tt.expErr != nil {
			assert.ErrorIs(t, err, tt.expErr, tt.desc)
			assert.True(t, addr.IsEmpty(), tt.desc)
		} else {
			assert.NoError(t, err, tt.desc)
			assert.Equal(t, tt.expAddress, addr, tt.desc)
		}
		client.AssertExpectations(t)
	}
}
