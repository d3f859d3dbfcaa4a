package domain

import (
	"strings"

	"github.com/labordao/chaincv/base/ctx"
)

// ENSSuffix marks an input as a name that has to be resolved before lookup
const ENSSuffix = ".eth"

// IsENSName reports whether a trimmed, lower-cased input should go through the resolver
func IsENSName(input string) bool {
	return strings.HasSuffix(input, ENSSuffix)
}

// ResolveENSRequest is the body accepted by the resolver proxy
type ResolveENSRequest struct {
	ENSName string `json:"ensName" validate:"required"`
}

// ResolveENSResponse is the success body of the resolver proxy
type ResolveENSResponse struct {
	Address Address `json:"address"`
}

// ErrorResponse is the failure body of the resolver proxy
type ErrorResponse struct {
	Error string `json:"error"`
}

// ENSResolver resolves an ENS name to an address.
// A name without an address yields ErrENSNameNotFound.
type ENSResolver interface {
	Resolve(ctx ctx.Ctx, name string) (Address, error)
}
