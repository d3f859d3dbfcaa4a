package resolveproxy

import (
	"errors"
	"net/http"
	"time"
)

// ResolvePath is where the resolver proxy is mounted
const ResolvePath = "/api/resolve-ens"

var (
	ErrUnexpectedStatus = errors.New("unexpected resolver proxy status")
)

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// Url is the base url of a server exposing ResolvePath
	Url string
}
