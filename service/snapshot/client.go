package snapshot

import (
	"errors"
	"net/http"
	"time"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrGraphQL         = errors.New("graphql query returned errors")
)

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Url        string
}

// GraphQLRequest is the body posted to the hub
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

type GraphQLError struct {
	Message string `json:"message"`
}
