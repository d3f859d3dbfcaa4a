package alchemy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/xerrors"

	"github.com/labordao/chaincv/base/config"
	bCtx "github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/base/log"
	"github.com/labordao/chaincv/base/metrics"
)

type client struct {
	client  http.Client
	cfg     ClientCfg
	metrics metrics.Service
}

func NewClient(cfg *ClientCfg) Client {
	c := *cfg
	if c.Url == "" {
		c.Url = config.DefaultAlchemyUrl
	}
	if c.Timeout == 0 {
		c.Timeout = config.DefaultHttpTimeout
	}
	return &client{
		client:  cfg.HttpClient,
		cfg:     c,
		metrics: metrics.New("alchemy"),
	}
}

func (c *client) ResolveAddress(ctx bCtx.Ctx, ensName string) (*ResolveAddressResponse, error) {
	if c.cfg.Apikey == "" {
		ctx.WithField("err", ErrMissingApiKey).Error("alchemy api key is not configured")
		return nil, ErrMissingApiKey
	}

	defer c.metrics.BumpTime("resolve.latency").End()

	params := url.Values{
		"ensName": {ensName},
	}
	endpoint := fmt.Sprintf("%s/%s/resolveAddress?%s", c.cfg.Url, url.PathEscape(c.cfg.Apikey), params.Encode())

	data, err := c.get(ctx, endpoint)
	if err != nil {
		c.metrics.BumpSum("resolve.err", 1, "reason", "request")
		return nil, err
	}

	resp := &ResolveAddressResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithFields(log.Fields{
			"url": c.redacted(),
			"err": err,
		}).Error("json.Unmarshal failed")
		c.metrics.BumpSum("resolve.err", 1, "reason", "decode")
		return nil, xerrors.Errorf("decode resolveAddress response: %w", err)
	}

	return resp, nil
}

// redacted is the endpoint as it may appear in logs
func (c *client) redacted() string {
	return fmt.Sprintf("%s/***/resolveAddress", c.cfg.Url)
}

// get issues the request and returns the body whatever the status code is;
// the resolver reports failures in the body.
func (c *client) get(ctx bCtx.Ctx, endpoint string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		err = stripUrl(err)
		ctx.WithFields(log.Fields{
			"url": c.redacted(),
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, xerrors.Errorf("build resolveAddress request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		err = stripUrl(err)
		ctx.WithFields(log.Fields{
			"url": c.redacted(),
			"err": err,
		}).Error("client.Do failed")
		return nil, xerrors.Errorf("resolveAddress request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        c.redacted(),
			"statusCode": resp.StatusCode,
		}).Warn("resp.StatusCode != 200")
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.redacted(),
			"err": err,
		}).Error("failed to read body")
		return nil, xerrors.Errorf("read resolveAddress body: %w", err)
	}
	return body, nil
}

// stripUrl drops the request url, which carries the api key, from err
func stripUrl(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
