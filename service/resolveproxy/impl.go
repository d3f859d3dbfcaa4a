package resolveproxy

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"golang.org/x/xerrors"

	"github.com/labordao/chaincv/base/config"
	bCtx "github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/base/log"
	"github.com/labordao/chaincv/domain"
)

type client struct {
	client  http.Client
	timeout time.Duration
	url     string
}

// NewClient returns a domain.ENSResolver that goes through the resolver proxy
func NewClient(cfg *ClientCfg) domain.ENSResolver {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = config.DefaultHttpTimeout
	}
	return &client{
		client:  cfg.HttpClient,
		timeout: timeout,
		url:     cfg.Url + ResolvePath,
	}
}

func (c *client) Resolve(ctx bCtx.Ctx, name string) (domain.Address, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	b, err := json.Marshal(domain.ResolveENSRequest{ENSName: name})
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("client.Do failed")
		return "", xerrors.Errorf("resolve %s: %w", name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("failed to read body")
		return "", xerrors.Errorf("resolve %s: %w", name, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", xerrors.Errorf("resolve %s: %w", name, domain.ErrENSNameNotFound)
	default:
		ctx.WithFields(log.Fields{
			"url":        c.url,
			"statusCode": resp.StatusCode,
			"body":       string(body),
		}).Error("unexpected status")
		return "", xerrors.Errorf("resolve %s: status %d: %w", name, resp.StatusCode, ErrUnexpectedStatus)
	}

	res := domain.ResolveENSResponse{}
	if err := json.Unmarshal(body, &res); err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("json.Unmarshal failed")
		return "", xerrors.Errorf("resolve %s: %w", name, err)
	}
	if res.Address.IsEmpty() {
		return "", xerrors.Errorf("resolve %s: %w", name, domain.ErrENSNameNotFound)
	}
	return res.Address, nil
}
