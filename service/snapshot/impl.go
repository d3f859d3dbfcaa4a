package snapshot

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"golang.org/x/xerrors"

	"github.com/labordao/chaincv/base/config"
	bCtx "github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/base/log"
	"github.com/labordao/chaincv/base/metrics"
	"github.com/labordao/chaincv/domain"
	"github.com/labordao/chaincv/domain/governance"
)

// votesQuery takes the voter as a variable so the address never becomes query text
const votesQuery = `query Votes($voter: String!, $first: Int!) {
  votes(first: $first, where: { voter: $voter }, orderBy: "created", orderDirection: desc) {
    id
    proposal {
      title
    }
    space {
      id
    }
  }
}`

type votesResponse struct {
	Data *struct {
		Votes []governance.Vote `json:"votes"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

type client struct {
	client  http.Client
	cfg     ClientCfg
	metrics metrics.Service
}

// NewClient returns a governance.VoteRepo backed by the snapshot hub
func NewClient(cfg *ClientCfg) governance.VoteRepo {
	c := *cfg
	if c.Url == "" {
		c.Url = config.DefaultSnapshotUrl
	}
	if c.Timeout == 0 {
		c.Timeout = config.DefaultHttpTimeout
	}
	return &client{
		client:  cfg.HttpClient,
		cfg:     c,
		metrics: metrics.New("snapshot"),
	}
}

func (c *client) FindVotesByVoter(ctx bCtx.Ctx, voter domain.Address, first int) ([]governance.Vote, error) {
	if first <= 0 {
		first = governance.DefaultVotesLimit
	}

	defer c.metrics.BumpTime("votes.latency").End()

	body := GraphQLRequest{
		Query:         votesQuery,
		OperationName: "Votes",
		Variables: map[string]interface{}{
			"voter": voter.ToLowerStr(),
			"first": first,
		},
	}

	data, err := c.post(ctx, body)
	if err != nil {
		c.metrics.BumpSum("votes.err", 1, "reason", "request")
		return nil, err
	}

	resp := votesResponse{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithFields(log.Fields{
			"url": c.cfg.Url,
			"err": err,
		}).Error("json.Unmarshal failed")
		c.metrics.BumpSum("votes.err", 1, "reason", "decode")
		return nil, xerrors.Errorf("decode votes response: %w", err)
	}

	if len(resp.Errors) > 0 {
		ctx.WithFields(log.Fields{
			"url":    c.cfg.Url,
			"errors": resp.Errors,
		}).Error("graphql errors")
		c.metrics.BumpSum("votes.err", 1, "reason", "graphql")
		return nil, xerrors.Errorf("votes of %s: %w", voter, ErrGraphQL)
	}

	votes := []governance.Vote{}
	if resp.Data != nil && resp.Data.Votes != nil {
		votes = resp.Data.Votes
	}
	c.metrics.BumpHistogram("votes.count", float64(len(votes)))
	return votes, nil
}

func (c *client) post(ctx bCtx.Ctx, payload GraphQLRequest) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	b, err := json.Marshal(payload)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Url, bytes.NewReader(b))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.cfg.Url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.cfg.Url,
			"err": err,
		}).Error("client.Do failed")
		return nil, xerrors.Errorf("votes request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        c.cfg.Url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.cfg.Url,
			"err": err,
		}).Error("failed to read body")
		return nil, xerrors.Errorf("read votes body: %w", err)
	}
	return body, nil
}
