package hubrpc

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/synctrie"
)

// Client is a remote replica reached over the hub service. Every call is bounded
// by the configured request timeout.
type Client struct {
	logger  *zap.Logger
	cfg     Config
	conn    *grpc.ClientConn
	limiter *rate.Limiter
	secure  bool
}

// ClientOpt is an option for Client.
type ClientOpt func(*Client)

// WithClientLogger sets the logger.
func WithClientLogger(logger *zap.Logger) ClientOpt {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClientConfig sets the config.
func WithClientConfig(cfg Config) ClientOpt {
	return func(c *Client) {
		c.cfg = cfg
	}
}

func withSecure(secure bool) ClientOpt {
	return func(c *Client) {
		c.secure = secure
	}
}

// NewClient wraps an established connection.
func NewClient(conn *grpc.ClientConn, opts ...ClientOpt) *Client {
	c := &Client{
		logger: zap.NewNop(),
		cfg:    DefaultConfig(),
		conn:   conn,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(c.cfg.RequestsPerSecond), max(c.cfg.Burst, 1))
	}
	return c
}

// Target returns the address the client is connected to.
func (c *Client) Target() string {
	return c.conn.Target()
}

// Secure returns true if the connection uses transport security.
func (c *Client) Secure() bool {
	return c.secure
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}
	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()
	err := c.conn.Invoke(ctx, fullMethod(method), in, out, grpc.CallContentSubtype(codecName))
	if err != nil {
		return fromStatus(method, err)
	}
	return nil
}

// GetMetadata implements synctrie.Retriever.
func (c *Client) GetMetadata(ctx context.Context, prefix []byte) (*synctrie.NodeMetadata, error) {
	var resp MetadataResponse
	if err := c.invoke(ctx, methodGetMetadata, &PrefixRequest{Prefix: prefix}, &resp); err != nil {
		return nil, err
	}
	return &resp.Node, nil
}

// GetIdentifiersByPrefix implements synctrie.IDFetcher.
func (c *Client) GetIdentifiersByPrefix(ctx context.Context, prefix []byte) ([]types.RecordID, error) {
	var resp IdentifiersResponse
	if err := c.invoke(ctx, methodGetIdentifiers, &PrefixRequest{Prefix: prefix}, &resp); err != nil {
		return nil, err
	}
	return resp.IDs, nil
}

// GetRecordsByIdentifiers returns the records the hub has among ids.
func (c *Client) GetRecordsByIdentifiers(ctx context.Context, ids []types.RecordID) ([]types.Record, error) {
	var resp RecordsResponse
	if err := c.invoke(ctx, methodGetRecords, &RecordsRequest{IDs: ids}, &resp); err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// SubmitRecord submits a single record to the hub.
func (c *Client) SubmitRecord(ctx context.Context, rec types.Record) error {
	return c.invoke(ctx, methodSubmit, &SubmitRequest{Record: rec}, &Empty{})
}

// ListKnownPeers returns the peers the hub is connected to.
func (c *Client) ListKnownPeers(ctx context.Context) ([]types.Peer, error) {
	var resp PeersResponse
	if err := c.invoke(ctx, methodGetPeers, &Empty{}, &resp); err != nil {
		return nil, err
	}
	return resp.Peers, nil
}

// Info returns the hub identity and message count.
func (c *Client) Info(ctx context.Context) (types.HubInfo, error) {
	var resp InfoResponse
	if err := c.invoke(ctx, methodGetInfo, &Empty{}, &resp); err != nil {
		return types.HubInfo{}, err
	}
	return resp.Info, nil
}

func fromStatus(method string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", method, synctrie.ErrTimeout)
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%s: %w", method, err)
	}
	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%s: %w: %s", method, synctrie.ErrUnavailable, st.Message())
	case codes.DeadlineExceeded:
		return fmt.Errorf("%s: %w: %s", method, synctrie.ErrTimeout, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%s: %w: %s", method, types.ErrDuplicateRecord, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%s: %w: %s", method, types.ErrInvalidRecord, st.Message())
	}
	return fmt.Errorf("%s: %w", method, err)
}
