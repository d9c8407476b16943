package hubrpc

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// ErrConnectionFailed is returned when neither a secure nor an insecure connection
// became ready.
var ErrConnectionFailed = errors.New("connection failed")

// DialerOpt is an option for Dialer.
type DialerOpt func(*Dialer)

// WithDialerLogger sets the logger.
func WithDialerLogger(logger *zap.Logger) DialerOpt {
	return func(d *Dialer) {
		d.logger = logger
	}
}

// WithDialerConfig sets the config.
func WithDialerConfig(cfg Config) DialerOpt {
	return func(d *Dialer) {
		d.cfg = cfg
	}
}

// WithTLSConfig sets the TLS configuration used for secure connections.
func WithTLSConfig(cfg *tls.Config) DialerOpt {
	return func(d *Dialer) {
		d.tls = cfg
	}
}

// WithDialOptions appends grpc dial options to every connection.
func WithDialOptions(opts ...grpc.DialOption) DialerOpt {
	return func(d *Dialer) {
		d.opts = append(d.opts, opts...)
	}
}

// Dialer establishes connections to hubs.
type Dialer struct {
	logger *zap.Logger
	cfg    Config
	tls    *tls.Config
	opts   []grpc.DialOption
}

// NewDialer creates a Dialer.
func NewDialer(opts ...DialerOpt) *Dialer {
	d := &Dialer{
		logger: zap.NewNop(),
		cfg:    DefaultConfig(),
		tls:    &tls.Config{MinVersion: tls.VersionTLS12},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dial opens a connection to addr and waits until it is ready or the connect
// timeout elapses.
func (d *Dialer) Dial(ctx context.Context, addr string, secure bool) (*grpc.ClientConn, error) {
	creds := insecure.NewCredentials()
	if secure {
		creds = credentials.NewTLS(d.tls)
	}
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithChainUnaryInterceptor(grpc_zap.UnaryClientInterceptor(d.logger)),
	}, d.opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("create client %s: %w", addr, err)
	}
	ctx, cancel := context.WithTimeout(ctx, d.cfg.ConnectTimeout)
	defer cancel()
	if err := waitReady(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// Connect connects to addr, trying transport security first and falling back to a
// plaintext connection.
func (d *Dialer) Connect(ctx context.Context, addr string) (*Client, error) {
	conn, secureErr := d.Dial(ctx, addr, true)
	if secureErr == nil {
		return d.client(conn, true), nil
	}
	d.logger.Debug("secure connection failed, retrying without tls",
		zap.String("addr", addr),
		zap.Error(secureErr),
	)
	conn, err := d.Dial(ctx, addr, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: secure: %w, insecure: %w", ErrConnectionFailed, addr, secureErr, err)
	}
	return d.client(conn, false), nil
}

func (d *Dialer) client(conn *grpc.ClientConn, secure bool) *Client {
	d.logger.Debug("connected to hub", zap.String("addr", conn.Target()), zap.Bool("secure", secure))
	return NewClient(conn,
		WithClientLogger(d.logger),
		WithClientConfig(d.cfg),
		withSecure(secure),
	)
}

func waitReady(ctx context.Context, conn *grpc.ClientConn) error {
	conn.Connect()
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.TransientFailure, connectivity.Shutdown:
			return fmt.Errorf("connection to %s is %s", conn.Target(), state)
		}
		if !conn.WaitForStateChange(ctx, state) {
			return fmt.Errorf("wait for %s: %w", conn.Target(), ctx.Err())
		}
	}
}
