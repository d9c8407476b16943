package hubrpc

import (
	"context"
	"errors"
	"time"

	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/synctrie"
)

// NewGRPCServer creates a grpc server that logs every call with logger.
func NewGRPCServer(logger *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: 2 * time.Hour,
			Time:              time.Minute,
			Timeout:           3 * time.Minute,
		}),
		grpc.ChainUnaryInterceptor(grpc_zap.UnaryServerInterceptor(logger)),
	}, opts...)
	return grpc.NewServer(opts...)
}

// Server exposes a Backend as the hub service.
type Server struct {
	backend Backend
}

var _ HubServer = (*Server)(nil)

// NewServer creates a Server for backend.
func NewServer(backend Backend) *Server {
	return &Server{backend: backend}
}

// Register registers the hub service on gs.
func (s *Server) Register(gs *grpc.Server) {
	gs.RegisterService(&serviceDesc, s)
}

func (s *Server) GetSyncMetadataByPrefix(ctx context.Context, req *PrefixRequest) (*MetadataResponse, error) {
	md, err := s.backend.GetMetadata(ctx, req.Prefix)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &MetadataResponse{Node: *md}, nil
}

func (s *Server) GetSyncIdsByPrefix(ctx context.Context, req *PrefixRequest) (*IdentifiersResponse, error) {
	ids, err := s.backend.GetIdentifiersByPrefix(ctx, req.Prefix)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &IdentifiersResponse{IDs: ids}, nil
}

func (s *Server) GetMessagesBySyncIds(ctx context.Context, req *RecordsRequest) (*RecordsResponse, error) {
	recs, err := s.backend.GetRecordsByIdentifiers(ctx, req.IDs)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &RecordsResponse{Records: recs}, nil
}

func (s *Server) SubmitMessage(ctx context.Context, req *SubmitRequest) (*Empty, error) {
	if err := s.backend.SubmitRecord(ctx, req.Record); err != nil {
		return nil, toStatus(ctx, err)
	}
	return &Empty{}, nil
}

func (s *Server) GetCurrentPeers(ctx context.Context, _ *Empty) (*PeersResponse, error) {
	peers, err := s.backend.ListKnownPeers(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &PeersResponse{Peers: peers}, nil
}

func (s *Server) GetInfo(ctx context.Context, _ *Empty) (*InfoResponse, error) {
	info, err := s.backend.Info(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &InfoResponse{Info: info}, nil
}

func toStatus(ctx context.Context, err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, synctrie.ErrUnavailable):
		code = codes.NotFound
	case errors.Is(err, types.ErrDuplicateRecord):
		code = codes.AlreadyExists
	case errors.Is(err, types.ErrInvalidRecord):
		code = codes.InvalidArgument
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, synctrie.ErrTimeout):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	default:
		code = codes.Internal
		ctxzap.Error(ctx, "hub request failed", zap.Error(err))
	}
	return status.Error(code, err.Error())
}
