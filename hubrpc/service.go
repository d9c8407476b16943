package hubrpc

import (
	"context"

	"google.golang.org/grpc"
)

const serviceName = "synchealth.HubService"

const (
	methodGetMetadata    = "GetSyncMetadataByPrefix"
	methodGetIdentifiers = "GetSyncIdsByPrefix"
	methodGetRecords     = "GetMessagesBySyncIds"
	methodSubmit         = "SubmitMessage"
	methodGetPeers       = "GetCurrentPeers"
	methodGetInfo        = "GetInfo"
)

// HubServer is the server API of the hub service.
type HubServer interface {
	GetSyncMetadataByPrefix(context.Context, *PrefixRequest) (*MetadataResponse, error)
	GetSyncIdsByPrefix(context.Context, *PrefixRequest) (*IdentifiersResponse, error)
	GetMessagesBySyncIds(context.Context, *RecordsRequest) (*RecordsResponse, error)
	SubmitMessage(context.Context, *SubmitRequest) (*Empty, error)
	GetCurrentPeers(context.Context, *Empty) (*PeersResponse, error)
	GetInfo(context.Context, *Empty) (*InfoResponse, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*HubServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(methodGetMetadata, HubServer.GetSyncMetadataByPrefix),
		unaryMethod(methodGetIdentifiers, HubServer.GetSyncIdsByPrefix),
		unaryMethod(methodGetRecords, HubServer.GetMessagesBySyncIds),
		unaryMethod(methodSubmit, HubServer.SubmitMessage),
		unaryMethod(methodGetPeers, HubServer.GetCurrentPeers),
		unaryMethod(methodGetInfo, HubServer.GetInfo),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hubrpc",
}

func fullMethod(method string) string {
	return "/" + serviceName + "/" + method
}

func unaryMethod[Req, Resp any](
	method string,
	call func(HubServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(HubServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(HubServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
