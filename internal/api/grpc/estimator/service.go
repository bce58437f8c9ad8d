package estimator

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName — полное имя gRPC-сервиса.
const ServiceName = "arweavecost.v1.EstimatorService"

// EstimatorServiceServer — серверная сторона сервиса. Сообщения — well-known типы protobuf,
// поэтому отдельный .proto-модуль не нужен.
type EstimatorServiceServer interface {
	Calculate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	TokenPrices(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error)
	StorageCost(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error)
}

// ServiceDesc — описание сервиса для grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EstimatorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Calculate",
			Handler:    unary("Calculate", func() *structpb.Struct { return new(structpb.Struct) }, EstimatorServiceServer.Calculate),
		},
		{
			MethodName: "TokenPrices",
			Handler:    unary("TokenPrices", func() *emptypb.Empty { return new(emptypb.Empty) }, EstimatorServiceServer.TokenPrices),
		},
		{
			MethodName: "StorageCost",
			Handler:    unary("StorageCost", func() *structpb.Struct { return new(structpb.Struct) }, EstimatorServiceServer.StorageCost),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "arweavecost/v1/estimator.proto",
}

// RegisterEstimatorServiceServer регистрирует реализацию на сервере.
func RegisterEstimatorServiceServer(s grpc.ServiceRegistrar, srv EstimatorServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// FullMethod возвращает полное имя метода для conn.Invoke, например "/arweavecost.v1.EstimatorService/Calculate".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary строит обработчик unary-метода так же, как это делает protoc-gen-go-grpc: декодирует запрос и прогоняет через интерцептор.
func unary[Req, Resp any](
	method string,
	newReq func() Req,
	call func(EstimatorServiceServer, context.Context, Req) (Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	fullMethod := FullMethod(method)
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EstimatorServiceServer), ctx, req.(Req))
		}
		if interceptor == nil {
			return handler(ctx, in)
		}
		return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}, handler)
	}
}
