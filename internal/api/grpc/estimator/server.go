package estimator

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/ports"
)

var _ EstimatorServiceServer = (*Server)(nil)

// Server реализует EstimatorService, вызывает use case оценки стоимости.
type Server struct {
	uc  ports.IEstimatorUseCase
	log *slog.Logger
}

// New создаёт gRPC-сервер оценки стоимости.
func New(uc ports.IEstimatorUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// toStatus переводит ошибку юзкейса в gRPC-статус.
func (s *Server) toStatus(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Errorf(codes.InvalidArgument, "%v", err)
	case errors.Is(err, domain.ErrUpstreamFailure):
		s.log.Warn(op+" upstream failed", "error", err)
		return status.Errorf(codes.Unavailable, "%v", err)
	default:
		s.log.Error(op+" failed", "error", err)
		return status.Errorf(codes.Internal, "%v", err)
	}
}

// fileSizes достаёт поле fileSizes: список чисел, иначе domain.ErrInvalidFileSizes.
func fileSizes(req *structpb.Struct) ([]float64, error) {
	list := req.GetFields()["fileSizes"].GetListValue()
	if list == nil {
		return nil, domain.ErrInvalidFileSizes
	}
	sizes := make([]float64, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, domain.ErrInvalidFileSizes
		}
		sizes = append(sizes, n.NumberValue)
	}
	return sizes, nil
}

// Calculate — {"fileSizes": [...]} -> отчёт о стоимости.
func (s *Server) Calculate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sizes, err := fileSizes(req)
	if err != nil {
		return nil, s.toStatus("calculate", err)
	}
	report, err := s.uc.Calculate(ctx, sizes)
	if err != nil {
		return nil, s.toStatus("calculate", err)
	}
	resp, err := structpb.NewStruct(map[string]any{
		"arweave":      report.Arweave,
		"solana":       report.Solana,
		"arweavePrice": report.ArweavePrice,
		"solanaPrice":  report.SolanaPrice,
		"exchangeRate": report.ExchangeRate,
		"byteCost":     report.ByteCost,
		"totalBytes":   report.TotalBytes,
		"fee":          report.Fee,
	})
	if err != nil {
		return nil, s.toStatus("calculate", err)
	}
	return resp, nil
}

// TokenPrices — курсы AR и SOL в USD.
func (s *Server) TokenPrices(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	quote, err := s.uc.FetchTokenPrices(ctx)
	if err != nil {
		return nil, s.toStatus("token prices", err)
	}
	resp, err := structpb.NewStruct(map[string]any{
		"arweave": quote.ArweaveUSD,
		"solana":  quote.SolanaUSD,
	})
	if err != nil {
		return nil, s.toStatus("token prices", err)
	}
	return resp, nil
}

// StorageCost — {"totalBytes": N} -> стоимость хранения N байт в winston.
// Нет поля или не число — в юзкейс уходит NaN, он ответит InvalidArgument с упоминанием totalBytes.
func (s *Server) StorageCost(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error) {
	totalBytes := math.NaN()
	if n, ok := req.GetFields()["totalBytes"].GetKind().(*structpb.Value_NumberValue); ok {
		totalBytes = n.NumberValue
	}
	cost, err := s.uc.FetchStorageCost(ctx, totalBytes)
	if err != nil {
		return nil, s.toStatus("storage cost", err)
	}
	return wrapperspb.Int64(cost), nil
}
