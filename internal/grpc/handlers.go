package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	pb "github.com/godilite/survey-dashboard/api/v1"
	"github.com/godilite/survey-dashboard/internal/charts"
	"github.com/godilite/survey-dashboard/internal/dataset"
	"github.com/godilite/survey-dashboard/internal/service"
	"github.com/godilite/survey-dashboard/internal/tooltip"
	grpcsrv "github.com/godilite/survey-dashboard/pkg/grpc/server"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
)

type CacheKeyType string

const (
	cacheKeyQuestionMeans CacheKeyType = "grpc:question_means"
	cacheKeyCrossTab      CacheKeyType = "grpc:cross_tab"
	cacheKeyNetPromoter   CacheKeyType = "grpc:net_promoter"
	cacheKeySummary       CacheKeyType = "grpc:summary"
)

var (
	errUnknownFeedback = errors.New("unknown feedback key")
	errEncode          = errors.New("response encoding failed")
)

type GRPCHandlers struct {
	pb.UnimplementedSurveyDashboardServer
	stats     StatsService
	describer Describer
	data      *dataset.Dataset
	cache     Cacher
	logger    *zap.Logger
	sfGroup   singleflight.Group
	cacheTTL  time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(stats StatsService, describer Describer, data *dataset.Dataset, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if stats == nil {
		panic("nil StatsService provided to NewGRPCHandlers")
	}
	if describer == nil {
		panic("nil Describer provided to NewGRPCHandlers")
	}
	if data == nil {
		panic("nil Dataset provided to NewGRPCHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		stats:     stats,
		describer: describer,
		data:      data,
		cache:     cache,
		logger:    logger.Named("grpc-handler"),
		cacheTTL:  ttl,
	}
}

func cacheKey(prefix CacheKeyType, parts ...any) string {
	if len(parts) == 0 {
		return string(prefix)
	}
	var sb strings.Builder
	sb.WriteString(string(prefix))
	for _, p := range parts {
		fmt.Fprintf(&sb, ":%v", p)
	}
	return sb.String()
}

// toStruct encodes v through its JSON form so response field names follow the json tags.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errEncode, err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", errEncode, err)
	}
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errEncode, err)
	}
	return out, nil
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	logger := s.logger.With(zap.String("request_id", grpcsrv.RequestIDFromContext(ctx)))

	switch ctx.Err() {
	case context.Canceled:
		logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		logger.Info("question not found", zap.String("op", op))
		return status.Error(codes.NotFound, "question not found")
	case errors.Is(err, service.ErrNoResponses):
		logger.Info("no responses found", zap.String("op", op))
		return status.Error(codes.NotFound, "no responses recorded")
	case errors.Is(err, charts.ErrUnknownKind), errors.Is(err, errUnknownFeedback):
		logger.Info("resource not found", zap.String("op", op), zap.Error(err))
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrStorageFailure):
		logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) respond(ctx context.Context, op string, v any) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		return nil, s.handleError(ctx, op, err)
	}
	return out, nil
}

type describeResponse struct {
	Rendered bool `json:"rendered"`
	*tooltip.FormattedDescription
}

// DescribeEvent formats a hover event. Inactive or empty events answer
// {"rendered": false} rather than an error.
func (s *GRPCHandlers) DescribeEvent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ev := tooltip.EventFromMap(req.AsMap())

	desc, ok := s.describer.Describe(ev)
	if !ok {
		return s.respond(ctx, "DescribeEvent", describeResponse{})
	}
	return s.respond(ctx, "DescribeEvent", describeResponse{Rendered: true, FormattedDescription: &desc})
}

func (s *GRPCHandlers) GetChart(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	kind := charts.Kind(strings.ToLower(strings.TrimSpace(req.GetValue())))
	if kind == "" {
		return nil, status.Error(codes.InvalidArgument, "chart kind is required")
	}

	chart, err := charts.ByKind(s.data, kind)
	if err != nil {
		return nil, s.handleError(ctx, "GetChart", err)
	}
	return s.respond(ctx, "GetChart", chart)
}

func (s *GRPCHandlers) GetQuestionMeans(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	means, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey(cacheKeyQuestionMeans), s.cacheTTL, s.logger, s.stats.GetQuestionMeans)
	if err != nil {
		return nil, s.handleError(ctx, "GetQuestionMeans", err)
	}

	return s.respond(ctx, "GetQuestionMeans", struct {
		Questions []service.QuestionMean `json:"questions"`
	}{means})
}

func (s *GRPCHandlers) GetCrossTab(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id := req.GetValue()
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "question id must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	table, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey(cacheKeyCrossTab, id), s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.CrossTab, error) {
		return s.stats.GetCrossTab(fetchCtx, int(id))
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetCrossTab", err)
	}
	return s.respond(ctx, "GetCrossTab", table)
}

func (s *GRPCHandlers) GetNetPromoter(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	nps, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey(cacheKeyNetPromoter), s.cacheTTL, s.logger, s.stats.GetNetPromoter)
	if err != nil {
		return nil, s.handleError(ctx, "GetNetPromoter", err)
	}
	return s.respond(ctx, "GetNetPromoter", nps)
}

func (s *GRPCHandlers) GetFeedback(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	key := strings.ToLower(strings.TrimSpace(req.GetValue()))
	if key == "" {
		return nil, status.Error(codes.InvalidArgument, "feedback key is required")
	}

	corpus, ok := s.data.FeedbackFor(key)
	if !ok {
		return nil, s.handleError(ctx, "GetFeedback", fmt.Errorf("%w: %q", errUnknownFeedback, key))
	}
	return s.respond(ctx, "GetFeedback", corpus)
}

func (s *GRPCHandlers) GetSummary(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	summary, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey(cacheKeySummary), s.cacheTTL, s.logger, s.stats.GetSummary)
	if err != nil {
		return nil, s.handleError(ctx, "GetSummary", err)
	}
	return s.respond(ctx, "GetSummary", summary)
}
