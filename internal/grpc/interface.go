package grpc

import (
	"context"
	"time"

	"github.com/godilite/survey-dashboard/internal/service"
	"github.com/godilite/survey-dashboard/internal/tooltip"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

type StatsService interface {
	GetQuestionMeans(ctx context.Context) ([]service.QuestionMean, error)
	GetCrossTab(ctx context.Context, questionID int) (service.CrossTab, error)
	GetNetPromoter(ctx context.Context) (service.NetPromoter, error)
	GetSummary(ctx context.Context) (service.Summary, error)
}

// Describer turns a hover event into panel content.
type Describer interface {
	Describe(ev tooltip.ActiveEvent) (tooltip.FormattedDescription, bool)
}
