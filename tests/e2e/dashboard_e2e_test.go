//go:build e2e

package e2e

import (
	"context"
	"strings"
	"testing"
	"time"

	pb "github.com/godilite/survey-dashboard/api/v1"
	"github.com/godilite/survey-dashboard/internal/charts"
	"github.com/godilite/survey-dashboard/internal/dataset"
	handler "github.com/godilite/survey-dashboard/internal/grpc"
	"github.com/godilite/survey-dashboard/internal/repository"
	"github.com/godilite/survey-dashboard/internal/service"
	"github.com/godilite/survey-dashboard/internal/tooltip"
	dbbuilder "github.com/godilite/survey-dashboard/pkg/database"
	grpcsrv "github.com/godilite/survey-dashboard/pkg/grpc/server"
	"github.com/godilite/survey-dashboard/tests/e2e/mocks"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stack struct {
	client *pb.SurveyDashboardClient
	conn   *grpc.ClientConn
	cache  *mocks.InMemoryCache
	data   *dataset.Dataset
	srv    *grpcsrv.Server
}

func setupStack(t *testing.T) *stack {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()
	ds := dataset.Builtin()
	require.NoError(t, ds.Validate())

	db, err := dbbuilder.New(dbbuilder.WithDataSource(":memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewSurveyStatsRepository(db)
	require.NoError(t, repo.Migrate(ctx))
	require.NoError(t, repo.Seed(ctx, ds))

	cache := mocks.NewInMemoryCache()
	svc := service.NewStatsService(repo, ds, logger)
	h := handler.NewGRPCHandlers(svc, tooltip.NewDispatcher(), ds, cache, logger, 5*time.Minute)

	srv, err := grpcsrv.New(
		grpcsrv.WithPort(0),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithUnaryInterceptors(grpcsrv.RequestIDInterceptor()),
		grpcsrv.WithLogging(true),
	)
	require.NoError(t, err)
	srv.Register(pb.ServiceName, func(r grpc.ServiceRegistrar) {
		pb.RegisterSurveyDashboardServer(r, h)
	})
	srv.Start()
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	})

	conn, err := grpc.NewClient(srv.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &stack{
		client: pb.NewSurveyDashboardClient(conn),
		conn:   conn,
		cache:  cache,
		data:   ds,
		srv:    srv,
	}
}

func callCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestE2E_HealthReportsService(t *testing.T) {
	s := setupStack(t)

	resp, err := healthpb.NewHealthClient(s.conn).Check(callCtx(t), &healthpb.HealthCheckRequest{Service: pb.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

func TestE2E_HealthReportsDraining(t *testing.T) {
	s := setupStack(t)
	hc := healthpb.NewHealthClient(s.conn)

	s.srv.SetServiceHealth(pb.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	resp, err := hc.Check(callCtx(t), &healthpb.HealthCheckRequest{Service: pb.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)

	// The server as a whole stays up while the dashboard drains.
	resp, err = hc.Check(callCtx(t), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

func TestE2E_ResponsesCarryRequestID(t *testing.T) {
	s := setupStack(t)

	var header metadata.MD
	_, err := s.client.GetSummary(
		metadata.AppendToOutgoingContext(callCtx(t), grpcsrv.RequestIDHeader, "req-e2e"),
		&emptypb.Empty{},
		grpc.Header(&header),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"req-e2e"}, header.Get(grpcsrv.RequestIDHeader))
}

// Every hover of every chart goes over the wire and comes back formatted.
func TestE2E_DescribeEveryChartHover(t *testing.T) {
	s := setupStack(t)
	ctx := callCtx(t)

	for _, kind := range charts.Kinds() {
		chart, err := charts.ByKind(s.data, kind)
		require.NoError(t, err)

		for i := 0; i < chart.Len(); i++ {
			req, err := structpb.NewStruct(chart.EventAt(i).ToMap())
			require.NoError(t, err)

			resp, err := s.client.DescribeEvent(ctx, req)
			require.NoError(t, err, "%s[%d]", kind, i)

			m := resp.AsMap()
			require.Equal(t, true, m["rendered"], "%s[%d]", kind, i)
			lines := m["lines"].([]any)

			switch kind {
			case charts.KindPie:
				require.Len(t, lines, 1)
				assert.Nil(t, m["scale_max"])
				assert.True(t, strings.HasSuffix(lines[0].(map[string]any)["value"].(string), " participantes"))
			case charts.KindArea:
				assert.Nil(t, m["scale_max"])
				for _, l := range lines {
					assert.True(t, strings.HasSuffix(l.(map[string]any)["value"].(string), " persona(s)"))
				}
			case charts.KindRadar:
				assert.Equal(t, float64(10), m["scale_max"])
			case charts.KindBar:
				assert.Equal(t, float64(5), m["scale_max"])
			}
		}
	}
}

func TestE2E_DescribeInactiveEvent(t *testing.T) {
	s := setupStack(t)

	resp, err := s.client.DescribeEvent(callCtx(t), &structpb.Struct{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"rendered": false}, resp.AsMap())
}

func TestE2E_CrossTabMatchesDataset(t *testing.T) {
	s := setupStack(t)
	ctx := callCtx(t)

	for _, q := range s.data.AllQuestions() {
		resp, err := s.client.GetCrossTab(ctx, wrapperspb.Int64(int64(q.ID)))
		require.NoError(t, err)

		m := resp.AsMap()
		assert.Equal(t, float64(q.Scale), m["scale"])
		assert.Len(t, m["rows"], q.Scale)
		assert.Equal(t, float64(q.G1.Total()), m["total_g1"])
		assert.Equal(t, float64(q.G2.Total()), m["total_g2"])
	}

	_, err := s.client.GetCrossTab(ctx, wrapperspb.Int64(999))
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestE2E_NetPromoterMatchesSegments(t *testing.T) {
	s := setupStack(t)

	resp, err := s.client.GetNetPromoter(callCtx(t), &emptypb.Empty{})
	require.NoError(t, err)

	m := resp.AsMap()
	segments := s.data.Segments()
	assert.Equal(t, float64(segments[0].Count), m["promoters"])
	assert.Equal(t, float64(segments[1].Count), m["passives"])
	assert.Equal(t, float64(segments[2].Count), m["detractors"])
	assert.Equal(t, float64(s.data.TotalRespondents()), m["total"])
}

func TestE2E_QuestionMeansAreCached(t *testing.T) {
	s := setupStack(t)
	ctx := callCtx(t)

	first, err := s.client.GetQuestionMeans(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Len(t, first.AsMap()["questions"], len(s.data.AllQuestions()))

	require.Eventually(t, func() bool {
		return s.cache.Has("grpc:question_means")
	}, time.Second, 10*time.Millisecond)

	second, err := s.client.GetQuestionMeans(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, first.AsMap(), second.AsMap())
}

func TestE2E_ChartAndFeedbackLookups(t *testing.T) {
	s := setupStack(t)
	ctx := callCtx(t)

	chart, err := s.client.GetChart(ctx, wrapperspb.String("radar"))
	require.NoError(t, err)
	assert.Equal(t, "subject", chart.AsMap()["category_key"])

	_, err = s.client.GetChart(ctx, wrapperspb.String("gauge"))
	assert.Equal(t, codes.NotFound, status.Code(err))

	for _, f := range s.data.Feedback() {
		resp, err := s.client.GetFeedback(ctx, wrapperspb.String(f.Key))
		require.NoError(t, err)
		assert.Equal(t, f.Title, resp.AsMap()["title"])
	}

	_, err = s.client.GetFeedback(ctx, wrapperspb.String(""))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestE2E_Summary(t *testing.T) {
	s := setupStack(t)

	resp, err := s.client.GetSummary(callCtx(t), &emptypb.Empty{})
	require.NoError(t, err)

	m := resp.AsMap()
	kpis := s.data.KPIs()
	assert.Equal(t, float64(kpis.TotalResponses()), m["total_responses"])
	assert.InDelta(t, kpis.GlobalMean(), m["global_mean"], 1e-9)
}
