// Package v1 defines the survey.v1.SurveyDashboard gRPC service. Requests and
// responses are protobuf well-known types, so the service is declared by hand
// rather than generated from a .proto file.
package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "survey.v1.SurveyDashboard"

const (
	MethodDescribeEvent    = "/" + ServiceName + "/DescribeEvent"
	MethodGetChart         = "/" + ServiceName + "/GetChart"
	MethodGetQuestionMeans = "/" + ServiceName + "/GetQuestionMeans"
	MethodGetCrossTab      = "/" + ServiceName + "/GetCrossTab"
	MethodGetNetPromoter   = "/" + ServiceName + "/GetNetPromoter"
	MethodGetFeedback      = "/" + ServiceName + "/GetFeedback"
	MethodGetSummary       = "/" + ServiceName + "/GetSummary"
)

// SurveyDashboardServer is the server API for the SurveyDashboard service.
type SurveyDashboardServer interface {
	// DescribeEvent formats one chart hover event.
	DescribeEvent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// GetChart returns the configuration and data of a chart by kind.
	GetChart(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	GetQuestionMeans(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	// GetCrossTab returns the frequency table of one question by id.
	GetCrossTab(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	GetNetPromoter(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	// GetFeedback returns a free-text corpus by key ("q8", "q9").
	GetFeedback(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	GetSummary(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// UnimplementedSurveyDashboardServer can be embedded for forward compatibility.
type UnimplementedSurveyDashboardServer struct{}

func (UnimplementedSurveyDashboardServer) DescribeEvent(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method DescribeEvent not implemented")
}

func (UnimplementedSurveyDashboardServer) GetChart(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetChart not implemented")
}

func (UnimplementedSurveyDashboardServer) GetQuestionMeans(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetQuestionMeans not implemented")
}

func (UnimplementedSurveyDashboardServer) GetCrossTab(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCrossTab not implemented")
}

func (UnimplementedSurveyDashboardServer) GetNetPromoter(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetNetPromoter not implemented")
}

func (UnimplementedSurveyDashboardServer) GetFeedback(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFeedback not implemented")
}

func (UnimplementedSurveyDashboardServer) GetSummary(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSummary not implemented")
}

// RegisterSurveyDashboardServer registers srv on s.
func RegisterSurveyDashboardServer(s grpc.ServiceRegistrar, srv SurveyDashboardServer) {
	s.RegisterService(&SurveyDashboard_ServiceDesc, srv)
}

// unaryHandler adapts one typed server method to grpc.MethodDesc.
func unaryHandler[Req any](
	fullMethod string,
	newReq func() *Req,
	call func(SurveyDashboardServer, context.Context, *Req) (*structpb.Struct, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SurveyDashboardServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SurveyDashboardServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func newStruct() *structpb.Struct        { return new(structpb.Struct) }
func newEmpty() *emptypb.Empty           { return new(emptypb.Empty) }
func newString() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }
func newInt64() *wrapperspb.Int64Value   { return new(wrapperspb.Int64Value) }

// SurveyDashboard_ServiceDesc is the grpc.ServiceDesc for the SurveyDashboard service.
var SurveyDashboard_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SurveyDashboardServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "DescribeEvent",
			Handler: unaryHandler(MethodDescribeEvent, newStruct,
				func(s SurveyDashboardServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return s.DescribeEvent(ctx, in)
				}),
		},
		{
			MethodName: "GetChart",
			Handler: unaryHandler(MethodGetChart, newString,
				func(s SurveyDashboardServer, ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
					return s.GetChart(ctx, in)
				}),
		},
		{
			MethodName: "GetQuestionMeans",
			Handler: unaryHandler(MethodGetQuestionMeans, newEmpty,
				func(s SurveyDashboardServer, ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
					return s.GetQuestionMeans(ctx, in)
				}),
		},
		{
			MethodName: "GetCrossTab",
			Handler: unaryHandler(MethodGetCrossTab, newInt64,
				func(s SurveyDashboardServer, ctx context.Context, in *wrapperspb.Int64Value) (*structpb.Struct, error) {
					return s.GetCrossTab(ctx, in)
				}),
		},
		{
			MethodName: "GetNetPromoter",
			Handler: unaryHandler(MethodGetNetPromoter, newEmpty,
				func(s SurveyDashboardServer, ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
					return s.GetNetPromoter(ctx, in)
				}),
		},
		{
			MethodName: "GetFeedback",
			Handler: unaryHandler(MethodGetFeedback, newString,
				func(s SurveyDashboardServer, ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
					return s.GetFeedback(ctx, in)
				}),
		},
		{
			MethodName: "GetSummary",
			Handler: unaryHandler(MethodGetSummary, newEmpty,
				func(s SurveyDashboardServer, ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
					return s.GetSummary(ctx, in)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "survey/v1/dashboard.proto",
}

// SurveyDashboardClient is the client API for the SurveyDashboard service.
type SurveyDashboardClient struct {
	cc grpc.ClientConnInterface
}

func NewSurveyDashboardClient(cc grpc.ClientConnInterface) *SurveyDashboardClient {
	return &SurveyDashboardClient{cc: cc}
}

func (c *SurveyDashboardClient) DescribeEvent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodDescribeEvent, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SurveyDashboardClient) GetChart(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodGetChart, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SurveyDashboardClient) GetQuestionMeans(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodGetQuestionMeans, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SurveyDashboardClient) GetCrossTab(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodGetCrossTab, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SurveyDashboardClient) GetNetPromoter(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodGetNetPromoter, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SurveyDashboardClient) GetFeedback(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodGetFeedback, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SurveyDashboardClient) GetSummary(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodGetSummary, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
