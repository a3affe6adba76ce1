package sparkpb

import (
	"context"

	"google.golang.org/grpc"
)

// SparkConnectServiceClient is the client API for SparkConnectService, the
// shape protoc-gen-go-grpc would generate from the upstream
// spark/connect/base.proto service definition. The core never dials a
// *grpc.ClientConn directly: it is handed a value implementing this
// interface (see channel.Builder.Build), which keeps the stream-driver
// logic testable against a fake.
type SparkConnectServiceClient interface {
	ExecutePlan(ctx context.Context, in *ExecutePlanRequest, opts ...grpc.CallOption) (SparkConnectService_ExecutePlanClient, error)
	ReattachExecute(ctx context.Context, in *ReattachExecuteRequest, opts ...grpc.CallOption) (SparkConnectService_ReattachExecuteClient, error)
	ReleaseExecute(ctx context.Context, in *ReleaseExecuteRequest, opts ...grpc.CallOption) (*ReleaseExecuteResponse, error)
	AnalyzePlan(ctx context.Context, in *AnalyzePlanRequest, opts ...grpc.CallOption) (*AnalyzePlanResponse, error)
	Config(ctx context.Context, in *ConfigRequest, opts ...grpc.CallOption) (*ConfigResponse, error)
	Interrupt(ctx context.Context, in *InterruptRequest, opts ...grpc.CallOption) (*InterruptResponse, error)
}

// SparkConnectService_ExecutePlanClient is the server-streaming response
// handle for ExecutePlan, shaped like a generated `Recv()`-based stream
// client.
type SparkConnectService_ExecutePlanClient interface {
	Recv() (*ExecutePlanResponse, error)
}

// SparkConnectService_ReattachExecuteClient is the analogous stream handle
// for ReattachExecute.
type SparkConnectService_ReattachExecuteClient interface {
	Recv() (*ExecutePlanResponse, error)
}

// sparkConnectServiceClient is the concrete client built atop a real
// *grpc.ClientConn, the equivalent of what protoc-gen-go-grpc emits as the
// unexported implementation behind NewSparkConnectServiceClient.
type sparkConnectServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSparkConnectServiceClient constructs the generated-style client stub
// around a dialed connection.
func NewSparkConnectServiceClient(cc grpc.ClientConnInterface) SparkConnectServiceClient {
	return &sparkConnectServiceClient{cc: cc}
}

const (
	serviceName           = "spark.connect.SparkConnectService"
	executePlanMethod     = "/" + serviceName + "/ExecutePlan"
	reattachExecuteMethod = "/" + serviceName + "/ReattachExecute"
	releaseExecuteMethod  = "/" + serviceName + "/ReleaseExecute"
	analyzePlanMethod     = "/" + serviceName + "/AnalyzePlan"
	configMethod          = "/" + serviceName + "/Config"
	interruptMethod       = "/" + serviceName + "/Interrupt"
)

func (c *sparkConnectServiceClient) ExecutePlan(ctx context.Context, in *ExecutePlanRequest, opts ...grpc.CallOption) (SparkConnectService_ExecutePlanClient, error) {
	stream, err := c.cc.NewStream(ctx, &grpc.StreamDesc{StreamName: "ExecutePlan", ServerStreams: true}, executePlanMethod, opts...)
	if err != nil {
		return nil, err
	}
	cs := &genericClientStream{ClientStream: stream}
	if err := cs.SendMsg(in); err != nil {
		return nil, err
	}
	if err := cs.CloseSend(); err != nil {
		return nil, err
	}
	return &executePlanClient{cs}, nil
}

func (c *sparkConnectServiceClient) ReattachExecute(ctx context.Context, in *ReattachExecuteRequest, opts ...grpc.CallOption) (SparkConnectService_ReattachExecuteClient, error) {
	stream, err := c.cc.NewStream(ctx, &grpc.StreamDesc{StreamName: "ReattachExecute", ServerStreams: true}, reattachExecuteMethod, opts...)
	if err != nil {
		return nil, err
	}
	cs := &genericClientStream{ClientStream: stream}
	if err := cs.SendMsg(in); err != nil {
		return nil, err
	}
	if err := cs.CloseSend(); err != nil {
		return nil, err
	}
	return &reattachExecuteClient{cs}, nil
}

func (c *sparkConnectServiceClient) ReleaseExecute(ctx context.Context, in *ReleaseExecuteRequest, opts ...grpc.CallOption) (*ReleaseExecuteResponse, error) {
	out := new(ReleaseExecuteResponse)
	if err := c.cc.Invoke(ctx, releaseExecuteMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sparkConnectServiceClient) AnalyzePlan(ctx context.Context, in *AnalyzePlanRequest, opts ...grpc.CallOption) (*AnalyzePlanResponse, error) {
	out := new(AnalyzePlanResponse)
	if err := c.cc.Invoke(ctx, analyzePlanMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sparkConnectServiceClient) Config(ctx context.Context, in *ConfigRequest, opts ...grpc.CallOption) (*ConfigResponse, error) {
	out := new(ConfigResponse)
	if err := c.cc.Invoke(ctx, configMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sparkConnectServiceClient) Interrupt(ctx context.Context, in *InterruptRequest, opts ...grpc.CallOption) (*InterruptResponse, error) {
	out := new(InterruptResponse)
	if err := c.cc.Invoke(ctx, interruptMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type genericClientStream struct {
	grpc.ClientStream
}

type executePlanClient struct{ *genericClientStream }

func (c *executePlanClient) Recv() (*ExecutePlanResponse, error) {
	m := new(ExecutePlanResponse)
	if err := c.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type reattachExecuteClient struct{ *genericClientStream }

func (c *reattachExecuteClient) Recv() (*ExecutePlanResponse, error) {
	m := new(ExecutePlanResponse)
	if err := c.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
