package client

import (
	"context"
	"io"

	"google.golang.org/grpc"

	"github.com/apache/spark-connect-client-go/sparkpb"
)

// fakeExecStream plays back a fixed response sequence, then returns err
// (or io.EOF if err is nil) forever after.
type fakeExecStream struct {
	msgs []*sparkpb.ExecutePlanResponse
	idx  int
	err  error
}

func (f *fakeExecStream) Recv() (*sparkpb.ExecutePlanResponse, error) {
	if f.idx < len(f.msgs) {
		m := f.msgs[f.idx]
		f.idx++
		return m, nil
	}
	if f.err != nil {
		return nil, f.err
	}
	return nil, io.EOF
}

// fakeStub is a scripted SparkConnectServiceClient: ExecutePlan returns the
// first stream in execStreams, each ReattachExecute call consumes the next
// one in order. ReleaseExecute calls are recorded for assertions; the
// other unary calls return their scripted response and error.
type fakeStub struct {
	execStreams []*fakeExecStream
	reattachIdx int

	releaseCalls []*sparkpb.ReleaseExecuteRequest
	releaseErr   error

	analyzeResp *sparkpb.AnalyzePlanResponse
	analyzeErr  error

	configResp *sparkpb.ConfigResponse
	configErr  error

	interruptResp *sparkpb.InterruptResponse
	interruptErr  error
}

func (f *fakeStub) ExecutePlan(ctx context.Context, in *sparkpb.ExecutePlanRequest, opts ...grpc.CallOption) (sparkpb.SparkConnectService_ExecutePlanClient, error) {
	return f.execStreams[0], nil
}

func (f *fakeStub) ReattachExecute(ctx context.Context, in *sparkpb.ReattachExecuteRequest, opts ...grpc.CallOption) (sparkpb.SparkConnectService_ReattachExecuteClient, error) {
	f.reattachIdx++
	return f.execStreams[f.reattachIdx], nil
}

func (f *fakeStub) ReleaseExecute(ctx context.Context, in *sparkpb.ReleaseExecuteRequest, opts ...grpc.CallOption) (*sparkpb.ReleaseExecuteResponse, error) {
	f.releaseCalls = append(f.releaseCalls, in)
	if f.releaseErr != nil {
		return nil, f.releaseErr
	}
	return &sparkpb.ReleaseExecuteResponse{SessionId: in.SessionId, OperationId: in.OperationId}, nil
}

func (f *fakeStub) AnalyzePlan(ctx context.Context, in *sparkpb.AnalyzePlanRequest, opts ...grpc.CallOption) (*sparkpb.AnalyzePlanResponse, error) {
	return f.analyzeResp, f.analyzeErr
}

func (f *fakeStub) Config(ctx context.Context, in *sparkpb.ConfigRequest, opts ...grpc.CallOption) (*sparkpb.ConfigResponse, error) {
	return f.configResp, f.configErr
}

func (f *fakeStub) Interrupt(ctx context.Context, in *sparkpb.InterruptRequest, opts ...grpc.CallOption) (*sparkpb.InterruptResponse, error) {
	return f.interruptResp, f.interruptErr
}
