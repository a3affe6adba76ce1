package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/apache/spark-connect-client-go/sparkpb"
)

func newTestClient(stub sparkpb.SparkConnectServiceClient) *Client {
	return New(stub, Identity{SessionID: "sess-1", UserAgent: "test"}, zap.NewNop())
}

func TestExecute_ReattachesOnPrematureEOF(t *testing.T) {
	first := &fakeExecStream{
		msgs: []*sparkpb.ExecutePlanResponse{
			{SessionId: "sess-1", OperationId: "op-1", ResponseId: "resp-1"},
		},
		// No result_complete: Recv returns io.EOF next, simulating a
		// mid-stream cutoff.
	}
	second := &fakeExecStream{
		msgs: []*sparkpb.ExecutePlanResponse{
			{
				SessionId:    "sess-1",
				OperationId:  "op-1",
				ResponseId:   "resp-2",
				ResponseType: &sparkpb.RespType_ResultComplete{ResultComplete: &sparkpb.ExecutePlanResponse_ResultComplete{}},
			},
		},
	}
	stub := &fakeStub{execStreams: []*fakeExecStream{first, second}}
	c := newTestClient(stub)

	err := c.ExecuteCommand(context.Background(), &sparkpb.Plan{})
	require.NoError(t, err)

	assert.Equal(t, 1, stub.reattachIdx, "expected exactly one reattach")
	assert.True(t, c.handler.resultComplete)
	require.Len(t, stub.releaseCalls, 1, "completion under reattachable execute releases exactly once")
	_, isAll := stub.releaseCalls[0].Release.(*sparkpb.Release_ReleaseAll)
	assert.True(t, isAll, "expected a ReleaseAll on graceful completion")
}

func TestExecute_SessionMismatchLeavesAccumulatorUntouched(t *testing.T) {
	stream := &fakeExecStream{
		msgs: []*sparkpb.ExecutePlanResponse{
			{SessionId: "other-session", OperationId: "op-1", ResponseId: "resp-1"},
		},
	}
	stub := &fakeStub{execStreams: []*fakeExecStream{stream}}
	c := newTestClient(stub)

	err := c.ExecuteCommand(context.Background(), &sparkpb.Plan{})
	require.Error(t, err)

	var sparkErr *Error
	require.ErrorAs(t, err, &sparkErr)
	assert.Equal(t, KindSessionMismatch, sparkErr.Kind)

	require.NotNil(t, c.operationID)
	assert.NotEmpty(t, *c.operationID, "locally minted operation id must survive a rejected response")
	assert.Nil(t, c.responseID, "response id must never be set from a mismatched response")
	assert.Empty(t, stub.releaseCalls, "a session mismatch must never trigger a release")
}

func TestExecute_FramingErrorTriggersBestEffortReleaseUntil(t *testing.T) {
	stream := &fakeExecStream{
		msgs: []*sparkpb.ExecutePlanResponse{
			{
				SessionId:   "sess-1",
				OperationId: "op-1",
				ResponseId:  "resp-1",
				ResponseType: &sparkpb.RespType_ArrowBatch{
					ArrowBatch: &sparkpb.ExecutePlanResponse_ArrowBatch{Data: []byte("not a valid arrow stream"), RowCount: 1},
				},
			},
		},
	}
	stub := &fakeStub{execStreams: []*fakeExecStream{stream}}
	c := newTestClient(stub)

	err := c.ExecuteCommand(context.Background(), &sparkpb.Plan{})
	require.Error(t, err)

	var sparkErr *Error
	require.ErrorAs(t, err, &sparkErr)
	assert.Equal(t, KindFraming, sparkErr.Kind)

	require.Len(t, stub.releaseCalls, 1)
	_, isUntil := stub.releaseCalls[0].Release.(*sparkpb.Release_ReleaseUntil)
	assert.True(t, isUntil, "a failure after a response id is known releases best-effort until that id")
}

func TestExecute_TransportErrorAfterOneBatchReleasesUntilLastResponse(t *testing.T) {
	stream := &fakeExecStream{
		msgs: []*sparkpb.ExecutePlanResponse{
			{SessionId: "sess-1", OperationId: "op-1", ResponseId: "resp-1"},
		},
		err: status.Error(codes.Unavailable, "connection reset by peer"),
	}
	stub := &fakeStub{execStreams: []*fakeExecStream{stream}}
	c := newTestClient(stub)

	err := c.ExecuteCommand(context.Background(), &sparkpb.Plan{})
	require.Error(t, err)

	var sparkErr *Error
	require.ErrorAs(t, err, &sparkErr)
	assert.Equal(t, KindTransport, sparkErr.Kind)

	require.Len(t, stub.releaseCalls, 1, "a transport error after at least one response releases best-effort until the last one seen")
	_, isUntil := stub.releaseCalls[0].Release.(*sparkpb.Release_ReleaseUntil)
	assert.True(t, isUntil)
}

func TestExecute_NonReattachableCompletionSkipsRelease(t *testing.T) {
	stream := &fakeExecStream{
		msgs: []*sparkpb.ExecutePlanResponse{
			{
				SessionId:    "sess-1",
				OperationId:  "op-1",
				ResponseId:   "resp-1",
				ResponseType: &sparkpb.RespType_ResultComplete{ResultComplete: &sparkpb.ExecutePlanResponse_ResultComplete{}},
			},
		},
	}
	stub := &fakeStub{execStreams: []*fakeExecStream{stream}}
	c := newTestClient(stub)
	c.SetReattachableExecute(false)

	err := c.ExecuteCommand(context.Background(), &sparkpb.Plan{})
	require.NoError(t, err)
	assert.Empty(t, stub.releaseCalls, "non-reattachable execution never auto-releases")
}

func TestExecute_ExtensionResponseIsUnimplemented(t *testing.T) {
	stream := &fakeExecStream{
		msgs: []*sparkpb.ExecutePlanResponse{
			{
				SessionId:    "sess-1",
				OperationId:  "op-1",
				ResponseId:   "resp-1",
				ResponseType: &sparkpb.RespType_Extension{Extension: &sparkpb.Any{}},
			},
		},
	}
	stub := &fakeStub{execStreams: []*fakeExecStream{stream}}
	c := newTestClient(stub)

	err := c.ExecuteCommand(context.Background(), &sparkpb.Plan{})
	require.Error(t, err)

	var sparkErr *Error
	require.ErrorAs(t, err, &sparkErr)
	assert.Equal(t, KindUnimplemented, sparkErr.Kind)
}
