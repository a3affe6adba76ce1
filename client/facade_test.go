package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apache/spark-connect-client-go/sparkpb"
)

func TestInterrupt_UnspecifiedIsInvalidArgument(t *testing.T) {
	c := newTestClient(&fakeStub{})
	_, err := c.Interrupt(context.Background(), sparkpb.InterruptTypeUnspecified, "")
	require.Error(t, err)

	var sparkErr *Error
	require.ErrorAs(t, err, &sparkErr)
	assert.Equal(t, KindInvalidArgument, sparkErr.Kind)
}

func TestInterrupt_TagRequiresIdOrTag(t *testing.T) {
	c := newTestClient(&fakeStub{})
	_, err := c.Interrupt(context.Background(), sparkpb.InterruptTypeTag, "")
	require.Error(t, err)

	var sparkErr *Error
	require.ErrorAs(t, err, &sparkErr)
	assert.Equal(t, KindInvalidArgument, sparkErr.Kind)
}

func TestInterrupt_AllNeedsNoTarget(t *testing.T) {
	stub := &fakeStub{interruptResp: &sparkpb.InterruptResponse{SessionId: "sess-1", InterruptedIds: []string{"op-1", "op-2"}}}
	c := newTestClient(stub)

	ids, err := c.Interrupt(context.Background(), sparkpb.InterruptTypeAll, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"op-1", "op-2"}, ids)
}

func TestInterrupt_SessionMismatch(t *testing.T) {
	stub := &fakeStub{interruptResp: &sparkpb.InterruptResponse{SessionId: "other"}}
	c := newTestClient(stub)

	_, err := c.Interrupt(context.Background(), sparkpb.InterruptTypeAll, "")
	require.Error(t, err)
	var sparkErr *Error
	require.ErrorAs(t, err, &sparkErr)
	assert.Equal(t, KindSessionMismatch, sparkErr.Kind)
}

func TestSetAndGetConfig(t *testing.T) {
	stub := &fakeStub{configResp: &sparkpb.ConfigResponse{SessionId: "sess-1", Pairs: map[string]string{"spark.sql.shuffle.partitions": "200"}}}
	c := newTestClient(stub)

	require.NoError(t, c.SetConfig(context.Background(), map[string]string{"spark.sql.shuffle.partitions": "200"}))

	pairs, err := c.GetConfig(context.Background(), []string{"spark.sql.shuffle.partitions"})
	require.NoError(t, err)
	assert.Equal(t, "200", pairs["spark.sql.shuffle.partitions"])
}

func TestGetConfigOption_ReturnsOnlyKeysTheServerHasValuesFor(t *testing.T) {
	stub := &fakeStub{configResp: &sparkpb.ConfigResponse{SessionId: "sess-1", Pairs: map[string]string{"spark.sql.shuffle.partitions": "200"}}}
	c := newTestClient(stub)

	pairs, err := c.GetConfigOption(context.Background(), []string{"spark.sql.shuffle.partitions", "spark.unset.key"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"spark.sql.shuffle.partitions": "200"}, pairs)

	_, ok := stub.configResp.Pairs["spark.unset.key"]
	assert.False(t, ok)
}

func TestAnalyze_SchemaRoundTrip(t *testing.T) {
	stub := &fakeStub{
		analyzeResp: &sparkpb.AnalyzePlanResponse{
			SessionId: "sess-1",
			Result:    &sparkpb.AnalyzeResult_Schema{Schema: &sparkpb.DataType{Kind: "struct"}},
		},
	}
	c := newTestClient(stub)

	require.NoError(t, c.Analyze(context.Background(), &sparkpb.Analyze_Schema{Plan: &sparkpb.Plan{}}))

	schema, err := c.Schema()
	require.NoError(t, err)
	assert.Equal(t, "struct", schema.Kind)
}

func TestAnalyze_ResetsStaleSlotsFromPriorCall(t *testing.T) {
	stub := &fakeStub{
		analyzeResp: &sparkpb.AnalyzePlanResponse{
			SessionId: "sess-1",
			Result:    &sparkpb.AnalyzeResult_Schema{Schema: &sparkpb.DataType{Kind: "struct"}},
		},
	}
	c := newTestClient(stub)
	require.NoError(t, c.Analyze(context.Background(), &sparkpb.Analyze_Schema{Plan: &sparkpb.Plan{}}))

	stub.analyzeResp = &sparkpb.AnalyzePlanResponse{
		SessionId: "sess-1",
		Result:    &sparkpb.AnalyzeResult_IsLocal{IsLocal: true},
	}
	require.NoError(t, c.Analyze(context.Background(), &sparkpb.Analyze_IsLocal{Plan: &sparkpb.Plan{}}))

	_, err := c.Schema()
	require.Error(t, err, "schema slot from the previous Analyze call must not leak into this one")
}
