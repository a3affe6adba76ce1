package client

import (
	"github.com/apache/arrow/go/v18/arrow"

	"github.com/apache/spark-connect-client-go/sparkpb"
)

// responseAccumulator is the typed sink for one operation's streamed
// payloads: schema, metrics, decoded arrow batches, each command-result
// variant, and the completion flag. It is reset at the start of every
// Execute call, so a stale schema or metrics value from a prior operation
// never leaks into the next one's result.
type responseAccumulator struct {
	schema          *sparkpb.DataType
	metrics         *sparkpb.ExecutePlanResponse_Metrics
	observedMetrics *sparkpb.ExecutePlanResponse_ObservedMetrics

	batches    []arrow.Record
	totalCount int64 // signed: a negative value after overflow is a bug signal, not a valid count

	sqlCommandResult                   *sparkpb.ExecutePlanResponse_SqlCommandResult
	writeStreamOperationStartResult    *sparkpb.WriteStreamOperationStartResult
	streamingQueryCommandResult        *sparkpb.StreamingQueryCommandResult
	getResourcesCommandResult          *sparkpb.GetResourcesCommandResult
	streamingQueryManagerCommandResult *sparkpb.StreamingQueryManagerCommandResult

	resultComplete bool
}

// handleResponse is the per-message dispatch for a streamed response. It
// validates session binding first so a mismatched response never
// mutates the accumulator (testable property 1).
func (c *Client) handleResponse(resp *sparkpb.ExecutePlanResponse) error {
	if resp.SessionId != c.identity.SessionID {
		return sessionMismatch(
			"received response for session " + resp.SessionId + ", expected " + c.identity.SessionID,
		)
	}

	// The server is authoritative on both ids from this point forward.
	c.operationID = &resp.OperationId
	c.responseID = &resp.ResponseId

	if resp.Schema != nil {
		c.handler.schema = resp.Schema
	}
	if resp.Metrics != nil {
		c.handler.metrics = resp.Metrics
	}
	if resp.ObservedMetrics != nil {
		c.handler.observedMetrics = resp.ObservedMetrics
	}

	switch t := resp.ResponseType.(type) {
	case nil:
		// Metadata-only message (e.g. just a schema update) is valid.
	case *sparkpb.RespType_ArrowBatch:
		if err := c.ingestArrowBatch(t.ArrowBatch.Data, t.ArrowBatch.RowCount); err != nil {
			return err
		}
	case *sparkpb.RespType_SqlCommandResult:
		c.handler.sqlCommandResult = t.SqlCommandResult
	case *sparkpb.RespType_WriteStreamOperationStartResult:
		c.handler.writeStreamOperationStartResult = t.WriteStreamOperationStartResult
	case *sparkpb.RespType_StreamingQueryCommandResult:
		c.handler.streamingQueryCommandResult = t.StreamingQueryCommandResult
	case *sparkpb.RespType_GetResourcesCommandResult:
		c.handler.getResourcesCommandResult = t.GetResourcesCommandResult
	case *sparkpb.RespType_StreamingQueryManagerCommandResult:
		c.handler.streamingQueryManagerCommandResult = t.StreamingQueryManagerCommandResult
	case *sparkpb.RespType_ResultComplete:
		c.handler.resultComplete = true
	case *sparkpb.RespType_Extension:
		return unimplemented("extension response types are not implemented")
	default:
		// Forward-compatible default: an unrecognized variant is ignored
		// rather than treated as fatal. Only Extension is strict.
	}
	return nil
}

// ResponseSnapshot is an immutable copy of the accumulator returned by
// ExecuteCommandAndFetch.
type ResponseSnapshot struct {
	Schema                             *sparkpb.DataType
	Metrics                            *sparkpb.ExecutePlanResponse_Metrics
	ObservedMetrics                    *sparkpb.ExecutePlanResponse_ObservedMetrics
	Batches                            []arrow.Record
	TotalCount                         int64
	SqlCommandResult                   *sparkpb.ExecutePlanResponse_SqlCommandResult
	WriteStreamOperationStartResult    *sparkpb.WriteStreamOperationStartResult
	StreamingQueryCommandResult        *sparkpb.StreamingQueryCommandResult
	GetResourcesCommandResult          *sparkpb.GetResourcesCommandResult
	StreamingQueryManagerCommandResult *sparkpb.StreamingQueryManagerCommandResult
	ResultComplete                     bool
}

func (a responseAccumulator) snapshot() ResponseSnapshot {
	return ResponseSnapshot{
		Schema:                             a.schema,
		Metrics:                            a.metrics,
		ObservedMetrics:                    a.observedMetrics,
		Batches:                            append([]arrow.Record(nil), a.batches...),
		TotalCount:                         a.totalCount,
		SqlCommandResult:                   a.sqlCommandResult,
		WriteStreamOperationStartResult:    a.writeStreamOperationStartResult,
		StreamingQueryCommandResult:        a.streamingQueryCommandResult,
		GetResourcesCommandResult:          a.getResourcesCommandResult,
		StreamingQueryManagerCommandResult: a.streamingQueryManagerCommandResult,
		ResultComplete:                     a.resultComplete,
	}
}
