package client

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/apache/spark-connect-client-go/sparkpb"
)

// execStream is the common shape of SparkConnectService_ExecutePlanClient
// and SparkConnectService_ReattachExecuteClient: the only thing the drive
// loop needs is Recv. Modeling it as its own interface keeps the loop
// itself agnostic to which RPC opened the stream it is currently reading.
type execStream interface {
	Recv() (*sparkpb.ExecutePlanResponse, error)
}

// execute is the state-machine entry point: Idle --execute--> Streaming.
// It resets the accumulator, opens the stream, and drives it to
// completion (including any number of reattaches), then releases
// server-side state according to how the operation ended.
func (c *Client) execute(ctx context.Context, req *sparkpb.ExecutePlanRequest) error {
	stream, err := c.openExecuteStream(ctx, req)
	if err != nil {
		return transportErr(err)
	}

	c.handler = responseAccumulator{}

	if err := c.drive(ctx, stream); err != nil {
		return err
	}

	if c.useReattachableExecute && c.handler.resultComplete {
		if err := c.releaseAll(ctx); err != nil {
			return err
		}
	}
	return nil
}

// drive reads one stream to its end, transparently reattaching on a
// premature EOF while reattachable execution is on. It is written as a
// loop over a "resume token" (the last-seen response id) rather than
// recursion, so an arbitrarily long run of mid-stream cutoffs never grows
// the call stack.
func (c *Client) drive(ctx context.Context, stream execStream) error {
	for {
		msg, err := stream.Recv()
		switch {
		case err == nil:
			if herr := c.handleResponse(msg); herr != nil {
				c.bestEffortReleaseUntil(ctx, herr)
				return herr
			}
			continue

		case errors.Is(err, io.EOF):
			if c.useReattachableExecute && !c.handler.resultComplete {
				c.logger.Debug("execute stream ended without completion, reattaching",
					zap.Stringp("last_response_id", c.responseID),
				)
				next, rerr := c.openReattachStream(ctx)
				if rerr != nil {
					return transportErr(rerr)
				}
				stream = next
				continue
			}
			return nil

		default:
			if c.responseID != nil {
				c.releaseUntilBestEffort(ctx)
			}
			return transportErr(err)
		}
	}
}

// bestEffortReleaseUntil is called when handleResponse itself fails (a
// framing error from a bad Arrow batch, or an Unimplemented extension
// payload). A session mismatch releases nothing: handleResponse validates
// the session before mutating any state, including response_id, so the
// accumulator stays untouched and this returns without a release call.
func (c *Client) bestEffortReleaseUntil(ctx context.Context, cause error) {
	var se *Error
	if errors.As(cause, &se) && se.Kind == KindSessionMismatch {
		return
	}
	if c.responseID != nil {
		c.releaseUntilBestEffort(ctx)
	}
}

// releaseUntilBestEffort issues ReleaseUntil and swallows its own error:
// a release failure must never override the primary error already in
// flight. It still logs the failure.
func (c *Client) releaseUntilBestEffort(ctx context.Context) {
	if err := c.releaseUntil(ctx); err != nil {
		c.logger.Warn("best-effort release-until failed", zap.Error(err))
	}
}

// openExecuteStream holds the stub lock only long enough to dial the RPC
// and obtain the stream handle: the lock never covers draining the stream.
func (c *Client) openExecuteStream(ctx context.Context, req *sparkpb.ExecutePlanRequest) (execStream, error) {
	c.mu.Lock()
	stream, err := c.stub.ExecutePlan(ctx, req)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return stream, nil
}

// openReattachStream resumes the current operation's stream from
// last_response_id. Precondition: c.operationID is set (execute was
// called at least once on this client since the last reset).
func (c *Client) openReattachStream(ctx context.Context) (execStream, error) {
	req := &sparkpb.ReattachExecuteRequest{
		SessionId:      c.identity.SessionID,
		UserContext:    c.identity.UserContext,
		OperationId:    *c.operationID,
		ClientType:     c.identity.UserAgent,
		LastResponseId: c.responseID,
	}

	c.mu.Lock()
	stream, err := c.stub.ReattachExecute(ctx, req)
	c.mu.Unlock()
	return stream, err
}
