package client

import (
	"context"

	"github.com/apache/spark-connect-client-go/sparkpb"
)

// releaseExecute issues ReleaseExecuteRequest with the given release mode
// and discards server-side state for everything it covers. The stub lock
// is held only for the call itself, same as execute/reattach.
func (c *Client) releaseExecute(ctx context.Context, release sparkpb.IsReleaseExecuteRequest_Release) error {
	if c.operationID == nil {
		return invalidArgument("release called before any operation id is known")
	}

	req := &sparkpb.ReleaseExecuteRequest{
		SessionId:   c.identity.SessionID,
		UserContext: c.identity.UserContext,
		OperationId: *c.operationID,
		ClientType:  c.identity.UserAgent,
		Release:     release,
	}

	c.mu.Lock()
	_, err := c.stub.ReleaseExecute(ctx, req)
	c.mu.Unlock()
	if err != nil {
		return transportErr(err)
	}
	return nil
}

// releaseUntil releases every response up to and including the last one
// this client observed. A nil response id is a caller error: there is
// nothing to release until.
func (c *Client) releaseUntil(ctx context.Context) error {
	if c.responseID == nil {
		return invalidArgument("release-until called before any response id is known")
	}
	return c.releaseExecute(ctx, &sparkpb.Release_ReleaseUntil{
		ReleaseUntil: &sparkpb.ReleaseExecuteRequest_ReleaseUntil{
			ResponseId: *c.responseID,
		},
	})
}

// releaseAll releases the entire operation. Called once, automatically,
// when a reattachable execution observes its own completion marker
// without the caller having to track it.
func (c *Client) releaseAll(ctx context.Context) error {
	return c.releaseExecute(ctx, &sparkpb.Release_ReleaseAll{
		ReleaseAll: &sparkpb.ReleaseExecuteRequest_ReleaseAll{},
	})
}
