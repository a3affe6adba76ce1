// Package client implements the Spark Connect driver: a single-session,
// single-in-flight-operation gRPC client over SparkConnectService. It owns
// the submit/stream/reattach/release lifecycle for ExecutePlan, the
// one-shot AnalyzePlan call, and the Config/Interrupt control calls.
package client

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/apache/spark-connect-client-go/sparkpb"
)

// Client drives one Spark Connect session over one gRPC channel. It is not
// safe for concurrent use from multiple goroutines: the mutex below
// serializes access to the stub itself (dialing an RPC and obtaining its
// stream handle), not the whole operation — a second call made while one
// is already in flight is a caller error, not something this type
// arbitrates.
type Client struct {
	mu   sync.Mutex
	stub sparkpb.SparkConnectServiceClient

	identity Identity

	operationID *string
	responseID  *string

	handler  responseAccumulator
	analyzer analyzeAccumulator

	tags                   []string
	useReattachableExecute bool

	logger *zap.Logger
}

// Close releases the last operation this client observed, if any. It is a
// no-op when no response id has ever been seen. Callers that embed this
// Client in a longer-lived handle (see channel.Session) should call this
// before tearing down the underlying connection.
func (c *Client) Close(ctx context.Context) error {
	if c.responseID == nil {
		return nil
	}
	return c.releaseUntil(ctx)
}

// New constructs a Client bound to stub and identity. Reattachable
// execution defaults to on. A nil logger is replaced with a no-op one so
// every call site can log unconditionally.
func New(stub sparkpb.SparkConnectServiceClient, identity Identity, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		stub:                   stub,
		identity:               identity,
		useReattachableExecute: true,
		logger:                 logger.Named("spark-connect-client"),
	}
}
