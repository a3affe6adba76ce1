package client

import (
	"context"

	"github.com/apache/spark-connect-client-go/sparkpb"
)

// Analyze issues one AnalyzePlan call, resets the analyze accumulator, and
// dispatches the single response into it. It is a one-shot
// unary call: unlike Execute there is no stream, no reattach, no release.
func (c *Client) Analyze(ctx context.Context, analyze sparkpb.IsAnalyzePlanRequest_Analyze) error {
	req := c.buildAnalyzeRequest()
	req.Analyze = analyze

	c.mu.Lock()
	resp, err := c.stub.AnalyzePlan(ctx, req)
	c.mu.Unlock()
	if err != nil {
		return transportErr(err)
	}

	c.analyzer = analyzeAccumulator{}
	return c.handleAnalyze(resp)
}

// config issues one Config call and returns the server's raw pairs and
// warnings. The typed wrappers below are the ergonomic surface; they all
// funnel through here.
func (c *Client) config(ctx context.Context, op sparkpb.IsConfigRequest_Operation) (map[string]string, []string, error) {
	req := &sparkpb.ConfigRequest{
		SessionId:   c.identity.SessionID,
		UserContext: c.identity.UserContext,
		ClientType:  c.identity.UserAgent,
		Operation:   op,
	}

	c.mu.Lock()
	resp, err := c.stub.Config(ctx, req)
	c.mu.Unlock()
	if err != nil {
		return nil, nil, transportErr(err)
	}
	if resp.SessionId != c.identity.SessionID {
		return nil, nil, sessionMismatch(
			"received config response for session " + resp.SessionId + ", expected " + c.identity.SessionID,
		)
	}
	return resp.Pairs, resp.Warnings, nil
}

// SetConfig sets one or more key/value pairs.
func (c *Client) SetConfig(ctx context.Context, pairs map[string]string) error {
	_, _, err := c.config(ctx, &sparkpb.ConfigRequest_Set{Pairs: pairs})
	return err
}

// GetConfig returns the current values of keys. A key with no value set is
// the server's concern, not this method's: the response comes back
// verbatim.
func (c *Client) GetConfig(ctx context.Context, keys []string) (map[string]string, error) {
	pairs, _, err := c.config(ctx, &sparkpb.ConfigRequest_Get{Keys: keys})
	return pairs, err
}

// GetConfigOption is like GetConfig, but a key the server has no value for
// is simply absent from the returned map instead of the server raising an
// error for it.
func (c *Client) GetConfigOption(ctx context.Context, keys []string) (map[string]string, error) {
	pairs, _, err := c.config(ctx, &sparkpb.ConfigRequest_GetOption{Keys: keys})
	return pairs, err
}

// GetConfigWithDefault returns values for the keys in defaults, falling
// back to the supplied default per key when the server has nothing set.
func (c *Client) GetConfigWithDefault(ctx context.Context, defaults map[string]string) (map[string]string, error) {
	pairs, _, err := c.config(ctx, &sparkpb.ConfigRequest_GetWithDefault{Pairs: defaults})
	return pairs, err
}

// UnsetConfig clears the given keys.
func (c *Client) UnsetConfig(ctx context.Context, keys []string) error {
	_, _, err := c.config(ctx, &sparkpb.ConfigRequest_Unset{Keys: keys})
	return err
}

// GetAllConfig returns every key/value pair whose key has the given
// prefix, or every pair if prefix is nil.
func (c *Client) GetAllConfig(ctx context.Context, prefix *string) (map[string]string, error) {
	pairs, _, err := c.config(ctx, &sparkpb.ConfigRequest_GetAll{Prefix: prefix})
	return pairs, err
}

// IsConfigModifiable reports, per key, whether the key can be set at
// runtime. The result comes back as the same pairs map, with "true"/"false"
// string values, matching the wire contract.
func (c *Client) IsConfigModifiable(ctx context.Context, keys []string) (map[string]string, error) {
	pairs, _, err := c.config(ctx, &sparkpb.ConfigRequest_IsModifiable{Keys: keys})
	return pairs, err
}

// Interrupt asks the server to interrupt operations on the session. All
// requires no further argument; Tag and OperationId require idOrTag to be
// non-empty. InterruptTypeUnspecified is always a caller error.
func (c *Client) Interrupt(ctx context.Context, kind sparkpb.InterruptType, idOrTag string) ([]string, error) {
	req := &sparkpb.InterruptRequest{
		SessionId:     c.identity.SessionID,
		UserContext:   c.identity.UserContext,
		ClientType:    c.identity.UserAgent,
		InterruptType: kind,
	}

	switch kind {
	case sparkpb.InterruptTypeUnspecified:
		return nil, invalidArgument("interrupt type must not be unspecified")
	case sparkpb.InterruptTypeAll:
		// No further argument required.
	case sparkpb.InterruptTypeTag:
		if idOrTag == "" {
			return nil, invalidArgument("interrupt by tag requires a non-empty tag")
		}
		req.Interrupt = &sparkpb.Interrupt_OperationTag{OperationTag: idOrTag}
	case sparkpb.InterruptTypeOperationId:
		if idOrTag == "" {
			return nil, invalidArgument("interrupt by operation id requires a non-empty id")
		}
		req.Interrupt = &sparkpb.Interrupt_OperationId{OperationId: idOrTag}
	default:
		return nil, invalidArgument("unknown interrupt type")
	}

	c.mu.Lock()
	resp, err := c.stub.Interrupt(ctx, req)
	c.mu.Unlock()
	if err != nil {
		return nil, transportErr(err)
	}
	if resp.SessionId != c.identity.SessionID {
		return nil, sessionMismatch(
			"received interrupt response for session " + resp.SessionId + ", expected " + c.identity.SessionID,
		)
	}
	return resp.InterruptedIds, nil
}
