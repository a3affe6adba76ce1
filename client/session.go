package client

import (
	"strings"

	"github.com/google/uuid"

	"github.com/apache/spark-connect-client-go/sparkpb"
)

// Identity is the immutable-after-construction part of a Client's state:
// the session id, user context, and user agent stamped on every outbound
// request. Minted once by channel.Builder (or supplied directly by a
// caller embedding this package without the channel collaborator).
type Identity struct {
	SessionID   string
	UserContext *sparkpb.UserContext
	UserAgent   string
}

// newOperationID mints a fresh UUIDv4 operation id. Spark Connect requires
// v4 randomness, not a time-ordered variant, since operation ids must not
// leak submission order to the server.
func newOperationID() string {
	return uuid.NewString()
}

// requestOptions returns the RequestOption list for a fresh
// ExecutePlanRequest. Reattach options come first and are the only option
// kind today; the slice is empty when reattachable execution is off.
func (c *Client) requestOptions() []*sparkpb.ExecutePlanRequest_RequestOption {
	if !c.useReattachableExecute {
		return nil
	}
	return []*sparkpb.ExecutePlanRequest_RequestOption{
		{
			RequestOption: &sparkpb.ExecutePlanRequest_RequestOption_ReattachOptions{
				ReattachOptions: &sparkpb.ReattachOptions{Reattachable: true},
			},
		},
	}
}

// buildExecuteRequest mints a fresh operation id, stores it on the
// client, and returns an ExecutePlanRequest stamped with every field
// except Plan, which the caller fills in.
func (c *Client) buildExecuteRequest() *sparkpb.ExecutePlanRequest {
	opID := newOperationID()
	c.operationID = &opID

	return &sparkpb.ExecutePlanRequest{
		SessionId:      c.identity.SessionID,
		UserContext:    c.identity.UserContext,
		OperationId:    &opID,
		ClientType:     c.identity.UserAgent,
		RequestOptions: c.requestOptions(),
		Tags:           append([]string(nil), c.tags...),
	}
}

// buildAnalyzeRequest stamps session/user-context/client-type; the caller
// sets Analyze.
func (c *Client) buildAnalyzeRequest() *sparkpb.AnalyzePlanRequest {
	return &sparkpb.AnalyzePlanRequest{
		SessionId:   c.identity.SessionID,
		UserContext: c.identity.UserContext,
		ClientType:  c.identity.UserAgent,
	}
}

// SessionID returns the session id stamped on every outbound request.
func (c *Client) SessionID() string { return c.identity.SessionID }

// SetReattachableExecute toggles whether future executions open a
// reattachable response stream. Takes effect on the next Execute call.
func (c *Client) SetReattachableExecute(on bool) { c.useReattachableExecute = on }

// validateTag fails with InvalidArgument if tag is empty or contains a
// comma — the server uses commas to delimit the tag list on the wire.
func validateTag(tag string) error {
	if tag == "" {
		return invalidArgument("tag must not be empty")
	}
	if strings.Contains(tag, ",") {
		return invalidArgument("tag must not contain ','")
	}
	return nil
}

// AddTag appends tag to the tag set after validating it. Duplicates are
// permitted; the server is the arbiter of what duplicate tags mean.
func (c *Client) AddTag(tag string) error {
	if err := validateTag(tag); err != nil {
		return err
	}
	c.tags = append(c.tags, tag)
	return nil
}

// RemoveTag removes every occurrence of tag, preserving the order of the
// survivors.
func (c *Client) RemoveTag(tag string) error {
	if err := validateTag(tag); err != nil {
		return err
	}
	kept := c.tags[:0]
	for _, t := range c.tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	c.tags = kept
	return nil
}

// Tags returns the current tag set in insertion order. The returned slice
// must not be mutated by the caller.
func (c *Client) Tags() []string { return c.tags }

// ClearTags empties the tag set.
func (c *Client) ClearTags() { c.tags = nil }
