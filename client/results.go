package client

import (
	"context"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"

	"github.com/apache/spark-connect-client-go/sparkpb"
)

// ExecuteCommand submits plan and drives it to completion, discarding the
// accumulated result: the caller only cares that the command ran. Useful
// for side-effecting commands (CREATE TABLE, CACHE TABLE, ...).
func (c *Client) ExecuteCommand(ctx context.Context, plan *sparkpb.Plan) error {
	req := c.buildExecuteRequest()
	req.Plan = plan
	return c.execute(ctx, req)
}

// ExecuteCommandAndFetch submits plan, drives it to completion, and
// returns an immutable snapshot of everything the accumulator collected.
func (c *Client) ExecuteCommandAndFetch(ctx context.Context, plan *sparkpb.Plan) (ResponseSnapshot, error) {
	req := c.buildExecuteRequest()
	req.Plan = plan
	if err := c.execute(ctx, req); err != nil {
		return ResponseSnapshot{}, err
	}
	return c.handler.snapshot(), nil
}

// ToArrow submits plan, then folds every accumulated Arrow batch into a
// single table against the first batch's schema. Zero batches is an
// Analysis error rather than an empty table: a caller asking for a table
// has implicitly asked for at least one schema to describe it, and none
// arrived.
func (c *Client) ToArrow(ctx context.Context, plan *sparkpb.Plan) (arrow.Table, error) {
	snap, err := c.ExecuteCommandAndFetch(ctx, plan)
	if err != nil {
		return nil, err
	}
	return tableFromBatches(snap.Batches)
}

func tableFromBatches(batches []arrow.Record) (arrow.Table, error) {
	if len(batches) == 0 {
		return nil, analysisErr("no arrow batches were returned for this plan")
	}
	schema := batches[0].Schema()
	return array.NewTableFromRecords(schema, batches), nil
}

// ToFirstValue submits plan and returns the value of the first column of
// the first row of the first batch. Only a UTF-8 string column is
// supported today; anything else is Unimplemented.
func (c *Client) ToFirstValue(ctx context.Context, plan *sparkpb.Plan) (string, error) {
	snap, err := c.ExecuteCommandAndFetch(ctx, plan)
	if err != nil {
		return "", err
	}
	return firstValue(snap.Batches)
}

func firstValue(batches []arrow.Record) (string, error) {
	if len(batches) == 0 {
		return "", analysisErr("no arrow batches were returned for this plan")
	}

	rec := batches[0]
	if rec.NumCols() == 0 || rec.NumRows() == 0 {
		return "", analysisErr("result has no columns or no rows")
	}

	col, ok := rec.Column(0).(*array.String)
	if !ok {
		return "", unimplemented("first column is not a UTF-8 string column")
	}
	return col.Value(0), nil
}
