package client

import (
	"bytes"
	"fmt"

	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"
)

// ingestArrowBatch decodes an Arrow-IPC framed byte sequence into record
// batches, enforcing that every decoded batch carries exactly the
// advertised row count. Low-level IPC framing is delegated to arrow/ipc;
// this function only enforces row-count agreement and appends to the
// accumulator.
func (c *Client) ingestArrowBatch(data []byte, rowCount int64) error {
	reader, err := ipc.NewReader(bytes.NewReader(data), ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return framingErr(fmt.Sprintf("opening arrow IPC stream: %v", err))
	}
	defer reader.Release()

	for reader.Next() {
		rec := reader.Record()
		if int64(rec.NumRows()) != rowCount {
			return framingErr(fmt.Sprintf("expected %d rows in arrow batch but got %d", rowCount, rec.NumRows()))
		}
		rec.Retain()
		c.handler.batches = append(c.handler.batches, rec)
		c.handler.totalCount += rowCount
	}
	if err := reader.Err(); err != nil {
		return framingErr(fmt.Sprintf("decoding arrow IPC stream: %v", err))
	}
	return nil
}
