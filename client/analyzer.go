package client

import "github.com/apache/spark-connect-client-go/sparkpb"

// analyzeAccumulator is the typed sink for the one-shot AnalyzePlan RPC:
// one optional slot per analyze variant, reset at the start of every
// Analyze call.
type analyzeAccumulator struct {
	schema          *sparkpb.DataType
	explain         *string
	treeString      *string
	isLocal         *bool
	isStreaming     *bool
	inputFiles      []string
	hasInputFiles   bool
	sparkVersion    *string
	ddlParse        *sparkpb.DataType
	sameSemantics   *bool
	semanticHash    *int32
	getStorageLevel *sparkpb.StorageLevel
}

// handleAnalyze validates session binding, then writes the single present
// variant into the matching slot. Persist/Unpersist populate no slot —
// their success is the result.
func (c *Client) handleAnalyze(resp *sparkpb.AnalyzePlanResponse) error {
	if resp.SessionId != c.identity.SessionID {
		return sessionMismatch(
			"received analyze response for session " + resp.SessionId + ", expected " + c.identity.SessionID,
		)
	}

	switch r := resp.Result.(type) {
	case nil:
	case *sparkpb.AnalyzeResult_Schema:
		c.analyzer.schema = r.Schema
	case *sparkpb.AnalyzeResult_Explain:
		c.analyzer.explain = &r.ExplainString
	case *sparkpb.AnalyzeResult_TreeString:
		c.analyzer.treeString = &r.TreeString
	case *sparkpb.AnalyzeResult_IsLocal:
		c.analyzer.isLocal = &r.IsLocal
	case *sparkpb.AnalyzeResult_IsStreaming:
		c.analyzer.isStreaming = &r.IsStreaming
	case *sparkpb.AnalyzeResult_InputFiles:
		c.analyzer.inputFiles = r.Files
		c.analyzer.hasInputFiles = true
	case *sparkpb.AnalyzeResult_SparkVersion:
		c.analyzer.sparkVersion = &r.Version
	case *sparkpb.AnalyzeResult_DDLParse:
		c.analyzer.ddlParse = r.Parsed
	case *sparkpb.AnalyzeResult_SameSemantics:
		c.analyzer.sameSemantics = &r.Result
	case *sparkpb.AnalyzeResult_SemanticHash:
		c.analyzer.semanticHash = &r.Result
	case *sparkpb.AnalyzeResult_Persist:
	case *sparkpb.AnalyzeResult_Unpersist:
	case *sparkpb.AnalyzeResult_GetStorageLevel:
		c.analyzer.getStorageLevel = r.StorageLevel
	}
	return nil
}

// Schema returns the last analyzed schema, or an Analysis error if the
// slot is empty.
func (c *Client) Schema() (*sparkpb.DataType, error) {
	if c.analyzer.schema == nil {
		return nil, analysisErr("schema response is empty")
	}
	return c.analyzer.schema, nil
}

// Explain returns the last explain string.
func (c *Client) Explain() (string, error) {
	if c.analyzer.explain == nil {
		return "", analysisErr("explain response is empty")
	}
	return *c.analyzer.explain, nil
}

// TreeString returns the last tree-string rendering.
func (c *Client) TreeString() (string, error) {
	if c.analyzer.treeString == nil {
		return "", analysisErr("tree string response is empty")
	}
	return *c.analyzer.treeString, nil
}

// IsLocal returns whether the analyzed plan executes locally.
func (c *Client) IsLocal() (bool, error) {
	if c.analyzer.isLocal == nil {
		return false, analysisErr("is_local response is empty")
	}
	return *c.analyzer.isLocal, nil
}

// IsStreaming returns whether the analyzed plan is a streaming query.
func (c *Client) IsStreaming() (bool, error) {
	if c.analyzer.isStreaming == nil {
		return false, analysisErr("is_streaming response is empty")
	}
	return *c.analyzer.isStreaming, nil
}

// InputFiles returns the input file list for the analyzed plan.
func (c *Client) InputFiles() ([]string, error) {
	if !c.analyzer.hasInputFiles {
		return nil, analysisErr("input files response is empty")
	}
	return c.analyzer.inputFiles, nil
}

// SparkVersion returns the server's reported Spark version.
func (c *Client) SparkVersion() (string, error) {
	if c.analyzer.sparkVersion == nil {
		return "", analysisErr("spark version response is empty")
	}
	return *c.analyzer.sparkVersion, nil
}

// DDLParse returns the parsed DDL type.
func (c *Client) DDLParse() (*sparkpb.DataType, error) {
	if c.analyzer.ddlParse == nil {
		return nil, analysisErr("ddl parse response is empty")
	}
	return c.analyzer.ddlParse, nil
}

// SameSemantics returns whether the compared plans are semantically equal.
func (c *Client) SameSemantics() (bool, error) {
	if c.analyzer.sameSemantics == nil {
		return false, analysisErr("same semantics response is empty")
	}
	return *c.analyzer.sameSemantics, nil
}

// SemanticHash returns the analyzed plan's semantic hash.
func (c *Client) SemanticHash() (int32, error) {
	if c.analyzer.semanticHash == nil {
		return 0, analysisErr("semantic hash response is empty")
	}
	return *c.analyzer.semanticHash, nil
}

// GetStorageLevel returns the storage level reported for the analyzed
// relation.
func (c *Client) GetStorageLevel() (*sparkpb.StorageLevel, error) {
	if c.analyzer.getStorageLevel == nil {
		return nil, analysisErr("storage level response is empty")
	}
	return c.analyzer.getStorageLevel, nil
}
