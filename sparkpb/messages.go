// Package sparkpb holds the wire message and service-stub types for the
// Spark Connect protocol. It plays the role that protoc-gen-go and
// protoc-gen-go-grpc output play for a real `.proto`-defined service: the
// rest of this module never constructs gRPC frames by hand, it only builds
// and reads these Go structs. The shapes mirror spark/connect/base.proto
// and spark/connect/commands.proto from the upstream Spark Connect schema.
package sparkpb

// UserContext identifies the principal issuing a request.
type UserContext struct {
	UserId     string
	UserName   string
	Extensions []*Any
}

// Any is a minimal stand-in for google.protobuf.Any: an opaque,
// type-tagged payload. The core never interprets its contents.
type Any struct {
	TypeUrl string
	Value   []byte
}

// Plan is an opaque protobuf message describing the computation to
// execute. Plan construction (the DataFrame/SQL builder) is an external
// collaborator; the core only ever carries this value through.
type Plan struct {
	// OpType is either a *Plan_Root (a relation/query tree) or a
	// *Plan_Command (a side-effecting command). Either may be nil.
	OpType isPlan_OpType
}

type isPlan_OpType interface{ isPlan_OpType() }

type Plan_Root struct{ Root *Any }
type Plan_Command struct{ Command *Any }

func (*Plan_Root) isPlan_OpType()    {}
func (*Plan_Command) isPlan_OpType() {}

// ReattachOptions controls whether ExecutePlan opens a reattachable,
// resumable response stream.
type ReattachOptions struct {
	Reattachable bool
}

// ExecutePlanRequest_RequestOption is a oneof of request-scoped options;
// today only ReattachOptions exists.
type ExecutePlanRequest_RequestOption struct {
	RequestOption isExecutePlanRequest_RequestOption
}

type isExecutePlanRequest_RequestOption interface {
	isExecutePlanRequest_RequestOption()
}

type ExecutePlanRequest_RequestOption_ReattachOptions struct {
	ReattachOptions *ReattachOptions
}

func (*ExecutePlanRequest_RequestOption_ReattachOptions) isExecutePlanRequest_RequestOption() {}

// ExecutePlanRequest submits a plan for execution.
type ExecutePlanRequest struct {
	SessionId      string
	UserContext    *UserContext
	OperationId    *string
	Plan           *Plan
	ClientType     string
	RequestOptions []*ExecutePlanRequest_RequestOption
	Tags           []string
}

// DataType is a stand-in for the Spark Connect type descriptor tree.
// The core never inspects it beyond carrying it; `to_first_value`
// inspects concrete Arrow column types instead, not this descriptor.
type DataType struct {
	Kind string
}

// ExecutePlanResponse_Metrics carries execution metrics for an operation.
type ExecutePlanResponse_Metrics struct {
	Stages []string
}

// ExecutePlanResponse_ObservedMetrics carries user-observed-metrics rows.
type ExecutePlanResponse_ObservedMetrics struct {
	Name string
	Keys []string
}

// ExecutePlanResponse_ArrowBatch carries one Arrow-IPC-framed chunk of
// result rows plus the row count the server asserts for it.
type ExecutePlanResponse_ArrowBatch struct {
	Data     []byte
	RowCount int64
}

// ExecutePlanResponse_SqlCommandResult wraps the relation produced by a
// SQL command (e.g. CREATE VIEW, CACHE TABLE).
type ExecutePlanResponse_SqlCommandResult struct {
	Relation *Any
}

// WriteStreamOperationStartResult is returned when a streaming query
// write starts.
type WriteStreamOperationStartResult struct {
	QueryId               string
	Name                  string
	QueryStartedEventJson string
}

// StreamingQueryCommandResult wraps the result of a streaming-query
// command (status, recent progress, await-termination, ...).
type StreamingQueryCommandResult struct {
	QueryId string
	Result  *Any
}

// GetResourcesCommandResult reports executor/driver resource info.
type GetResourcesCommandResult struct {
	Resources map[string]string
}

// StreamingQueryManagerCommandResult wraps list/get/resetTerminated
// results for the streaming query manager.
type StreamingQueryManagerCommandResult struct {
	Result *Any
}

// ExecutePlanResponse_ResultComplete marks the graceful end of an
// operation's response stream; no further messages follow for this
// operation_id.
type ExecutePlanResponse_ResultComplete struct{}

// ExecutePlanResponse is one message of a (possibly reattached) server
// streaming response for ExecutePlan/ReattachExecute.
type ExecutePlanResponse struct {
	SessionId       string
	OperationId     string
	ResponseId      string
	Schema          *DataType
	Metrics         *ExecutePlanResponse_Metrics
	ObservedMetrics *ExecutePlanResponse_ObservedMetrics
	ResponseType    isExecutePlanResponse_ResponseType
}

type isExecutePlanResponse_ResponseType interface {
	isExecutePlanResponse_ResponseType()
}

type RespType_ArrowBatch struct{ ArrowBatch *ExecutePlanResponse_ArrowBatch }
type RespType_SqlCommandResult struct {
	SqlCommandResult *ExecutePlanResponse_SqlCommandResult
}
type RespType_WriteStreamOperationStartResult struct {
	WriteStreamOperationStartResult *WriteStreamOperationStartResult
}
type RespType_StreamingQueryCommandResult struct {
	StreamingQueryCommandResult *StreamingQueryCommandResult
}
type RespType_GetResourcesCommandResult struct {
	GetResourcesCommandResult *GetResourcesCommandResult
}
type RespType_StreamingQueryManagerCommandResult struct {
	StreamingQueryManagerCommandResult *StreamingQueryManagerCommandResult
}
type RespType_ResultComplete struct {
	ResultComplete *ExecutePlanResponse_ResultComplete
}
type RespType_Extension struct{ Extension *Any }

func (*RespType_ArrowBatch) isExecutePlanResponse_ResponseType()                      {}
func (*RespType_SqlCommandResult) isExecutePlanResponse_ResponseType()                {}
func (*RespType_WriteStreamOperationStartResult) isExecutePlanResponse_ResponseType() {}
func (*RespType_StreamingQueryCommandResult) isExecutePlanResponse_ResponseType()     {}
func (*RespType_GetResourcesCommandResult) isExecutePlanResponse_ResponseType()       {}
func (*RespType_StreamingQueryManagerCommandResult) isExecutePlanResponse_ResponseType() {}
func (*RespType_ResultComplete) isExecutePlanResponse_ResponseType()                  {}
func (*RespType_Extension) isExecutePlanResponse_ResponseType()                       {}

// ReattachExecuteRequest resumes a response stream after the client's
// view of it ended without result_complete.
type ReattachExecuteRequest struct {
	SessionId      string
	UserContext    *UserContext
	OperationId    string
	ClientType     string
	LastResponseId *string
}

// ReleaseExecuteRequest_ReleaseUntil acknowledges all responses up to
// and including ResponseId.
type ReleaseExecuteRequest_ReleaseUntil struct {
	ResponseId string
}

// ReleaseExecuteRequest_ReleaseAll acknowledges the whole operation.
type ReleaseExecuteRequest_ReleaseAll struct{}

// IsReleaseExecuteRequest_Release is a oneof over the two release modes:
// ReleaseUntil (acknowledge up to a response id) and ReleaseAll.
type IsReleaseExecuteRequest_Release interface {
	isReleaseExecuteRequest_Release()
}

type Release_ReleaseUntil struct{ ReleaseUntil *ReleaseExecuteRequest_ReleaseUntil }
type Release_ReleaseAll struct{ ReleaseAll *ReleaseExecuteRequest_ReleaseAll }

func (*Release_ReleaseUntil) isReleaseExecuteRequest_Release() {}
func (*Release_ReleaseAll) isReleaseExecuteRequest_Release()   {}

// ReleaseExecuteRequest acknowledges processed responses, letting the
// server discard buffered state for an operation.
type ReleaseExecuteRequest struct {
	SessionId   string
	UserContext *UserContext
	OperationId string
	ClientType  string
	Release     IsReleaseExecuteRequest_Release
}

// ReleaseExecuteResponse is returned verbatim; the core discards its body.
type ReleaseExecuteResponse struct {
	SessionId   string
	OperationId string
}

// IsAnalyzePlanRequest_Analyze is a oneof over every analyze variant.
type IsAnalyzePlanRequest_Analyze interface {
	isAnalyzePlanRequest_Analyze()
}

type Analyze_Schema struct{ Plan *Plan }
type Analyze_Explain struct {
	Plan         *Plan
	ExplainMode  string
}
type Analyze_TreeString struct {
	Plan  *Plan
	Level *int32
}
type Analyze_IsLocal struct{ Plan *Plan }
type Analyze_IsStreaming struct{ Plan *Plan }
type Analyze_InputFiles struct{ Plan *Plan }
type Analyze_SparkVersion struct{}
type Analyze_DDLParse struct{ DdlString string }
type Analyze_SameSemantics struct {
	TargetPlan *Plan
	OtherPlan  *Plan
}
type Analyze_SemanticHash struct{ Plan *Plan }
type Analyze_Persist struct {
	Relation     *Any
	StorageLevel *StorageLevel
}
type Analyze_Unpersist struct {
	Relation *Any
	Blocking *bool
}
type Analyze_GetStorageLevel struct{ Relation *Any }

func (*Analyze_Schema) isAnalyzePlanRequest_Analyze()          {}
func (*Analyze_Explain) isAnalyzePlanRequest_Analyze()         {}
func (*Analyze_TreeString) isAnalyzePlanRequest_Analyze()      {}
func (*Analyze_IsLocal) isAnalyzePlanRequest_Analyze()         {}
func (*Analyze_IsStreaming) isAnalyzePlanRequest_Analyze()     {}
func (*Analyze_InputFiles) isAnalyzePlanRequest_Analyze()      {}
func (*Analyze_SparkVersion) isAnalyzePlanRequest_Analyze()    {}
func (*Analyze_DDLParse) isAnalyzePlanRequest_Analyze()        {}
func (*Analyze_SameSemantics) isAnalyzePlanRequest_Analyze()   {}
func (*Analyze_SemanticHash) isAnalyzePlanRequest_Analyze()    {}
func (*Analyze_Persist) isAnalyzePlanRequest_Analyze()         {}
func (*Analyze_Unpersist) isAnalyzePlanRequest_Analyze()       {}
func (*Analyze_GetStorageLevel) isAnalyzePlanRequest_Analyze() {}

// AnalyzePlanRequest requests a synchronous analysis result for a plan.
type AnalyzePlanRequest struct {
	SessionId   string
	UserContext *UserContext
	ClientType  string
	Analyze     IsAnalyzePlanRequest_Analyze
}

// StorageLevel mirrors org.apache.spark.storage.StorageLevel's fields.
type StorageLevel struct {
	UseDisk      bool
	UseMemory    bool
	UseOffHeap   bool
	Deserialized bool
	Replication  int32
}

type isAnalyzePlanResponse_Result interface{ isAnalyzePlanResponse_Result() }

type AnalyzeResult_Schema struct{ Schema *DataType }
type AnalyzeResult_Explain struct{ ExplainString string }
type AnalyzeResult_TreeString struct{ TreeString string }
type AnalyzeResult_IsLocal struct{ IsLocal bool }
type AnalyzeResult_IsStreaming struct{ IsStreaming bool }
type AnalyzeResult_InputFiles struct{ Files []string }
type AnalyzeResult_SparkVersion struct{ Version string }
type AnalyzeResult_DDLParse struct{ Parsed *DataType }
type AnalyzeResult_SameSemantics struct{ Result bool }
type AnalyzeResult_SemanticHash struct{ Result int32 }
type AnalyzeResult_Persist struct{}
type AnalyzeResult_Unpersist struct{}
type AnalyzeResult_GetStorageLevel struct{ StorageLevel *StorageLevel }

func (*AnalyzeResult_Schema) isAnalyzePlanResponse_Result()         {}
func (*AnalyzeResult_Explain) isAnalyzePlanResponse_Result()        {}
func (*AnalyzeResult_TreeString) isAnalyzePlanResponse_Result()     {}
func (*AnalyzeResult_IsLocal) isAnalyzePlanResponse_Result()        {}
func (*AnalyzeResult_IsStreaming) isAnalyzePlanResponse_Result()    {}
func (*AnalyzeResult_InputFiles) isAnalyzePlanResponse_Result()     {}
func (*AnalyzeResult_SparkVersion) isAnalyzePlanResponse_Result()   {}
func (*AnalyzeResult_DDLParse) isAnalyzePlanResponse_Result()       {}
func (*AnalyzeResult_SameSemantics) isAnalyzePlanResponse_Result()  {}
func (*AnalyzeResult_SemanticHash) isAnalyzePlanResponse_Result()   {}
func (*AnalyzeResult_Persist) isAnalyzePlanResponse_Result()        {}
func (*AnalyzeResult_Unpersist) isAnalyzePlanResponse_Result()      {}
func (*AnalyzeResult_GetStorageLevel) isAnalyzePlanResponse_Result() {}

// AnalyzePlanResponse is the single response to an AnalyzePlan call.
type AnalyzePlanResponse struct {
	SessionId string
	Result    isAnalyzePlanResponse_Result
}

// IsConfigRequest_Operation is a oneof over the config sub-operations.
type IsConfigRequest_Operation interface {
	isConfigRequest_Operation()
}

type ConfigRequest_Set struct{ Pairs map[string]string }
type ConfigRequest_Get struct{ Keys []string }
type ConfigRequest_GetWithDefault struct{ Pairs map[string]string }
type ConfigRequest_GetOption struct{ Keys []string }
type ConfigRequest_GetAll struct{ Prefix *string }
type ConfigRequest_Unset struct{ Keys []string }
type ConfigRequest_IsModifiable struct{ Keys []string }

func (*ConfigRequest_Set) isConfigRequest_Operation()           {}
func (*ConfigRequest_Get) isConfigRequest_Operation()            {}
func (*ConfigRequest_GetWithDefault) isConfigRequest_Operation() {}
func (*ConfigRequest_GetOption) isConfigRequest_Operation()      {}
func (*ConfigRequest_GetAll) isConfigRequest_Operation()         {}
func (*ConfigRequest_Unset) isConfigRequest_Operation()          {}
func (*ConfigRequest_IsModifiable) isConfigRequest_Operation()   {}

// ConfigRequest forwards a configuration sub-operation verbatim.
type ConfigRequest struct {
	SessionId   string
	UserContext *UserContext
	ClientType  string
	Operation   IsConfigRequest_Operation
}

// ConfigResponse is returned verbatim to the caller.
type ConfigResponse struct {
	SessionId string
	Pairs     map[string]string
	Warnings  []string
}

// InterruptType selects the scope of an Interrupt call.
type InterruptType int32

const (
	InterruptTypeUnspecified InterruptType = iota
	InterruptTypeAll
	InterruptTypeTag
	InterruptTypeOperationId
)

type isInterruptRequest_Interrupt interface{ isInterruptRequest_Interrupt() }

type Interrupt_OperationTag struct{ OperationTag string }
type Interrupt_OperationId struct{ OperationId string }

func (*Interrupt_OperationTag) isInterruptRequest_Interrupt() {}
func (*Interrupt_OperationId) isInterruptRequest_Interrupt()  {}

// InterruptRequest asks the server to interrupt one, some, or all
// operations on the session.
type InterruptRequest struct {
	SessionId     string
	UserContext   *UserContext
	ClientType    string
	InterruptType InterruptType
	Interrupt     isInterruptRequest_Interrupt
}

// InterruptResponse lists the operation ids that were interrupted.
type InterruptResponse struct {
	SessionId      string
	InterruptedIds []string
}
