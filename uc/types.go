package uc

import "fmt"

// TypeName enumerates the catalog parameter/return types the gateway
// understands. The set mirrors the Unity Catalog column type names.
const (
	TypeBoolean      = "BOOLEAN"
	TypeByte         = "BYTE"
	TypeShort        = "SHORT"
	TypeInt          = "INT"
	TypeLong         = "LONG"
	TypeFloat        = "FLOAT"
	TypeDouble       = "DOUBLE"
	TypeDecimal      = "DECIMAL"
	TypeString       = "STRING"
	TypeChar         = "CHAR"
	TypeVarchar      = "VARCHAR"
	TypeBinary       = "BINARY"
	TypeDate         = "DATE"
	TypeTimestamp    = "TIMESTAMP"
	TypeTimestampNTZ = "TIMESTAMP_NTZ"
	TypeInterval     = "INTERVAL"
	TypeArray        = "ARRAY"
	TypeMap          = "MAP"
	TypeStruct       = "STRUCT"
)

// ParameterInfo describes a single input parameter of a catalog function.
type ParameterInfo struct {
	Name             string `json:"name"`
	TypeName         string `json:"type_name"`
	TypeText         string `json:"type_text,omitempty"`
	Position         int    `json:"position"`
	Nullable         bool   `json:"nullable,omitempty"`
	ParameterDefault string `json:"parameter_default,omitempty"`
	Comment          string `json:"comment,omitempty"`
}

// ParameterInfos wraps the parameter list the way the catalog API nests it.
type ParameterInfos struct {
	Parameters []ParameterInfo `json:"parameters,omitempty"`
}

// FunctionInfo is the catalog's native function representation. The gateway
// only ever reads it; the catalog service owns it.
type FunctionInfo struct {
	Name              string          `json:"name"`
	CatalogName       string          `json:"catalog_name"`
	SchemaName        string          `json:"schema_name"`
	FullName          string          `json:"full_name,omitempty"`
	Comment           string          `json:"comment,omitempty"`
	InputParams       *ParameterInfos `json:"input_params,omitempty"`
	DataType          string          `json:"data_type,omitempty"`
	FullDataType      string          `json:"full_data_type,omitempty"`
	RoutineDefinition string          `json:"routine_definition,omitempty"`
	ExternalLanguage  string          `json:"external_language,omitempty"`
	CreatedAt         int64           `json:"created_at,omitempty"`
	UpdatedAt         int64           `json:"updated_at,omitempty"`
}

// Parameters returns the flattened input parameter list.
func (f *FunctionInfo) Parameters() []ParameterInfo {
	if f == nil || f.InputParams == nil {
		return nil
	}
	return f.InputParams.Parameters
}

// FunctionInfoList is one page of a function listing.
type FunctionInfoList struct {
	Functions     []FunctionInfo `json:"functions,omitempty"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

// ListFunctionsRequest carries the listing scope plus advisory paging and
// timeout hints which are passed through to the catalog service untouched.
type ListFunctionsRequest struct {
	Catalog    string
	Schema     string
	MaxResults int
	PageToken  string
	// Timeout is advisory: it bounds the catalog round trip, it is not a
	// locally enforced deadline on anything else.
	Timeout float64
}

// CreateFunctionRequest is the declarative definition forwarded to the
// catalog's create endpoint. The gateway never evaluates RoutineDefinition.
type CreateFunctionRequest struct {
	FunctionInfo FunctionInfo `json:"function_info"`
}

// ExecutionResult is the catalog's response to a function execution.
type ExecutionResult struct {
	Format string `json:"format,omitempty"`
	Value  string `json:"value,omitempty"`
	Error  string `json:"error,omitempty"`
}

// NotFoundError reports a function the catalog does not know.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("function %q not found", e.Name)
}

// APIError is a non-2xx catalog response other than not-found.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"error_code,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("catalog request failed: %s (%s)", e.Message, e.ErrorCode)
	}
	return fmt.Sprintf("catalog request failed with status %d", e.StatusCode)
}
