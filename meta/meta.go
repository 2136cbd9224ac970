// Package meta provides functionality for managing call metadata through context.
//
// The logger enriches every wrapper log line with the metadata found in the
// call context, so probe records and guard warnings produced deep inside a
// call chain can be correlated with the request that triggered them.
package meta

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is a type for keys used in context values for metadata.
type ContextKey string

const (
	// TraceID represents a unique identifier for correlating wrapped calls.
	TraceID ContextKey = "trace_id"

	// ServiceName identifies the name of the current running service.
	ServiceName ContextKey = "service_name"

	// ServiceVersion indicates the version of the service.
	ServiceVersion ContextKey = "service_version"
)

// contextKeys lists every key extracted by ExtractMetaFromContext.
var contextKeys = []ContextKey{
	TraceID,
	ServiceName,
	ServiceVersion,
}

// InjectMetaToContext adds metadata from the provided map to the context.
// It only adds values that are not empty strings and returns a new context
// with the added values.
func InjectMetaToContext(ctx context.Context, data map[ContextKey]string) context.Context {
	for k, v := range data {
		if v != "" {
			ctx = context.WithValue(ctx, k, v) //nolint:fatcontext // allow due to finite number of keys
		}
	}
	return ctx
}

// ExtractMetaFromContext extracts all metadata from the provided context.
// It retrieves values for all predefined context keys and returns them in a map.
// Only non-empty string values are included in the returned map.
func ExtractMetaFromContext(ctx context.Context) map[ContextKey]string {
	data := make(map[ContextKey]string)
	for _, k := range contextKeys {
		if v, ok := ctx.Value(k).(string); ok && v != "" {
			data[k] = v
		}
	}
	return data
}

// EnsureTraceID returns a context that carries a trace id, minting a new one
// when the incoming context has none.
func EnsureTraceID(ctx context.Context) context.Context {
	if v, ok := ctx.Value(TraceID).(string); ok && v != "" {
		return ctx
	}
	return context.WithValue(ctx, TraceID, uuid.NewString())
}
