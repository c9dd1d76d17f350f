// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP request decoding and response writing, HTTP client
// initialization and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key used to store the request trace id in the
// context. The HTTP layer sets it from the X-Trace-ID header.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "0b6c...")
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext retrieves the trace id from the context.
//
// Returns the trace id and an ok flag:
//   - ok == true  - value is found, has string type and is non-empty
//   - ok == false - value is missing or has an unexpected type
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
