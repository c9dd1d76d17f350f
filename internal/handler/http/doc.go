// Package http implements the REST surface of the case tracker.
// It provides the chi router, middleware, route handlers and the JSON
// envelope every endpoint answers with. Session checks, tracing, access
// logging, CORS and compression are handled at this layer before requests
// reach the service layer.
package http
