package transport

import (
	"context"
	"net/http"
)

type httpHeadersKey struct{}

// WithHTTPHeaders stores the headers of the originating HTTP request in the
// context so they survive into executor code that never sees the request.
func WithHTTPHeaders(ctx context.Context, headers http.Header) context.Context {
	if headers == nil {
		return ctx
	}
	return context.WithValue(ctx, httpHeadersKey{}, headers)
}

// GetHTTPHeaders returns the headers stored by WithHTTPHeaders, or nil when
// the context did not originate from an HTTP request.
func GetHTTPHeaders(ctx context.Context) http.Header {
	headers, _ := ctx.Value(httpHeadersKey{}).(http.Header)
	return headers
}
