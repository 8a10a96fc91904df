package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP GET calls so callers can inject fakes or different transports.
// The url is sent as given; callers are responsible for escaping query values.
type Client interface {
	Get(ctx context.Context, url string) (Response, error)
}
