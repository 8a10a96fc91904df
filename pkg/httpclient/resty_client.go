package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a RestyClient. A zero timeout leaves the transport default in place.
func NewRestyClient(timeout time.Duration) *RestyClient {
	return &RestyClient{client: newRestyBaseClient(timeout)}
}

// newRestyBaseClient creates a resty.Client that never retries.
func newRestyBaseClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetRetryCount(0)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}

// Get performs a single HTTP GET request. Network, timeout and body read
// failures are returned as errors; any status code is returned as a Response.
func (r *RestyClient) Get(ctx context.Context, url string) (Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	resp, err := r.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
