package changelist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
)

// A StatusError is returned when the service answers a request with a
// non 2xx status code.
type StatusError struct {
	Code int
	Body string
}

func (e StatusError) NotFound() bool {
	return e.Code == 404
}
func (e StatusError) Error() string {
	return fmt.Sprintf("http status: %d: %q", e.Code, e.Body)
}

func (c *Client) getResource(ctx context.Context, result interface{}, path string) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) postResource(ctx context.Context, resource interface{}, result interface{}, path string) error {
	return c.do(ctx, http.MethodPost, path, resource, result)
}

func (c *Client) removeResource(ctx context.Context, result interface{}, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, result)
}

func (c *Client) do(ctx context.Context, method string, path string, reqBody interface{}, result interface{}) error {
	var body io.Reader
	if reqBody != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(reqBody); err != nil {
			return err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Base.String()+path, body)
	if err != nil {
		return err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		return StatusError{Code: resp.StatusCode, Body: string(b)}
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
