package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/calmora/models"
)

// mapHTTPError turns a non-2xx response into a [*ResponseError]. An empty
// body means "no message"; a body that is not JSON is malformed and belongs
// to the transport tier.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return &ResponseError{StatusCode: resp.StatusCode()}
	}

	var msg models.MessageResponse
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("%w: malformed error body (http %d): %w", ErrTransport, resp.StatusCode(), err)
	}

	return &ResponseError{StatusCode: resp.StatusCode(), Message: msg.Text()}
}

// decodeBody decodes a 2xx JSON body into dst.
func decodeBody(resp *resty.Response, dst any) error {
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: malformed response body: %w", ErrTransport, err)
	}
	return nil
}
