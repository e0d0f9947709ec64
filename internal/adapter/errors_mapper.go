package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrTransportFailure, ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrStaleRevision, body)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrFileSizeLimitExceeded, body)
	case http.StatusInsufficientStorage:
		return fmt.Errorf("%w: %s", ErrVaultQuotaExceeded, body)
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrTransportFailure, resp.StatusCode(), body)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
