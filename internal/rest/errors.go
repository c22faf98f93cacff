package rest

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrEndpointUnresolved = errors.New("rest: endpoint could not be resolved")
	ErrResponseMalformed  = errors.New("rest: response body is not valid JSON")
)

const (
	transportFailedCode    = "ADMIN_TRANSPORT_FAILED"
	backendRejectedCode    = "ADMIN_BACKEND_REJECTED"
	backendNotFoundCode    = "ADMIN_BACKEND_NOT_FOUND"
	backendUnauthorized    = "ADMIN_BACKEND_UNAUTHORIZED"
	payloadEncodingFailed  = "ADMIN_PAYLOAD_ENCODING_FAILED"
	responseDecodingFailed = "ADMIN_RESPONSE_DECODING_FAILED"
)

// StatusError carries the backend status line for non-2xx responses. The data
// layer never inspects it beyond category tagging; hosts convert it to a
// user-facing notification.
type StatusError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("rest: %s %s returned %d", e.Method, e.URL, e.StatusCode)
}

func wrapStatusError(statusErr *StatusError) error {
	switch statusErr.StatusCode {
	case 401, 403:
		return goerrors.Wrap(statusErr, goerrors.CategoryAuth, "backend rejected credentials").
			WithTextCode(backendUnauthorized)
	case 404:
		return goerrors.Wrap(statusErr, goerrors.CategoryNotFound, "record not found").
			WithTextCode(backendNotFoundCode)
	default:
		return goerrors.Wrap(statusErr, goerrors.CategoryExternal, "backend rejected request").
			WithTextCode(backendRejectedCode)
	}
}

func wrapTransportError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, "request transport failed").
		WithTextCode(transportFailedCode)
}

func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "payload encoding failed").
		WithTextCode(payloadEncodingFailed)
}

func wrapDecodingError(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, "response decoding failed").
		WithTextCode(responseDecodingFailed)
}
