package domain

import "errors"

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedUnauthorized   = "authentication required"

	ErrParseUUID    = errors.New("failed to parse UUID")
	ErrUnauthorized = errors.New("authentication required")
)
