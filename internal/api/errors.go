package api

import (
	"errors"
	"fmt"
)

var ErrInvalidLevelID = errors.New("api: invalid level id")

// StatusError is returned for any non-2xx response. Body holds the response
// text as sent by the server.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Code, e.Body)
}

// StatusCode and ResponseBody let callers outside this package classify the
// failure without importing it.
func (e *StatusError) StatusCode() int { return e.Code }

func (e *StatusError) ResponseBody() string { return e.Body }
