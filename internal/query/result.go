package query

import (
	"errors"
	"net/http"
)

// Status is the lifecycle stage of a query.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusOK
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusOK:
		return "ok"
	case StatusError:
		return "err"
	default:
		return "idle"
	}
}

// Result is the observable state of a query. ResponseCode is 0 for
// transport failures.
type Result[T any] struct {
	Status       Status
	Data         T
	ResponseCode int
	Body         string
	Err          error
}

// NotFound reports an error result with a 404 response.
func (r Result[T]) NotFound() bool {
	return r.Status == StatusError && r.ResponseCode == http.StatusNotFound
}

// Message is the human readable failure text: the response body when there
// is one, otherwise the error.
func (r Result[T]) Message() string {
	if r.Body != "" {
		return r.Body
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return ""
}

// statusCoder is implemented by errors that carry an HTTP response.
type statusCoder interface {
	StatusCode() int
	ResponseBody() string
}

// FromError converts the outcome of a fetch into a terminal result.
func FromError[T any](data T, err error) Result[T] {
	if err == nil {
		return Result[T]{Status: StatusOK, Data: data, ResponseCode: http.StatusOK}
	}
	res := Result[T]{Status: StatusError, Err: err}
	var sc statusCoder
	if errors.As(err, &sc) {
		res.ResponseCode = sc.StatusCode()
		res.Body = sc.ResponseBody()
	}
	return res
}
