// Package query coordinates the random level fetches: it deduplicates
// identical requests, lets the most recently requested key win and keeps a
// small cache of successful results.
package query

import (
	"strconv"
	"time"

	"github.com/atomicstack/smm-uncleared/internal/filter"
)

// Token distinguishes otherwise identical requests so that asking again
// with unchanged filters yields a fresh level.
type Token int64

// NewToken derives a token from the clock that is strictly greater than
// prev, even when the clock stalls or steps backwards.
func NewToken(prev Token, now time.Time) Token {
	next := Token(now.UnixMilli())
	if next <= prev {
		return prev + 1
	}
	return next
}

// Key identifies one fetch.
type Key struct {
	Endpoint string
	Params   filter.State
	Token    Token
}

// String is the canonical form, "endpoint?sorted-query#token". Two keys are
// the same request exactly when their strings match.
func (k Key) String() string {
	s := k.Endpoint
	if q := k.Params.Values().Encode(); q != "" {
		s += "?" + q
	}
	return s + "#" + strconv.FormatInt(int64(k.Token), 10)
}

// Equal compares canonical forms.
func (k Key) Equal(other Key) bool {
	return k.String() == other.String()
}

// IsZero reports whether no key has been requested.
func (k Key) IsZero() bool {
	return k.Endpoint == "" && len(k.Params) == 0 && k.Token == 0
}
