package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind tags every gateway failure so callers branch on meaning, not on
// status codes or message substrings.
type Kind int

const (
	// KindTransport covers network failures, malformed responses and 5xx.
	KindTransport Kind = iota
	// KindAuthExpired is a 401: the stored credential is no longer valid.
	KindAuthExpired
	// KindForbidden is a 403: authenticated but not allowed.
	KindForbidden
	// KindBusiness is any other 4xx carrying a server-side rule violation.
	KindBusiness
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	case e.Message != "":
		return "api: " + e.Message
	default:
		return fmt.Sprintf("api: request failed (status %d)", e.Status)
	}
}

func (e *Error) Unwrap() error { return e.cause }

func transportErr(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error(), cause: err}
}

// errorBody is the union of the backend's error payload shapes:
// {"error": ...}, {"detail": ...} and {"message": ...}.
type errorBody struct {
	Error   string `json:"error"`
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	switch {
	case b.Error != "":
		return b.Error
	case b.Detail != "":
		return b.Detail
	default:
		return b.Message
	}
}

// Classify maps a non-2xx response onto the error taxonomy. It is pure so
// the mapping can be tested without a transport.
func Classify(status int, body []byte) *Error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	msg := eb.text()
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}

	switch {
	case status == http.StatusUnauthorized:
		return &Error{Kind: KindAuthExpired, Status: status, Message: msg}
	case status == http.StatusForbidden:
		return &Error{Kind: KindForbidden, Status: status, Message: msg}
	case status >= 400 && status < 500:
		return &Error{Kind: KindBusiness, Status: status, Message: msg}
	default:
		return &Error{Kind: KindTransport, Status: status, Message: msg}
	}
}

func isKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}

// IsAuthExpired reports whether the call failed because the session
// credential is no longer accepted.
func IsAuthExpired(err error) bool { return isKind(err, KindAuthExpired) }

func IsForbidden(err error) bool { return isKind(err, KindForbidden) }

func IsBusiness(err error) bool { return isKind(err, KindBusiness) }

func IsTransport(err error) bool { return isKind(err, KindTransport) }

// BusinessMessage extracts the server's own message from a business
// rejection, empty otherwise. The storefront shows these verbatim.
func BusinessMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind == KindBusiness {
		return ae.Message
	}
	return ""
}
