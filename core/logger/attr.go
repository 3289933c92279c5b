package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Helpers that may receive a missing value return the zero slog.Attr, which
// handlers drop, so callers can write log.Info("msg", logger.Error(err))
// without a nil check.

func optionalString(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String(key, value)
}

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errs under "errors", keyed by their position.
func Errors(errs ...error) slog.Attr {
	var attrs []slog.Attr
	for i, err := range errs {
		if err != nil {
			attrs = append(attrs, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(attrs) == 0 {
		return slog.Attr{}
	}
	return Group("errors", attrs...)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed logs the time since start under "elapsed".
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// UserID is empty for anonymous requests.
func UserID(id string) slog.Attr { return optionalString("user_id", id) }

// SessionID is empty for sessions that live entirely in the cookie.
func SessionID(id string) slog.Attr { return optionalString("session_id", id) }

func RequestID(id string) slog.Attr { return optionalString("request_id", id) }

func Method(method string) slog.Attr { return slog.String("method", method) }

func Path(path string) slog.Attr { return slog.String("path", path) }

func StatusCode(code int) slog.Attr { return slog.Int("status_code", code) }

// Component names the package or subsystem emitting the record.
func Component(name string) slog.Attr { return slog.String("component", name) }

func Event(name string) slog.Attr { return slog.String("event", name) }

// Action names the operation that was attempted, e.g. "sign_in".
func Action(action string) slog.Attr { return slog.String("action", action) }

// Key is slog.Any that drops nil values.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
