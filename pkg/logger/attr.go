package logger

import (
	"log/slog"
	"time"
)

// Error returns an "error" attribute, or an empty one for a nil err, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr { return slog.String("request_id", id) }

// Style names the signature layout being rendered.
func Style(name string) slog.Attr { return slog.String("style", name) }

// Stage names the fallback step: primary, simplified or emergency.
func Stage(name string) slog.Attr { return slog.String("stage", name) }

func Path(p string) slog.Attr { return slog.String("path", p) }

func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }

// Component tags records from a subsystem, e.g. log.With(logger.Component("preview")).
func Component(name string) slog.Attr { return slog.String("component", name) }
