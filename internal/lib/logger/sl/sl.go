// Package sl holds the slog conventions shared by every component.
package sl

import (
	"log/slog"
)

// Err creates the `error` attribute. A nil error yields an empty attribute, which handlers drop.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	return slog.String("error", err.Error())
}

// Component derives a logger tagged with the operation and division it belongs to.
func Component(log *slog.Logger, op, division string) *slog.Logger {
	return log.With(
		slog.String("op", op),
		slog.String("division", division),
	)
}
