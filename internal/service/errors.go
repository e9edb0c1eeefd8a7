package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/pricewise/internal/auth"
	"github.com/mmynk/pricewise/internal/engine"
	"github.com/mmynk/pricewise/internal/export"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest checks the struct tags on an RPC message.
func validateRequest(msg any) error {
	if err := validate.Struct(msg); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return nil
}

// toConnectError maps domain errors onto Connect codes and logs the failure.
func toConnectError(op string, err error) error {
	code := codeFor(err)
	if code == connect.CodeInternal {
		slog.Error(op+" failed", "error", err)
	} else {
		slog.Warn(op+" rejected", "code", code, "error", err)
	}
	return connect.NewError(code, err)
}

func codeFor(err error) connect.Code {
	switch {
	case errors.Is(err, engine.ErrEmptyName),
		errors.Is(err, engine.ErrUnknownAction),
		errors.Is(err, export.ErrUnknownMode):
		return connect.CodeInvalidArgument
	case errors.Is(err, engine.ErrDuplicateRole):
		return connect.CodeAlreadyExists
	case errors.Is(err, engine.ErrProtectedRole):
		return connect.CodeFailedPrecondition
	case errors.Is(err, engine.ErrRoleNotFound),
		errors.Is(err, engine.ErrProductNotFound),
		errors.Is(err, export.ErrChartNotFound):
		return connect.CodeNotFound
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return connect.CodeUnauthenticated
	}
	return connect.CodeInternal
}
