package autherrors

import (
	"net/http"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/apperror"
)

var (
	// ErrUserNotFound and ErrPasswordMismatch are distinct taxonomy entries
	// so callers can branch on them; presentation layers may still choose to
	// render both the same way.
	ErrUserNotFound = apperror.New(
		"AUTH_NOT_FOUND",
		"No account exists with that username",
		http.StatusUnauthorized,
	)
	ErrPasswordMismatch = apperror.New(
		"AUTH_MISMATCH",
		"Incorrect password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Session token is invalid",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to issue session token",
		http.StatusInternalServerError,
	)
)
