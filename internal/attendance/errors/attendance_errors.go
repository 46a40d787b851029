package attendanceerrors

import (
	"net/http"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/apperror"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"An open attendance session already exists",
		http.StatusConflict,
	)
	ErrNoOpenSession = apperror.New(
		apperror.CodeInvalidState,
		"No open attendance session to check out of",
		http.StatusConflict,
	)
)
