// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/lifeplan/backend/internal/domain/error"
	"github.com/lifeplan/backend/internal/integration/entrypoint/dto"
)

// handleError maps domain errors onto HTTP responses. Anything unrecognized
// becomes a generic 500 without leaking internals.
func handleError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrSessionNotFound) {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "no active session, login first",
			Code:  string(domainerror.ErrCodeSessionNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForAuthError maps auth error codes to HTTP status codes.
func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeLocalUserNotFound,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeNoRememberedIdentity,
		domainerror.ErrCodeNotAuthenticated:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeProviderUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// statusForLedgerError maps ledger error codes to HTTP status codes.
func statusForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidGoalTarget,
		domainerror.ErrCodeInvalidRisk:
		return http.StatusBadRequest
	case domainerror.ErrCodeSessionNotFound:
		return http.StatusUnauthorized
	case domainerror.ErrCodeStoreUnreachable,
		domainerror.ErrCodeStateSerialization:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
