package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"buildmart/internal/marketerrors"
	model "buildmart/internal/models"
	"buildmart/utils"

	"github.com/gin-gonic/gin"
)

// Caller identity headers. Auth itself happens upstream; these carry the
// already-authenticated identity into an explicit session.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// SessionFromContext builds the caller's session from request headers.
// A missing identity is answered with 401 and reported as not ok.
func SessionFromContext(c *gin.Context) (model.Session, bool) {
	userID := c.GetHeader(HeaderUserID)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing "+HeaderUserID+" header"), "caller identity required")
		return model.Session{}, false
	}
	return model.Session{
		UserID: userID,
		Role:   model.Role(c.GetHeader(HeaderUserRole)),
	}, true
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrJobNotFound):
		return http.StatusNotFound, "job not found"
	case errors.Is(err, marketerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, marketerrors.ErrWorkNotFound):
		return http.StatusNotFound, "ongoing work not found"
	case errors.Is(err, marketerrors.ErrInvalidJob):
		return http.StatusBadRequest, "invalid job details"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrBidNotPositive):
		return http.StatusBadRequest, "bid price must be positive"
	case errors.Is(err, marketerrors.ErrBelowMinimumBudget):
		return http.StatusBadRequest, "bid price below the project minimum budget"
	case errors.Is(err, marketerrors.ErrInsufficientDecrement):
		return http.StatusConflict, "bid revision below the minimum decrement"
	case errors.Is(err, marketerrors.ErrMustBeatLowest):
		return http.StatusConflict, "bid must undercut the lowest bid"
	case errors.Is(err, marketerrors.ErrUpdateLimitExceeded):
		return http.StatusConflict, "bid update limit reached"
	case errors.Is(err, marketerrors.ErrVersionConflict):
		return http.StatusConflict, "bid was modified concurrently, reload and retry"
	case errors.Is(err, marketerrors.ErrBidClosed):
		return http.StatusConflict, "bid is no longer open"
	case errors.Is(err, marketerrors.ErrNotBidOwner):
		return http.StatusForbidden, "only the bid's contractor may do this"
	case errors.Is(err, marketerrors.ErrNotJobOwner):
		return http.StatusForbidden, "only the job's client may do this"
	case errors.Is(err, marketerrors.ErrTermsNotAccepted):
		return http.StatusBadRequest, "agreement terms must be accepted"
	case errors.Is(err, marketerrors.ErrWorkSetupPending):
		return http.StatusBadGateway, "bid accepted but work record setup is pending, retry setup"
	case errors.Is(err, marketerrors.ErrNoBids):
		return http.StatusOK, "no bids found for job"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
