package handler

import (
	"errors"
	"fmt"
	"net/http"

	"buildmart/internal/agreement"
	bidding "buildmart/internal/biddingService"
	"buildmart/internal/marketerrors"
	"buildmart/internal/metrics"
	model "buildmart/internal/models"
	"buildmart/services/market/helpers"
	"buildmart/utils"

	"github.com/gin-gonic/gin"
)

type AgreementServiceInterface interface {
	BuildAgreement(bidID string) (agreement.Agreement, error)
	AcceptBid(session model.Session, bidID string, termsAccepted bool) (bidding.AcceptResult, error)
	RetrySetup(session model.Session, bidID string) (bidding.AcceptResult, error)
}

type AgreementHandler struct {
	service AgreementServiceInterface
}

func NewAgreementHandler(service AgreementServiceInterface) *AgreementHandler {
	return &AgreementHandler{service: service}
}

// GetAgreementHandler handles GET /bids/:bid_id/agreement.
// Pure read: re-rendering the agreement for an accepted bid has no side
// effects.
func (h *AgreementHandler) GetAgreementHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	agr, err := h.service.BuildAgreement(bidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAgreementHandler: error building agreement", map[string]any{"bid_id": bidID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, agr, "agreement assembled successfully")
	helpers.LogSuccess("GetAgreementHandler", "agreement assembled successfully", map[string]any{
		"bid_id":   bidID,
		"accepted": agr.Accepted,
	})
}

// AcceptBidHandler handles POST /bids/:bid_id/accept
func (h *AgreementHandler) AcceptBidHandler(c *gin.Context) {
	session, ok := helpers.SessionFromContext(c)
	if !ok {
		return
	}

	bidID := c.Param("bid_id")
	var req helpers.AcceptAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AcceptBidHandler", err)
		return
	}

	result, err := h.service.AcceptBid(session, bidID, req.TermsAccepted)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if errors.Is(err, marketerrors.ErrWorkSetupPending) {
			// Partial failure: the bid IS accepted, only the work record is
			// missing. Distinct from a full failure so the caller knows to
			// retry setup rather than the whole acceptance.
			metrics.AgreementsAccepted.WithLabelValues("setup_pending").Inc()
		} else {
			metrics.AgreementsAccepted.WithLabelValues(outcomeLabel(status)).Inc()
		}
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AcceptBidHandler: acceptance failed", map[string]any{
			"bid_id":    bidID,
			"client_id": session.UserID,
			"error":     err.Error(),
		})
		return
	}

	if result.AlreadyAccepted {
		metrics.AgreementsAccepted.WithLabelValues("already_accepted").Inc()
		utils.JSONResponse(c, http.StatusOK, result, "bid already accepted")
		helpers.LogSuccess("AcceptBidHandler", "bid already accepted", map[string]any{"bid_id": bidID})
		return
	}

	metrics.AgreementsAccepted.WithLabelValues("success").Inc()
	utils.JSONResponse(c, http.StatusCreated, result, "bid accepted and work record created")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted and work record created", map[string]any{
		"bid_id":  bidID,
		"job_id":  result.Work.JobID,
		"work_id": result.Work.WorkID,
	})
}

// RetrySetupHandler handles POST /bids/:bid_id/setup/retry
func (h *AgreementHandler) RetrySetupHandler(c *gin.Context) {
	session, ok := helpers.SessionFromContext(c)
	if !ok {
		return
	}

	bidID := c.Param("bid_id")
	result, err := h.service.RetrySetup(session, bidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RetrySetupHandler: setup retry failed", map[string]any{
			"bid_id": bidID,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "work record setup completed")
	helpers.LogSuccess("RetrySetupHandler", "work record setup completed", map[string]any{
		"bid_id":  bidID,
		"work_id": result.Work.WorkID,
	})
}
