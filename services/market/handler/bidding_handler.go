package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"buildmart/internal/marketerrors"
	"buildmart/internal/metrics"
	model "buildmart/internal/models"
	"buildmart/services/market/helpers"
	"buildmart/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(session model.Session, jobID string, price float64, timelineDays int, notes string) (model.Bid, error)
	UpdateBid(session model.Session, bidID string, price float64, timelineDays int, note string, expectedVersion int) (model.Bid, error)
	GetBid(bidID string) (model.Bid, error)
	GetBidsForJob(jobID string) ([]model.Bid, error)
	GetLowestBid(jobID string) (model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	session, ok := helpers.SessionFromContext(c)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(session, req.JobID, req.Price, req.TimelineDays, req.Notes)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		metrics.BidsPlaced.WithLabelValues(outcomeLabel(status)).Inc()
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":       "PlaceBidHandler",
			"job_id":        req.JobID,
			"contractor_id": session.UserID,
			"error":         err.Error(),
		})
		return
	}

	metrics.BidsPlaced.WithLabelValues("success").Inc()
	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":        bid.BidID,
		"job_id":        bid.JobID,
		"contractor_id": bid.ContractorID,
		"price":         bid.Price,
	})
}

// UpdateBidHandler handles PUT /bids/:bid_id
func (h *BiddingHandler) UpdateBidHandler(c *gin.Context) {
	session, ok := helpers.SessionFromContext(c)
	if !ok {
		return
	}

	bidID := c.Param("bid_id")
	var req helpers.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}

	bid, err := h.service.UpdateBid(session, bidID, req.Price, req.TimelineDays, req.Note, req.Version)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		metrics.BidsUpdated.WithLabelValues(outcomeLabel(status)).Inc()
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateBidHandler: failed to update bid", map[string]any{
			"bid_id":        bidID,
			"contractor_id": session.UserID,
			"error":         err.Error(),
		})
		return
	}

	metrics.BidsUpdated.WithLabelValues("success").Inc()
	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "bid updated successfully")
	helpers.LogSuccess("UpdateBidHandler", "bid updated successfully", map[string]any{
		"bid_id":            bid.BidID,
		"price":             bid.Price,
		"update_count":      bid.UpdateCount,
		"remaining_updates": bid.RemainingUpdates(),
	})
}

// GetBidHandler handles GET /bids/:bid_id
func (h *BiddingHandler) GetBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	bid, err := h.service.GetBid(bidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHandler: error retrieving bid", map[string]any{"bid_id": bidID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "bid retrieved successfully")
}

// GetBidsByJobHandler handles GET /jobs/:job_id/bids
func (h *BiddingHandler) GetBidsByJobHandler(c *gin.Context) {
	jobID := c.Param("job_id")
	bids, err := h.service.GetBidsForJob(jobID)
	if err != nil && !errors.Is(err, marketerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByJobHandler: error retrieving bids", map[string]any{"job_id": jobID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByJobHandler", "bids retrieved successfully", map[string]any{
		"job_id": jobID,
		"count":  len(resp),
	})
}

// GetLowestBidHandler handles GET /jobs/:job_id/bids/lowest
func (h *BiddingHandler) GetLowestBidHandler(c *gin.Context) {
	jobID := c.Param("job_id")
	bid, err := h.service.GetLowestBid(jobID)
	if err != nil {
		if errors.Is(err, marketerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no pending bids found")
			utils.Info("GetLowestBidHandler: no pending bids", map[string]any{"job_id": jobID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetLowestBidHandler: lowest bid error", map[string]any{"job_id": jobID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "lowest bid retrieved successfully")
	helpers.LogSuccess("GetLowestBidHandler", "lowest bid retrieved successfully", map[string]any{
		"bid_id": bid.BidID,
		"job_id": bid.JobID,
		"price":  bid.Price,
	})
}

// ExportBidsCSVHandler handles GET /jobs/:job_id/bids/export.
// Presentation-only tabular export; carries no business rules.
func (h *BiddingHandler) ExportBidsCSVHandler(c *gin.Context) {
	jobID := c.Param("job_id")
	bids, err := h.service.GetBidsForJob(jobID)
	if err != nil && !errors.Is(err, marketerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "bids-"+jobID+".csv"))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"bid_id", "job_id", "contractor_id", "contractor_name", "price", "timeline_days", "status", "update_count", "created_at"})
	for _, bid := range bids {
		_ = w.Write([]string{
			bid.BidID,
			bid.JobID,
			bid.ContractorID,
			bid.ContractorName,
			strconv.FormatFloat(bid.Price, 'f', 2, 64),
			strconv.Itoa(bid.TimelineDays),
			string(bid.Status),
			strconv.Itoa(bid.UpdateCount),
			bid.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
}

// outcomeLabel buckets an HTTP failure status for the counters
func outcomeLabel(status int) string {
	if status >= http.StatusInternalServerError {
		return "error"
	}
	return "rejected"
}
