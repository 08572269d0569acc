package server

import (
	bidding "buildmart/internal/biddingService"
	handler "buildmart/services/market/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, agreementService *bidding.AgreementService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(MetricsMiddleware)       // request latency histogram

	jobHandler := handler.NewJobHandler(biddingService)
	biddingHandler := handler.NewBiddingHandler(biddingService)
	agreementHandler := handler.NewAgreementHandler(agreementService)

	jobs := router.Group("/jobs")
	{
		jobs.POST("", jobHandler.CreateJobHandler)
		jobs.GET("/:job_id", jobHandler.GetJobHandler)
		jobs.GET("/:job_id/bids", biddingHandler.GetBidsByJobHandler)
		jobs.GET("/:job_id/bids/lowest", biddingHandler.GetLowestBidHandler)
		jobs.GET("/:job_id/bids/export", biddingHandler.ExportBidsCSVHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
		bids.GET("/:bid_id", biddingHandler.GetBidHandler)
		bids.PUT("/:bid_id", biddingHandler.UpdateBidHandler)
		bids.GET("/:bid_id/agreement", agreementHandler.GetAgreementHandler)
		bids.POST("/:bid_id/accept", agreementHandler.AcceptBidHandler)
		bids.POST("/:bid_id/setup/retry", agreementHandler.RetrySetupHandler)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
