package bidding

import (
	"errors"
	"strings"
	"testing"
	"time"

	"buildmart/internal/marketerrors"
	model "buildmart/internal/models"
	"buildmart/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Tests PlaceBid
func TestBiddingService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := NewBiddingService(mockRepo)

	job := model.Job{JobID: "job1", ClientID: "client1", Title: "House build", MinimumBudget: 5000}
	session := model.Session{UserID: "contractor1", Role: model.RoleContractor}

	// Table-driven test cases
	tests := []struct {
		name          string
		session       model.Session
		jobID         string
		price         float64
		timelineDays  int
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:         "valid_first_bid",
			session:      session,
			jobID:        "job1",
			price:        50000,
			timelineDays: 30,
			mockSetup: func() {
				mockRepo.EXPECT().GetJob("job1").Return(job, nil)
				mockRepo.EXPECT().GetLowestPendingBid("job1", "contractor1").Return(model.Bid{}, marketerrors.ErrNoBids)
				mockRepo.EXPECT().GetUser("contractor1").Return(model.User{UserID: "contractor1", Name: "Saman Builders", Email: "saman@example.com"}, nil)
				mockRepo.EXPECT().CreateBid(gomock.Any()).Return(nil)
			},
		},
		{
			name:         "valid_bid_beating_lowest",
			session:      session,
			jobID:        "job1",
			price:        38000,
			timelineDays: 30,
			mockSetup: func() {
				mockRepo.EXPECT().GetJob("job1").Return(job, nil)
				mockRepo.EXPECT().GetLowestPendingBid("job1", "contractor1").Return(model.Bid{Price: 40000}, nil)
				mockRepo.EXPECT().GetUser("contractor1").Return(model.User{}, marketerrors.ErrUserNotFound)
				mockRepo.EXPECT().CreateBid(gomock.Any()).Return(nil)
			},
		},
		{
			name:          "empty_jobID",
			session:       session,
			jobID:         "",
			price:         50000,
			timelineDays:  30,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: marketerrors.ErrInvalidBid,
		},
		{
			name:          "missing_caller",
			session:       model.Session{},
			jobID:         "job1",
			price:         50000,
			timelineDays:  30,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: marketerrors.ErrInvalidBid,
		},
		{
			name:          "non_positive_timeline",
			session:       session,
			jobID:         "job1",
			price:         50000,
			timelineDays:  0,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: marketerrors.ErrInvalidBid,
		},
		{
			name:         "zero_price",
			session:      session,
			jobID:        "job1",
			price:        0,
			timelineDays: 30,
			mockSetup: func() {
				mockRepo.EXPECT().GetJob("job1").Return(job, nil)
				mockRepo.EXPECT().GetLowestPendingBid("job1", "contractor1").Return(model.Bid{}, marketerrors.ErrNoBids)
			},
			expectError:   true,
			expectedError: marketerrors.ErrBidNotPositive,
		},
		{
			name:         "not_beating_lowest",
			session:      session,
			jobID:        "job1",
			price:        39500,
			timelineDays: 30,
			mockSetup: func() {
				mockRepo.EXPECT().GetJob("job1").Return(job, nil)
				mockRepo.EXPECT().GetLowestPendingBid("job1", "contractor1").Return(model.Bid{Price: 40000}, nil)
			},
			expectError:   true,
			expectedError: marketerrors.ErrMustBeatLowest,
		},
		{
			name:         "below_minimum_budget",
			session:      session,
			jobID:        "job1",
			price:        4000,
			timelineDays: 30,
			mockSetup: func() {
				mockRepo.EXPECT().GetJob("job1").Return(job, nil)
				mockRepo.EXPECT().GetLowestPendingBid("job1", "contractor1").Return(model.Bid{}, marketerrors.ErrNoBids)
			},
			expectError:   true,
			expectedError: marketerrors.ErrBelowMinimumBudget,
		},
		{
			name:         "job_not_found",
			session:      session,
			jobID:        "jobX",
			price:        50000,
			timelineDays: 30,
			mockSetup: func() {
				mockRepo.EXPECT().GetJob("jobX").Return(model.Job{}, marketerrors.ErrJobNotFound)
			},
			expectError:   true,
			expectedError: marketerrors.ErrJobNotFound,
		},
		{
			name:         "repository_failure",
			session:      session,
			jobID:        "job1",
			price:        50000,
			timelineDays: 30,
			mockSetup: func() {
				mockRepo.EXPECT().GetJob("job1").Return(job, nil)
				mockRepo.EXPECT().GetLowestPendingBid("job1", "contractor1").Return(model.Bid{}, marketerrors.ErrNoBids)
				mockRepo.EXPECT().GetUser("contractor1").Return(model.User{}, marketerrors.ErrUserNotFound)
				mockRepo.EXPECT().CreateBid(gomock.Any()).Return(errors.New("db write failed"))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			bid, err := service.PlaceBid(tc.session, tc.jobID, tc.price, tc.timelineDays, "")
			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError))
				}
			} else {
				require.NoError(t, err)
				require.NotEmpty(t, bid.BidID)
				require.Equal(t, tc.jobID, bid.JobID)
				require.Equal(t, tc.session.UserID, bid.ContractorID)
				require.Equal(t, tc.price, bid.Price)
				require.Equal(t, model.BidStatusPending, bid.Status)
				require.Equal(t, 1, bid.Version)
				require.Equal(t, 0, bid.UpdateCount)
			}
		})
	}
}

// The contractor snapshot lands on the bid when the profile is available
func TestBiddingService_PlaceBid_ContractorSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := NewBiddingService(mockRepo)

	mockRepo.EXPECT().GetJob("job1").Return(model.Job{JobID: "job1"}, nil)
	mockRepo.EXPECT().GetLowestPendingBid("job1", "contractor1").Return(model.Bid{}, marketerrors.ErrNoBids)
	mockRepo.EXPECT().GetUser("contractor1").Return(model.User{
		UserID: "contractor1",
		Name:   "Saman Builders",
		Email:  "saman@example.com",
	}, nil)

	var recorded model.Bid
	mockRepo.EXPECT().CreateBid(gomock.Any()).DoAndReturn(func(b model.Bid) error {
		recorded = b
		return nil
	})

	_, err := service.PlaceBid(model.Session{UserID: "contractor1"}, "job1", 50000, 30, "can start next week")
	require.NoError(t, err)
	require.Equal(t, "Saman Builders", recorded.ContractorName)
	require.Equal(t, "saman@example.com", recorded.ContractorEmail)
	require.Equal(t, "can start next week", recorded.Notes)
}

// Tests UpdateBid
func TestBiddingService_UpdateBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := NewBiddingService(mockRepo)

	now := time.Now().UTC()
	baseBid := func() model.Bid {
		return model.Bid{
			BidID:        "bid1",
			JobID:        "job1",
			ContractorID: "contractor1",
			Price:        50000,
			TimelineDays: 30,
			Status:       model.BidStatusPending,
			Version:      1,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	job := model.Job{JobID: "job1", ClientID: "client1"}
	session := model.Session{UserID: "contractor1", Role: model.RoleContractor}

	tests := []struct {
		name          string
		session       model.Session
		price         float64
		version       int
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:    "valid_revision",
			session: session,
			price:   38000,
			version: 1,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid("bid1").Return(baseBid(), nil)
				mockRepo.EXPECT().GetJob("job1").Return(job, nil)
				mockRepo.EXPECT().GetLowestPendingBid("job1", "contractor1").Return(model.Bid{Price: 40000}, nil)
				mockRepo.EXPECT().UpdateBid(gomock.Any(), 1).DoAndReturn(func(b model.Bid, v int) (model.Bid, error) {
					b.Version = v + 1
					return b, nil
				})
			},
		},
		{
			name:    "not_the_owner",
			session: model.Session{UserID: "contractor2"},
			price:   38000,
			version: 1,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid("bid1").Return(baseBid(), nil)
			},
			expectError:   true,
			expectedError: marketerrors.ErrNotBidOwner,
		},
		{
			name:    "accepted_bid_is_closed",
			session: session,
			price:   38000,
			version: 1,
			mockSetup: func() {
				accepted := baseBid()
				accepted.Status = model.BidStatusAccepted
				mockRepo.EXPECT().GetBid("bid1").Return(accepted, nil)
			},
			expectError:   true,
			expectedError: marketerrors.ErrBidClosed,
		},
		{
			name:    "update_limit_exhausted",
			session: session,
			price:   38000,
			version: 1,
			mockSetup: func() {
				exhausted := baseBid()
				exhausted.UpdateCount = model.MaxBidUpdates
				mockRepo.EXPECT().GetBid("bid1").Return(exhausted, nil)
			},
			expectError:   true,
			expectedError: marketerrors.ErrUpdateLimitExceeded,
		},
		{
			name:    "insufficient_decrement",
			session: session,
			price:   49500,
			version: 1,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid("bid1").Return(baseBid(), nil)
				mockRepo.EXPECT().GetJob("job1").Return(job, nil)
				mockRepo.EXPECT().GetLowestPendingBid("job1", "contractor1").Return(model.Bid{}, marketerrors.ErrNoBids)
			},
			expectError:   true,
			expectedError: marketerrors.ErrInsufficientDecrement,
		},
		{
			name:    "stale_version",
			session: session,
			price:   38000,
			version: 1,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid("bid1").Return(baseBid(), nil)
				mockRepo.EXPECT().GetJob("job1").Return(job, nil)
				mockRepo.EXPECT().GetLowestPendingBid("job1", "contractor1").Return(model.Bid{Price: 40000}, nil)
				mockRepo.EXPECT().UpdateBid(gomock.Any(), 1).Return(model.Bid{}, marketerrors.ErrVersionConflict)
			},
			expectError:   true,
			expectedError: marketerrors.ErrVersionConflict,
		},
		{
			name:    "bid_not_found",
			session: session,
			price:   38000,
			version: 1,
			mockSetup: func() {
				mockRepo.EXPECT().GetBid("bid1").Return(model.Bid{}, marketerrors.ErrBidNotFound)
			},
			expectError:   true,
			expectedError: marketerrors.ErrBidNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			updated, err := service.UpdateBid(tc.session, "bid1", tc.price, 0, "", tc.version)
			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError))
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.price, updated.Price)
				require.Equal(t, 1, updated.UpdateCount)
				require.Equal(t, 2, updated.Version)
				// timelineDays 0 keeps the existing timeline
				require.Equal(t, 30, updated.TimelineDays)
			}
		})
	}
}

// Revision notes are numbered and appended, never overwritten
func TestBiddingService_UpdateBid_NoteAppending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := NewBiddingService(mockRepo)

	bid := model.Bid{
		BidID:        "bid1",
		JobID:        "job1",
		ContractorID: "contractor1",
		Price:        50000,
		TimelineDays: 30,
		Status:       model.BidStatusPending,
		UpdateCount:  1,
		Notes:        "[Update 1]: lowered after site visit",
		Version:      2,
	}

	mockRepo.EXPECT().GetBid("bid1").Return(bid, nil)
	mockRepo.EXPECT().GetJob("job1").Return(model.Job{JobID: "job1"}, nil)
	mockRepo.EXPECT().GetLowestPendingBid("job1", "contractor1").Return(model.Bid{}, marketerrors.ErrNoBids)

	var written model.Bid
	mockRepo.EXPECT().UpdateBid(gomock.Any(), 2).DoAndReturn(func(b model.Bid, v int) (model.Bid, error) {
		written = b
		b.Version = v + 1
		return b, nil
	})

	_, err := service.UpdateBid(model.Session{UserID: "contractor1"}, "bid1", 48000, 25, "materials sourced cheaper", 0)
	require.NoError(t, err)

	lines := strings.Split(written.Notes, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "[Update 1]: lowered after site visit", lines[0])
	require.Equal(t, "[Update 2]: materials sourced cheaper", lines[1])
	require.Equal(t, 2, written.UpdateCount)
	require.Equal(t, 25, written.TimelineDays)
}

// Tests CreateJob validation
func TestBiddingService_CreateJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := NewBiddingService(mockRepo)

	session := model.Session{UserID: "client1", Role: model.RoleClient}
	milestones := []model.Milestone{
		{Name: "Foundation", Amount: 200000},
		{Name: "Structure", Amount: 500000},
	}

	tests := []struct {
		name        string
		session     model.Session
		title       string
		budget      float64
		milestones  []model.Milestone
		mockSetup   func()
		expectError bool
	}{
		{
			name:       "valid_job",
			session:    session,
			title:      "Two-storey house",
			budget:     500000,
			milestones: milestones,
			mockSetup: func() {
				mockRepo.EXPECT().CreateJob(gomock.Any()).Return(nil)
			},
		},
		{
			name:        "missing_caller",
			session:     model.Session{},
			title:       "Two-storey house",
			mockSetup:   func() {},
			expectError: true,
		},
		{
			name:        "missing_title",
			session:     session,
			title:       "",
			mockSetup:   func() {},
			expectError: true,
		},
		{
			name:        "negative_budget",
			session:     session,
			title:       "Two-storey house",
			budget:      -1,
			mockSetup:   func() {},
			expectError: true,
		},
		{
			name:        "unnamed_milestone",
			session:     session,
			title:       "Two-storey house",
			milestones:  []model.Milestone{{Name: "", Amount: 1000}},
			mockSetup:   func() {},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			job, err := service.CreateJob(tc.session, tc.title, "desc", tc.budget, tc.milestones)
			if tc.expectError {
				require.Error(t, err)
				require.True(t, errors.Is(err, marketerrors.ErrInvalidJob))
			} else {
				require.NoError(t, err)
				require.NotEmpty(t, job.JobID)
				require.Equal(t, tc.session.UserID, job.ClientID)
				require.Equal(t, tc.title, job.Title)
			}
		})
	}
}

// Tests GetBidsForJob ordering
func TestBiddingService_GetBidsForJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := NewBiddingService(mockRepo)

	now := time.Now().UTC()
	mockRepo.EXPECT().GetBidsByJob("job1").Return([]model.Bid{
		{BidID: "bid1", Price: 95000, CreatedAt: now},
		{BidID: "bid2", Price: 90000, CreatedAt: now.Add(time.Second)},
		{BidID: "bid3", Price: 90000, CreatedAt: now},
	}, nil)

	bids, err := service.GetBidsForJob("job1")
	require.NoError(t, err)
	require.Len(t, bids, 3)
	require.Equal(t, "bid3", bids[0].BidID)
	require.Equal(t, "bid2", bids[1].BidID)
	require.Equal(t, "bid1", bids[2].BidID)
}

// Tests GetLowestBid
func TestBiddingService_GetLowestBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := NewBiddingService(mockRepo)

	t.Run("lowest_found", func(t *testing.T) {
		mockRepo.EXPECT().GetLowestPendingBid("job1", "").Return(model.Bid{BidID: "bid1", Price: 40000}, nil)

		bid, err := service.GetLowestBid("job1")
		require.NoError(t, err)
		require.Equal(t, "bid1", bid.BidID)
	})

	t.Run("no_bids", func(t *testing.T) {
		mockRepo.EXPECT().GetLowestPendingBid("job1", "").Return(model.Bid{}, marketerrors.ErrNoBids)

		_, err := service.GetLowestBid("job1")
		require.Error(t, err)
		require.True(t, errors.Is(err, marketerrors.ErrNoBids))
	})

	t.Run("empty_jobID", func(t *testing.T) {
		_, err := service.GetLowestBid("")
		require.Error(t, err)
		require.True(t, errors.Is(err, marketerrors.ErrInvalidBid))
	})
}
