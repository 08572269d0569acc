package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"buildmart/internal/marketerrors"
	model "buildmart/internal/models"
	"buildmart/utils"
)

// GormRepo is the Postgres-backed implementation of MarketDB
type GormRepo struct {
	db *gorm.DB
}

// OpenGorm connects to Postgres with retries, runs migrations and returns a
// ready repository.
func OpenGorm(dsn string) (*GormRepo, error) {
	const maxAttempts = 10

	var db *gorm.DB
	var err error
	for i := 1; i <= maxAttempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		utils.Warn("database connection failed, retrying", map[string]any{
			"attempt": i,
			"max":     maxAttempts,
			"error":   err.Error(),
		})
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to database after %d attempts: %w", maxAttempts, err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.Bid{},
		&model.OngoingWork{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &GormRepo{db: db}, nil
}

// NewGormRepo wraps an existing gorm connection
func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

func (r *GormRepo) CreateJob(job model.Job) error {
	if err := r.db.Create(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create job %s: %w", job.JobID, marketerrors.ErrInvalidJob)
		}
		return fmt.Errorf("create job %s: %w", job.JobID, err)
	}
	return nil
}

func (r *GormRepo) GetJob(jobID string) (model.Job, error) {
	var job model.Job
	if err := r.db.First(&job, "job_id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Job{}, fmt.Errorf("get job %s: %w", jobID, marketerrors.ErrJobNotFound)
		}
		return model.Job{}, fmt.Errorf("get job %s: %w", jobID, err)
	}
	return job, nil
}

func (r *GormRepo) CreateBid(bid model.Bid) error {
	var count int64
	if err := r.db.Model(&model.Job{}).Where("job_id = ?", bid.JobID).Count(&count).Error; err != nil {
		return fmt.Errorf("create bid for job %s: %w", bid.JobID, err)
	}
	if count == 0 {
		return fmt.Errorf("create bid for job %s: %w", bid.JobID, marketerrors.ErrJobNotFound)
	}

	if err := r.db.Create(&bid).Error; err != nil {
		return fmt.Errorf("create bid %s: %w", bid.BidID, err)
	}
	return nil
}

func (r *GormRepo) GetBid(bidID string) (model.Bid, error) {
	var bid model.Bid
	if err := r.db.First(&bid, "bid_id = ?", bidID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, marketerrors.ErrBidNotFound)
		}
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, err)
	}
	return bid, nil
}

func (r *GormRepo) GetBidsByJob(jobID string) ([]model.Bid, error) {
	var bids []model.Bid
	if err := r.db.Where("job_id = ?", jobID).Order("created_at").Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("get bids for job %s: %w", jobID, err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for job %s: %w", jobID, marketerrors.ErrNoBids)
	}
	return bids, nil
}

func (r *GormRepo) GetLowestPendingBid(jobID, excludeContractorID string) (model.Bid, error) {
	q := r.db.Where("job_id = ? AND status = ?", jobID, model.BidStatusPending)
	if excludeContractorID != "" {
		q = q.Where("contractor_id <> ?", excludeContractorID)
	}

	var bid model.Bid
	if err := q.Order("price, created_at").First(&bid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Bid{}, fmt.Errorf("get lowest pending bid for job %s: %w", jobID, marketerrors.ErrNoBids)
		}
		return model.Bid{}, fmt.Errorf("get lowest pending bid for job %s: %w", jobID, err)
	}
	return bid, nil
}

// UpdateBid applies the change only when the stored version still matches
// expectedVersion; zero rows affected means the bid vanished or someone got
// there first.
func (r *GormRepo) UpdateBid(bid model.Bid, expectedVersion int) (model.Bid, error) {
	bid.Version = expectedVersion + 1
	bid.UpdatedAt = time.Now().UTC()

	res := r.db.Model(&model.Bid{}).
		Where("bid_id = ? AND version = ?", bid.BidID, expectedVersion).
		Select("*").Omit("bid_id", "created_at").
		Updates(bid)
	if res.Error != nil {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", bid.BidID, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&model.Bid{}).Where("bid_id = ?", bid.BidID).Count(&count).Error; err != nil {
			return model.Bid{}, fmt.Errorf("update bid %s: %w", bid.BidID, err)
		}
		if count == 0 {
			return model.Bid{}, fmt.Errorf("update bid %s: %w", bid.BidID, marketerrors.ErrBidNotFound)
		}
		return model.Bid{}, fmt.Errorf("update bid %s: %w", bid.BidID, marketerrors.ErrVersionConflict)
	}
	return bid, nil
}

func (r *GormRepo) GetUser(userID string) (model.User, error) {
	var user model.User
	if err := r.db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("get user %s: %w", userID, marketerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

// CreateWork relies on the unique index on bid_id for the one-work-per-bid
// invariant.
func (r *GormRepo) CreateWork(work model.OngoingWork) error {
	if err := r.db.Create(&work).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create work for bid %s: %w", work.BidID, marketerrors.ErrWorkExists)
		}
		return fmt.Errorf("create work for bid %s: %w", work.BidID, err)
	}
	return nil
}

func (r *GormRepo) GetWorkByBid(bidID string) (model.OngoingWork, error) {
	var work model.OngoingWork
	if err := r.db.First(&work, "bid_id = ?", bidID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.OngoingWork{}, fmt.Errorf("get work for bid %s: %w", bidID, marketerrors.ErrWorkNotFound)
		}
		return model.OngoingWork{}, fmt.Errorf("get work for bid %s: %w", bidID, err)
	}
	return work, nil
}
