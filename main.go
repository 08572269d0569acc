package main

import (
	"fmt"
	"os"

	bidding "buildmart/internal/biddingService"
	"buildmart/internal/config"
	model "buildmart/internal/models"
	"buildmart/internal/notify"
	"buildmart/internal/repository"
	"buildmart/internal/server"
	"buildmart/utils"
)

func main() {
	cfg := config.Load()
	utils.SetLevel(cfg.LogLevel)

	repo, err := buildRepo(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up storage: %v\n", err)
		os.Exit(1)
	}

	notifier := buildNotifier(cfg)

	biddingSvc := bidding.NewBiddingService(repo)
	agreementSvc := bidding.NewAgreementService(repo, notifier)

	router := server.SetupRouter(biddingSvc, agreementSvc)

	addr := ":" + cfg.ServerPort
	fmt.Printf("Starting BuildMart server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildRepo selects Postgres when a DSN is configured, otherwise an
// in-memory store seeded with sample records for local runs.
func buildRepo(cfg *config.Config) (repository.MarketDB, error) {
	if cfg.DBDSN != "" {
		return repository.OpenGorm(cfg.DBDSN)
	}

	utils.Warn("no DB_DSN configured, using in-memory repository", nil)
	repo := repository.NewMemoryRepo()
	prepopulate(repo)
	return repo, nil
}

// buildNotifier connects to RabbitMQ when configured, otherwise events are
// only logged.
func buildNotifier(cfg *config.Config) notify.Notifier {
	if cfg.AMQPURL == "" {
		return notify.LogNotifier{}
	}

	notifier, err := notify.NewAMQPNotifier(cfg.AMQPURL)
	if err != nil {
		utils.Warn("RabbitMQ unavailable, agreement events will be logged only", map[string]any{"error": err.Error()})
		return notify.LogNotifier{}
	}
	return notifier
}

// prepopulate adds sample users and jobs to the in-memory repo
func prepopulate(repo *repository.MemoryRepo) {
	users := []model.User{
		{UserID: "client1", Name: "Nimal Perera", Email: "nimal@example.com", Role: model.RoleClient},
		{UserID: "contractor1", Name: "Saman Builders", Email: "saman@example.com", Role: model.RoleContractor},
		{UserID: "contractor2", Name: "Lanka Constructions", Email: "lanka@example.com", Role: model.RoleContractor},
	}
	for _, u := range users {
		repo.AddUser(u)
	}

	jobs := []model.Job{
		{
			JobID:         "job1",
			ClientID:      "client1",
			Title:         "Two-storey house foundation",
			Description:   "Foundation and ground floor slab work",
			MinimumBudget: 500000,
			Milestones: []model.Milestone{
				{Name: "Excavation", Description: "Site clearing and excavation", Amount: 200000},
				{Name: "Foundation", Description: "Footings and foundation walls", Amount: 500000},
				{Name: "Slab", Description: "Ground floor slab", Amount: 300000},
			},
		},
		{
			JobID:         "job2",
			ClientID:      "client1",
			Title:         "Boundary wall",
			Description:   "120ft boundary wall with gate",
			MinimumBudget: 80000,
		},
	}
	for _, j := range jobs {
		repo.AddJob(j)
	}
}
