package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	bidding "buildmart/internal/biddingService"
	model "buildmart/internal/models"
	"buildmart/internal/notify"
	"buildmart/internal/repository"
	"buildmart/internal/server"
	"buildmart/services/market/helpers"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory repository seeded
// with the given users and jobs.
func SetupTestRouter(users []model.User, jobs []model.Job) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	for _, u := range users {
		repo.AddUser(u)
	}
	for _, j := range jobs {
		repo.AddJob(j)
	}

	biddingService := bidding.NewBiddingService(repo)
	agreementService := bidding.NewAgreementService(repo, notify.LogNotifier{})
	return server.SetupRouter(biddingService, agreementService)
}

// ExecuteRequest executes an HTTP request as userID and returns the recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, userID string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(helpers.HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request as userID and parses the
// JSON envelope, returning the data payload for 2xx responses.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	case nil:
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, userID, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code >= 200 && w.Code < 300 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}

	return resp, w
}

// marketFixtures returns the seed data the API tests run against: one client,
// two contractors and a job with milestones.
func marketFixtures() ([]model.User, []model.Job) {
	users := []model.User{
		{UserID: "client1", Name: "Nimal Perera", Email: "nimal@example.com", Role: model.RoleClient},
		{UserID: "contractor1", Name: "Saman Builders", Email: "saman@example.com", Role: model.RoleContractor},
		{UserID: "contractor2", Name: "Lanka Constructions", Email: "lanka@example.com", Role: model.RoleContractor},
	}
	jobs := []model.Job{
		{
			JobID:    "job1",
			ClientID: "client1",
			Title:    "Two-storey house",
			Milestones: []model.Milestone{
				{Name: "Foundation", Description: "Excavation and concrete", Amount: 200000},
				{Name: "Structure", Description: "Walls and roof", Amount: 500000},
				{Name: "Finishing", Description: "Fittings and paint", Amount: 300000},
			},
			MinimumBudget: 500000,
		},
	}
	return users, jobs
}
