//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/docker/docker/client"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	assignmentModel "github.com/avsafety/peer-review/internal/assignment/model"
	matchingModel "github.com/avsafety/peer-review/internal/matching/model"
	organizationModel "github.com/avsafety/peer-review/internal/organization/model"
)

// E2ETestSuite contains test infrastructure
type E2ETestSuite struct {
	suite.Suite
	ctx              context.Context
	pgContainer      *postgres.PostgresContainer
	db               *gorm.DB
	appContainer     testcontainers.Container
	baseURL          string
	httpClient       *http.Client
	connectionString string
}

// SetupSuite runs once before all tests
func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(s.ctx,
		"postgres:12-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")
	s.connectionString = connStr

	// Connect to database (for test seeding and assertions only).
	// Migrations are applied by the application container on startup.
	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	// Get PostgreSQL container's internal IP for inter-container communication
	containerName, err := pgContainer.Name(s.ctx)
	require.NoError(s.T(), err, "failed to get PostgreSQL container name")

	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	require.NoError(s.T(), err, "failed to create Docker client")
	defer dockerClient.Close()

	containerNameClean := strings.TrimPrefix(containerName, "/")
	containerInfo, err := dockerClient.ContainerInspect(s.ctx, containerNameClean)
	require.NoError(s.T(), err, "failed to inspect PostgreSQL container")

	var dbHost string
	var dbPort = "5432"
	if len(containerInfo.NetworkSettings.Networks) > 0 {
		for _, network := range containerInfo.NetworkSettings.Networks {
			dbHost = network.IPAddress
			break
		}
	}
	if dbHost == "" {
		dbHost = containerNameClean
	}

	// Start application container from the pre-built image
	appContainer, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "peer-review-e2e:test",
			ExposedPorts: []string{"8080/tcp"},
			Env: map[string]string{
				"DB_HOST":                dbHost,
				"DB_PORT":                dbPort,
				"DB_USER":                "testuser",
				"DB_PASSWORD":            "testpass",
				"DB_NAME":                "testdb",
				"DB_SSLMODE":             "disable",
				"DB_TIMEZONE":            "UTC",
				"DB_RETRY_MAX_ATTEMPTS":  "5",
				"DB_RETRY_INITIAL_DELAY": "1s",
				"DB_RETRY_MAX_DELAY":     "30s",
				"DB_RETRY_MULTIPLIER":    "2.0",
				"SERVER_HOST":            "",
				"SERVER_PORT":            ":8080",
				"SERVER_READ_TIMEOUT":    "10s",
				"SERVER_WRITE_TIMEOUT":   "10s",
				"SERVER_IDLE_TIMEOUT":    "120s",
				"GIN_MODE":               "release",
				"LOG_LEVEL":              "info",
				"LOG_FORMAT":             "json",
				"LOG_OUTPUT":             "stdout",
				"MIGRATIONS_PATH":        "migrations",
			},
			WaitingFor: wait.ForHTTP("/health").
				WithPort("8080/tcp").
				WithStartupTimeout(120 * time.Second).
				WithPollInterval(2 * time.Second),
		},
		Started: true,
	})
	require.NoError(s.T(), err, "failed to start application container")
	s.appContainer = appContainer

	host, err := appContainer.Host(s.ctx)
	require.NoError(s.T(), err, "failed to get container host")

	port, err := appContainer.MappedPort(s.ctx, "8080")
	require.NoError(s.T(), err, "failed to get container port")

	s.baseURL = fmt.Sprintf("http://%s:%s", host, port.Port())
	s.httpClient = &http.Client{
		Timeout: 30 * time.Second,
	}

	s.waitForApp()
	s.verifyMigrations()
}

// TearDownSuite runs once after all tests
func (s *E2ETestSuite) TearDownSuite() {
	if s.appContainer != nil {
		_ = s.appContainer.Terminate(s.ctx)
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

// SetupTest runs before each test
func (s *E2ETestSuite) SetupTest() {
	s.cleanDatabase()
}

// cleanDatabase truncates all tables
func (s *E2ETestSuite) cleanDatabase() {
	s.db.Exec("TRUNCATE TABLE assignment_reviewers CASCADE")
	s.db.Exec("TRUNCATE TABLE assignments CASCADE")
	s.db.Exec("TRUNCATE TABLE conflicts_of_interest CASCADE")
	s.db.Exec("TRUNCATE TABLE availability_periods CASCADE")
	s.db.Exec("TRUNCATE TABLE reviewer_languages CASCADE")
	s.db.Exec("TRUNCATE TABLE reviewer_expertise CASCADE")
	s.db.Exec("TRUNCATE TABLE reviewers CASCADE")
	s.db.Exec("TRUNCATE TABLE organizations CASCADE")
}

// waitForApp waits for the application to be ready
func (s *E2ETestSuite) waitForApp() {
	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		resp, err := s.httpClient.Get(s.baseURL + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(1 * time.Second)
	}
	s.T().Fatal("application did not become ready in time")
}

// verifyMigrations checks that the application applied its migrations
func (s *E2ETestSuite) verifyMigrations() {
	tables := []string{
		"organizations", "reviewers", "reviewer_expertise", "reviewer_languages",
		"availability_periods", "conflicts_of_interest", "assignments", "assignment_reviewers",
	}

	for _, table := range tables {
		var exists bool
		err := s.db.Raw(`
			SELECT EXISTS (
				SELECT FROM information_schema.tables
				WHERE table_schema = 'public'
				AND table_name = ?
			)`, table).Scan(&exists).Error
		require.NoError(s.T(), err, "failed to check if table %s exists", table)

		if !exists {
			s.T().Logf("table %s is missing, application logs follow:", table)
			s.T().Log(s.getAppLogs())
			s.T().Fatalf("migrations were not applied")
		}
	}
}

// getAppLogs retrieves application container logs
func (s *E2ETestSuite) getAppLogs() string {
	if s.appContainer == nil {
		return ""
	}

	logs, err := s.appContainer.Logs(s.ctx)
	if err != nil {
		return fmt.Sprintf("Failed to get logs: %v", err)
	}
	defer logs.Close()

	logBytes, err := io.ReadAll(logs)
	if err != nil {
		return fmt.Sprintf("Failed to read logs: %v", err)
	}

	return string(logBytes)
}

// Helper methods for HTTP requests

// doRequest performs HTTP request and returns response
func (s *E2ETestSuite) doRequest(method, path string, body io.Reader) (*http.Response, []byte) {
	req, err := http.NewRequest(method, s.baseURL+path, body)
	require.NoError(s.T(), err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err, "failed to read response body")
	resp.Body.Close()

	return resp, respBody
}

// addOrganization registers an organization via HTTP API
func (s *E2ETestSuite) addOrganization(req *organizationModel.AddOrganizationRequest) *http.Response {
	bodyBytes, _ := json.Marshal(req)
	resp, respBody := s.doRequest("POST", "/organizations/add", strings.NewReader(string(bodyBytes)))

	if resp.StatusCode != http.StatusCreated {
		s.T().Logf("failed to add organization, status %d, body %s", resp.StatusCode, string(respBody))
	}
	return resp
}

// seededProfile describes a reviewer for direct database seeding. Reviewer
// profiles arrive through data synchronization, not the public API, so the
// tests insert them directly.
type seededProfile struct {
	UserID           string
	HomeOrgID        string
	YearsExperience  float64
	ReviewsCompleted int
	IsLeadQualified  bool
	ExpertiseArea    string
	ExpertiseLevel   string
	Language         string
	Proficiency      string
	AvailableFrom    string
	AvailableTo      string
	ConflictOrgID    string
	ConflictType     string
}

// seedReviewer inserts a reviewer profile directly into the database
func (s *E2ETestSuite) seedReviewer(p seededProfile) {
	err := s.db.Exec(`
		INSERT INTO reviewers (user_id, profile_id, first_name, last_name, home_org_id,
			years_experience, reviews_completed, is_lead_qualified, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, TRUE)`,
		p.UserID, "prof_"+p.UserID, "Reviewer", p.UserID, p.HomeOrgID,
		p.YearsExperience, p.ReviewsCompleted, p.IsLeadQualified).Error
	require.NoError(s.T(), err, "failed to seed reviewer")

	err = s.db.Exec(`
		INSERT INTO reviewer_expertise (user_id, area, level, years)
		VALUES (?, ?, ?, 8)`, p.UserID, p.ExpertiseArea, p.ExpertiseLevel).Error
	require.NoError(s.T(), err, "failed to seed expertise")

	err = s.db.Exec(`
		INSERT INTO reviewer_languages (user_id, language, proficiency, can_conduct_interviews)
		VALUES (?, ?, ?, TRUE)`, p.UserID, p.Language, p.Proficiency).Error
	require.NoError(s.T(), err, "failed to seed language")

	err = s.db.Exec(`
		INSERT INTO availability_periods (user_id, start_date, end_date, type)
		VALUES (?, ?, ?, 'AVAILABLE')`, p.UserID, p.AvailableFrom, p.AvailableTo).Error
	require.NoError(s.T(), err, "failed to seed availability")

	if p.ConflictOrgID != "" {
		err = s.db.Exec(`
			INSERT INTO conflicts_of_interest (user_id, target_org_id, type)
			VALUES (?, ?, ?)`, p.UserID, p.ConflictOrgID, p.ConflictType).Error
		require.NoError(s.T(), err, "failed to seed conflict")
	}
}

// findReviewers calls the matching endpoint via HTTP API
func (s *E2ETestSuite) findReviewers(criteria map[string]interface{}) (*http.Response, *matchingModel.FindReviewersResponse) {
	bodyBytes, _ := json.Marshal(criteria)
	resp, respBody := s.doRequest("POST", "/matching/findReviewers", strings.NewReader(string(bodyBytes)))

	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	var result matchingModel.FindReviewersResponse
	err := json.Unmarshal(respBody, &result)
	require.NoError(s.T(), err, "failed to unmarshal findReviewers response")

	return resp, &result
}

// buildTeam calls the team builder endpoint via HTTP API
func (s *E2ETestSuite) buildTeam(criteria map[string]interface{}) (*http.Response, *matchingModel.BuildTeamResponse) {
	bodyBytes, _ := json.Marshal(criteria)
	resp, respBody := s.doRequest("POST", "/matching/buildTeam", strings.NewReader(string(bodyBytes)))

	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	var result matchingModel.BuildTeamResponse
	err := json.Unmarshal(respBody, &result)
	require.NoError(s.T(), err, "failed to unmarshal buildTeam response")

	return resp, &result
}

// canAssign calls the eligibility check endpoint via HTTP API
func (s *E2ETestSuite) canAssign(reviewerID string, criteria map[string]interface{}) (*http.Response, *matchingModel.CanAssignResponse) {
	req := map[string]interface{}{
		"reviewer_id": reviewerID,
		"criteria":    criteria,
	}
	bodyBytes, _ := json.Marshal(req)
	resp, respBody := s.doRequest("POST", "/matching/canAssign", strings.NewReader(string(bodyBytes)))

	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	var result matchingModel.CanAssignResponse
	err := json.Unmarshal(respBody, &result)
	require.NoError(s.T(), err, "failed to unmarshal canAssign response")

	return resp, &result
}

// createAssignment persists a team via HTTP API
func (s *E2ETestSuite) createAssignment(req *assignmentModel.CreateAssignmentRequest) (*http.Response, *assignmentModel.AssignmentResponse, []byte) {
	bodyBytes, _ := json.Marshal(req)
	resp, respBody := s.doRequest("POST", "/assignments/create", strings.NewReader(string(bodyBytes)))

	if resp.StatusCode != http.StatusCreated {
		return resp, nil, respBody
	}

	var result assignmentModel.AssignmentResponse
	err := json.Unmarshal(respBody, &result)
	require.NoError(s.T(), err, "failed to unmarshal assignment response")

	return resp, &result, respBody
}

// approveAssignment approves an assignment via HTTP API
func (s *E2ETestSuite) approveAssignment(assignmentID string) (*http.Response, *assignmentModel.AssignmentResponse) {
	req := assignmentModel.ApproveAssignmentRequest{AssignmentID: assignmentID}
	bodyBytes, _ := json.Marshal(req)
	resp, respBody := s.doRequest("POST", "/assignments/approve", strings.NewReader(string(bodyBytes)))

	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	var result assignmentModel.AssignmentResponse
	err := json.Unmarshal(respBody, &result)
	require.NoError(s.T(), err, "failed to unmarshal assignment response")

	return resp, &result
}

// replaceReviewer swaps a team member via HTTP API
func (s *E2ETestSuite) replaceReviewer(assignmentID, oldUserID, newUserID string) (*http.Response, *assignmentModel.ReplaceReviewerResponse, []byte) {
	req := assignmentModel.ReplaceReviewerRequest{
		AssignmentID: assignmentID,
		OldUserID:    oldUserID,
		NewUserID:    newUserID,
	}
	bodyBytes, _ := json.Marshal(req)
	resp, respBody := s.doRequest("POST", "/assignments/replaceReviewer", strings.NewReader(string(bodyBytes)))

	if resp.StatusCode != http.StatusOK {
		return resp, nil, respBody
	}

	var result assignmentModel.ReplaceReviewerResponse
	err := json.Unmarshal(respBody, &result)
	require.NoError(s.T(), err, "failed to unmarshal replace response")

	return resp, &result, respBody
}

// parseErrorResponse parses error response
func (s *E2ETestSuite) parseErrorResponse(respBody []byte) (string, string) {
	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(respBody, &errResp)
	require.NoError(s.T(), err, "failed to unmarshal error response")
	return errResp.Error.Code, errResp.Error.Message
}
