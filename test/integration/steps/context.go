// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finance-app/backend/config"
	"github.com/finance-app/backend/internal/infra/dependency"
	"github.com/finance-app/backend/internal/integration/persistence"
	"github.com/finance-app/backend/internal/integration/persistence/model"
	"github.com/finance-app/backend/test/integration/mock"
)

// testSchedulerSecret is the shared secret wired into the test server.
const testSchedulerSecret = "test-scheduler-secret"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken  string
	refreshToken string

	// IDs captured from create steps, usable as {id} in endpoints
	lastCreatedID string

	// Config
	cfg *config.Config
	db  *mock.Db
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

func testModels() []any {
	return []any{
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.EntryModel{},
		&model.WalletModel{},
		&model.CreditCardModel{},
		&model.BudgetModel{},
		&model.RecurringTemplateModel{},
		&model.InvoiceModel{},
		&model.GoalModel{},
		&model.GoalMemberModel{},
		&model.NotificationModel{},
		&model.IntegrationLogModel{},
		&model.PlanModel{},
		&model.FeatureModel{},
	}
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb(testModels())
		if err := db.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset test database: %w", err)
		}
		if err := persistence.SeedSystemCategories(db.Conn); err != nil {
			return ctx, fmt.Errorf("failed to seed categories: %w", err)
		}
		if err := persistence.SeedPlans(db.Conn); err != nil {
			return ctx, fmt.Errorf("failed to seed plans: %w", err)
		}

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Scheduler.Secret = testSchedulerSecret

		injector, err := dependency.NewInjector(cfg, db.Conn)
		if err != nil {
			return ctx, fmt.Errorf("failed to wire dependencies: %w", err)
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			cfg:            cfg,
			db:             db,
		}
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDomainSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// expandEndpoint replaces the {id} placeholder with the most recently
// created resource ID.
func (tc *TestContext) expandEndpoint(endpoint string) string {
	return strings.ReplaceAll(endpoint, "{id}", tc.lastCreatedID)
}

// doRequest sends an HTTP request against the test server and captures the
// response on the context.
func (tc *TestContext) doRequest(method, endpoint string, body []byte) error {
	url := tc.server.URL + tc.expandEndpoint(endpoint)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBufferString(tc.expandEndpoint(string(body)))
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, []byte(body.Content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if _, ok := data[field]; !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	return nil
}
