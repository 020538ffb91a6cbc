package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"

	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// defaultPassword is used for every user registered by the test steps.
const defaultPassword = "password-123"

// registerDomainSteps registers steps that drive the API through realistic
// user flows: registration, authentication and resource setup.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Step(`^a user "([^"]*)" is registered$`, aUserIsRegistered)
	ctx.Step(`^I use the scheduler secret$`, iUseTheSchedulerSecret)
	ctx.Step(`^I use an invalid scheduler secret$`, iUseAnInvalidSchedulerSecret)
	ctx.Step(`^I have a wallet named "([^"]*)"$`, iHaveAWalletNamed)
	ctx.Step(`^I have a goal titled "([^"]*)" with target "([^"]*)"$`, iHaveAGoalTitledWithTarget)
	ctx.Step(`^I store the response field "id"$`, iStoreTheResponseID)
}

// register creates a user through the public API and returns the parsed
// auth response. Falls back to login when the email is already taken.
func (tc *TestContext) register(email string) (map[string]interface{}, error) {
	body := fmt.Sprintf(`{"email":%q,"name":"Carol","password":%q}`, email, defaultPassword)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", []byte(body)); err != nil {
		return nil, err
	}

	if tc.response.StatusCode == http.StatusConflict {
		loginBody := fmt.Sprintf(`{"email":%q,"password":%q}`, email, defaultPassword)
		if err := tc.doRequest(http.MethodPost, "/api/v1/auth/login", []byte(loginBody)); err != nil {
			return nil, err
		}
	}

	if tc.response.StatusCode != http.StatusCreated && tc.response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to register %s: status %d, body %s", email, tc.response.StatusCode, string(tc.responseBody))
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse auth response: %w", err)
	}
	return data, nil
}

func iAmAuthenticated(ctx context.Context) (context.Context, error) {
	return iAmAuthenticatedAs(ctx, "carol@email.com")
}

func iAmAuthenticatedAs(ctx context.Context, email string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	data, err := tc.register(email)
	if err != nil {
		return ctx, err
	}

	token, ok := data["access_token"].(string)
	if !ok || token == "" {
		return ctx, fmt.Errorf("auth response has no access_token: %s", string(tc.responseBody))
	}
	tc.accessToken = token
	if refresh, ok := data["refresh_token"].(string); ok {
		tc.refreshToken = refresh
	}

	return SetTestContext(ctx, tc), nil
}

func aUserIsRegistered(ctx context.Context, email string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	// Register without switching the scenario's active token.
	previousToken := tc.accessToken
	tc.accessToken = ""
	_, err := tc.register(email)
	tc.accessToken = previousToken
	if err != nil {
		return ctx, err
	}

	return SetTestContext(ctx, tc), nil
}

func iUseTheSchedulerSecret(ctx context.Context) (context.Context, error) {
	return iSetHeaderTo(ctx, middleware.SchedulerSecretHeader, testSchedulerSecret)
}

func iUseAnInvalidSchedulerSecret(ctx context.Context) (context.Context, error) {
	return iSetHeaderTo(ctx, middleware.SchedulerSecretHeader, "wrong-secret")
}

func iHaveAWalletNamed(ctx context.Context, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"name":%q,"type":"checking","initial_balance":100.0}`, name)
	if err := tc.doRequest(http.MethodPost, "/api/v1/wallets", []byte(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("failed to create wallet: status %d, body %s", tc.response.StatusCode, string(tc.responseBody))
	}

	return iStoreTheResponseID(ctx)
}

func iHaveAGoalTitledWithTarget(ctx context.Context, title, target string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"title":%q,"target_amount":%s}`, title, target)
	if err := tc.doRequest(http.MethodPost, "/api/v1/goals", []byte(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("failed to create goal: status %d, body %s", tc.response.StatusCode, string(tc.responseBody))
	}

	return iStoreTheResponseID(ctx)
}

func iStoreTheResponseID(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return ctx, fmt.Errorf("failed to parse response JSON: %w", err)
	}
	id, ok := data["id"].(string)
	if !ok || id == "" {
		return ctx, fmt.Errorf("response has no id field: %s", string(tc.responseBody))
	}
	tc.lastCreatedID = id

	return SetTestContext(ctx, tc), nil
}
