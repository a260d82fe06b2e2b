package api_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/toynest/toynest/pkg/nestsdk"
)

/*
 * Common constants and helper functions for marketplace end-to-end tests.
 * This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "toynest-api-test:latest"

	testPassword = "Correct-Horse-42"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building ToyNest API Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up ToyNest API Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/api/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupAPIContainer starts the marketplace service in a container and returns
// the base URL. Mail is delivered to the console, so reset links are read back
// out of the container logs.
func setupAPIContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"TOYNEST_DATABASE_FILE": "/toynest.db",
			"TOYNEST_PEPPER_FILE":   "/pepper",
			"TOYNEST_ISSUER":        "toynest",
			"TOYNEST_ALGORITHM":     "EdDSA",
			"TOYNEST_BASE_URL":      "http://localhost:8080",
			"ENV":                   "test",
			"LOG_LEVEL":             "info",
			"LOG_FORMAT":            "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupAPIContainerWithLogs behaves like setupAPIContainer but also returns
// the container so tests can read its logs (for the password-reset link).
func setupAPIContainerWithLogs(t *testing.T) (string, testcontainers.Container, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"TOYNEST_DATABASE_FILE": "/toynest.db",
			"TOYNEST_PEPPER_FILE":   "/pepper",
			"TOYNEST_ISSUER":        "toynest",
			"TOYNEST_ALGORITHM":     "EdDSA",
			"TOYNEST_BASE_URL":      "http://localhost:8080",
			"ENV":                   "test",
			"LOG_LEVEL":             "info",
			"LOG_FORMAT":            "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, container, cleanup
}

// signupAndSignIn registers a fresh account and signs it in.
func signupAndSignIn(t *testing.T, client *nestsdk.Client, email, nickname string) *nestsdk.Session {
	t.Helper()
	ctx := context.Background()

	_, err := client.Signup(ctx, nestsdk.SignupRequest{
		Email:     email,
		Password:  testPassword,
		FirstName: "Taylor",
		LastName:  "Nguyen",
		Nickname:  nickname,
		ZipCode:   "2000",
	})
	require.NoError(t, err, "Signup should succeed")

	session, err := client.SignIn(ctx, email, testPassword)
	require.NoError(t, err, "Sign-in should succeed")
	require.NotNil(t, session)

	return session
}

// assertAPIErrorCode verifies an error is an APIError with the given status
// and code.
func assertAPIErrorCode(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)

	apiErr, ok := err.(*nestsdk.APIError)
	require.True(t, ok, "expected *nestsdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *nestsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
