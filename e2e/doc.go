//go:build e2e

// Package e2e holds the browser test specifications for the blog.
//
// These tests are isolated from the standard test suite via build tags.
// They require a Chrome browser (auto-downloaded by Rod if not present)
// and are intended for CI pipelines or explicit local testing.
//
// Running E2E tests:
//
//	go test -tags=e2e ./e2e/...
//
// Running all tests except E2E:
//
//	go test ./...
//
// By default each test starts the hermetic demo blog on a random port
// and drives its own browser against it. Set BLOGWATCH_BASE_URL (or
// base_url in blogwatch.yaml) to point the suite at a real deployment;
// content-specific assertions then relax to the generic behavioral
// checks.
//
// Test isolation:
// Each test owns its server, browser, and pages. Nothing is shared, so
// tests can run in parallel under the normal go test worker model.
package e2e
