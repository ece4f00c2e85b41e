package handlers

import (
	"testing"

	"collection-console/internal/testutil"
	"collection-console/internal/version"
)

func TestHealthHandlerWithoutBuildSha(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/health")

	tc.CallHandler(HealthHandler)

	tc.AssertStatus(200)
	tc.AssertJSONField("status", "ok")
	tc.AssertJSONField("sha", nil)
}

func TestHealthHandlerWithBuildSha(t *testing.T) {
	original := version.GitCommit
	version.GitCommit = "abc1234"
	t.Cleanup(func() { version.GitCommit = original })

	tc := testutil.NewTestContext(t, "GET", "/api/health")

	tc.CallHandler(HealthHandler)

	tc.AssertStatus(200)
	tc.AssertJSONField("sha", "abc1234")
}
