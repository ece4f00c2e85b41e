package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collection-console/internal/backend"
	"collection-console/internal/config"
	"collection-console/internal/testutil"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*backend.Client, *testutil.TestLogHandler) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logHandler := testutil.NewTestLogHandler()
	client, err := backend.NewClient(config.BackendConfig{
		Host:         server.URL,
		ServiceToken: "service-token",
	}, slog.New(logHandler))
	require.NoError(t, err)

	return client, logHandler
}

func TestMakeRequestSendsBothCredentials(t *testing.T) {
	var gotAuth, gotService, gotRequestID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotService = r.Header.Get("X-External-Access-Token")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"collections":[]}`))
	})

	_, err := client.GetCollections(context.Background(), "caller-token")

	require.NoError(t, err)
	assert.Equal(t, "caller-token", gotAuth)
	assert.Equal(t, "service-token", gotService)
	assert.NotEmpty(t, gotRequestID)
}

func TestMakeRequestForbiddenReturnsPermissionMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.GetCollections(context.Background(), "caller-token")

	require.Error(t, err)
	assert.Equal(t,
		"Error connecting to the backend: You do not have sufficient permissions.",
		err.Error())
}

func TestMakeRequestNonOKEmbedsStatusCode(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetCollections(context.Background(), "caller-token")

	require.Error(t, err)
	assert.Equal(t, "Error connecting to the backend: HTTP 502.", err.Error())
}

func TestMakeRequestNetworkErrorMessage(t *testing.T) {
	logHandler := testutil.NewTestLogHandler()
	client, err := backend.NewClient(config.BackendConfig{
		Host:         "http://127.0.0.1:1",
		ServiceToken: "service-token",
	}, slog.New(logHandler))
	require.NoError(t, err)

	_, err = client.GetCollections(context.Background(), "caller-token")

	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Error connecting to the backend: "))
}

func TestMakeRequestMalformedBodyBecomesEmptyList(t *testing.T) {
	client, logHandler := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"collections": [truncated`))
	})

	list, err := client.GetCollections(context.Background(), "caller-token")

	require.NoError(t, err)
	assert.Empty(t, list.Collections)
	assert.True(t, logHandler.ContainsMessage(slog.LevelWarn,
		"backend returned a malformed JSON body, substituting an empty object"))
}

func TestGetCollectionFiltersClientSide(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections", r.URL.Path)
		w.Write([]byte(`{"collections":[{"id":"col-1","name":"First"},{"id":"col-2","name":"Second"}]}`))
	})

	collection, err := client.GetCollection(context.Background(), "col-2", "caller-token")

	require.NoError(t, err)
	assert.Equal(t, "Second", collection.Name)
}

func TestGetCollectionNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"collections":[]}`))
	})

	_, err := client.GetCollection(context.Background(), "missing", "caller-token")

	require.Error(t, err)
	assert.Equal(t, "Collection not found", err.Error())
}

func TestUploadFileSendsMultipart(t *testing.T) {
	var gotPath, gotContentType, gotFilename, gotContents string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		gotFilename = header.Filename
		var sb strings.Builder
		_, err = io.Copy(&sb, file)
		require.NoError(t, err)
		gotContents = sb.String()

		w.WriteHeader(http.StatusCreated)
	})

	err := client.UploadFile(context.Background(), "col-1", "notes.txt",
		strings.NewReader("file body"), "caller-token")

	require.NoError(t, err)
	assert.Equal(t, "/collections/col-1/resources", gotPath)
	assert.Contains(t, gotContentType, "multipart/form-data")
	assert.Equal(t, "notes.txt", gotFilename)
	assert.Equal(t, "file body", gotContents)
}

func TestAddURLsPostsJSONArray(t *testing.T) {
	var gotBody []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/col-1/resources/urls", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	err := client.AddURLs(context.Background(), "col-1",
		[]string{"https://a.example", "https://b.example"}, "caller-token")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, gotBody)
}

func TestGetUsersRequestsFullPage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/col-1/users", r.URL.Path)
		assert.Equal(t, "1000", r.URL.Query().Get("page_size"))
		w.Write([]byte(`{"user_roles":[{"user_id":"u1","user_email":"a@example.com","role":"member"}]}`))
	})

	users, err := client.GetUsers(context.Background(), "col-1", "caller-token")

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a@example.com", users[0].UserEmail)
}
