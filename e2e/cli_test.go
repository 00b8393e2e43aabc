package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/timestamper/internal/api"
	"github.com/mcoot/timestamper/internal/api/response"
	"github.com/mcoot/timestamper/internal/cli"
	"github.com/mcoot/timestamper/internal/factory"
	"github.com/mcoot/timestamper/internal/model"
	"github.com/mcoot/timestamper/internal/testutil"
)

// testServer is a real HTTP server backed by a SQLite file that the CLI
// opens as well
type testServer struct {
	baseURL string
	dbPath  string
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "times.db")
	logger := testutil.NopLogger()

	app, err := factory.New(factory.Config{
		Logger:      logger,
		StorageType: factory.StorageTypeSQLite,
		SQLitePath:  dbPath,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		TimeService: app.TimeService,
	})

	server := api.NewServer(router, api.DefaultServerConfig(), logger)

	go func() {
		_ = server.Serve(listener)
	}()

	t.Cleanup(func() {
		_ = server.Shutdown(context.Background())
		_ = app.Close()
	})

	baseURL := "http://" + listener.Addr().String()
	waitForServer(t, baseURL+"/api/v1/health")

	return &testServer{baseURL: baseURL, dbPath: dbPath}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatalf("server did not become ready at %s", url)
}

func (s *testServer) do(t *testing.T, method, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, s.baseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// runCLI runs the CLI in-process against the server's database
func (s *testServer) runCLI(args ...string) (string, error) {
	cmd := cli.NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{
		"--storage", factory.StorageTypeSQLite,
		"--sqlite-path", s.dbPath,
		"--output", "json",
	}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestE2E_SavedViaAPILoadedViaCLI(t *testing.T) {
	srv := startTestServer(t)

	resp := srv.do(t, http.MethodPut, "/api/v1/times/lastRestart?player=Steve")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	out, err := srv.runCLI("load", "lastRestart", "--player", "Steve")
	require.NoError(t, err)

	var item model.TimeItem
	require.NoError(t, json.Unmarshal([]byte(out), &item))
	assert.InDelta(t, float64(time.Now().UnixMilli()), item.Milliseconds, float64(time.Minute.Milliseconds()))
}

func TestE2E_SavedViaCLIListedViaAPI(t *testing.T) {
	srv := startTestServer(t)

	_, err := srv.runCLI("save", "firstJoin")
	require.NoError(t, err)
	_, err = srv.runCLI("save", "firstJoin", "--player", "Alex")
	require.NoError(t, err)

	resp := srv.do(t, http.MethodGet, "/api/v1/times")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list response.TimeListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Times, 2)

	players := []string{list.Times[0].Player, list.Times[1].Player}
	assert.ElementsMatch(t, []string{"", "Alex"}, players)
}

func TestE2E_CompareAcrossSurfaces(t *testing.T) {
	srv := startTestServer(t)

	for _, id := range []string{"a", "b"} {
		resp := srv.do(t, http.MethodPut, fmt.Sprintf("/api/v1/times/%s", id))
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	}

	out, err := srv.runCLI("compare", "a", "b", "--unit", "hours")
	require.NoError(t, err)

	var result cli.CompareResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "hours", result.Unit)
	assert.Less(t, result.Difference, 1.0)
}

func TestE2E_MissingTime(t *testing.T) {
	srv := startTestServer(t)

	resp := srv.do(t, http.MethodGet, "/api/v1/times/nothing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, err := srv.runCLI("load", "nothing")
	assert.ErrorIs(t, err, model.ErrTimeNotFound)
}
