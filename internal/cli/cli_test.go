package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"go-employee-form/internal/cli"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAPI is an in-memory stand-in for the employee REST API.
type fakeAPI struct {
	mu      sync.Mutex
	records []map[string]any
	nextID  int
	posts   []map[string]any
	puts    []map[string]any
	failGet bool
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/Employee", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failGet {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(f.records)
	})
	mux.HandleFunc("GET /api/Employee/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, rec := range f.records {
			if rec["id"] == r.PathValue("id") {
				_ = json.NewEncoder(w).Encode(rec)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Employee not found"}`))
	})
	mux.HandleFunc("POST /api/Employee", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.posts = append(f.posts, body)
		f.nextID++
		body["id"] = strconv.Itoa(f.nextID)
		f.records = append(f.records, body)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	})
	mux.HandleFunc("PUT /api/Employee/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.puts = append(f.puts, body)
		for i, rec := range f.records {
			if rec["id"] == r.PathValue("id") {
				body["id"] = rec["id"]
				f.records[i] = body
				_ = json.NewEncoder(w).Encode(body)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("DELETE /api/Employee/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func seededAPI() *fakeAPI {
	return &fakeAPI{
		nextID: 1,
		records: []map[string]any{{
			"id": "1", "firstName": "John", "lastName": "Doe", "employeeCode": "1234",
			"contact": "0812345678", "dob": "1990-05-17T00:00:00", "address": "Main St",
		}},
	}
}

func run(t *testing.T, api *fakeAPI, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"EMPLOYEE_API_URL", "EMPLOYEE_DOB_FIELD", "EMPLOYEE_ADDRESS_POLICY", "EMPLOYEE_HTTP_TIMEOUT", "EMPLOYEE_THEME"} {
		t.Setenv(key, "")
	}

	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	cmd := cli.NewRootCommand(srv.Client(), zap.NewNop())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--api-url", srv.URL + "/api"}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList(t *testing.T) {
	t.Run("renders grid", func(t *testing.T) {
		out, err := run(t, seededAPI(), "list")

		require.NoError(t, err)
		assert.Contains(t, out, "John")
		assert.Contains(t, out, "1990-05-17")
		assert.NotContains(t, out, "T00:00:00")
	})

	t.Run("fetch failure", func(t *testing.T) {
		api := seededAPI()
		api.failGet = true

		out, err := run(t, api, "list")

		assert.Error(t, err)
		assert.Contains(t, out, "Failed to fetch employees")
	})
}

func TestAdd(t *testing.T) {
	t.Run("valid record is created and appended", func(t *testing.T) {
		api := seededAPI()

		out, err := run(t, api, "add",
			"--first-name", "Jane", "--last-name", "Roe", "--code", "4321",
			"--contact", "0899999999", "--dob", "1985-01-02", "--address", "Elm St",
		)

		require.NoError(t, err)
		assert.Contains(t, out, "Employee saved successfully")
		assert.Contains(t, out, "Jane")
		assert.Contains(t, out, "John")
		require.Len(t, api.posts, 1)
		assert.NotContains(t, api.posts[0], "id")
		assert.Equal(t, "1985-01-02", api.posts[0]["dob"])
	})

	t.Run("invalid record never reaches the API", func(t *testing.T) {
		api := seededAPI()

		out, err := run(t, api, "add",
			"--first-name", "Jane", "--last-name", "Roe", "--code", "12",
			"--contact", "0899999999", "--dob", "1985-01-02", "--address", "Elm St",
		)

		assert.Error(t, err)
		assert.Contains(t, out, "Employee code should be a 4-digit number")
		assert.Empty(t, api.posts)
	})

	t.Run("doB wire key", func(t *testing.T) {
		api := seededAPI()

		_, err := run(t, api, "--dob-field", "doB", "add",
			"--first-name", "Jane", "--last-name", "Roe", "--code", "4321",
			"--contact", "0899999999", "--dob", "1985-01-02", "--address", "Elm St",
		)

		require.NoError(t, err)
		require.Len(t, api.posts, 1)
		assert.Equal(t, "1985-01-02", api.posts[0]["doB"])
	})
}

func TestEdit(t *testing.T) {
	api := seededAPI()

	out, err := run(t, api, "edit", "1", "--address", "Elm St")

	require.NoError(t, err)
	assert.Contains(t, out, "Employee saved successfully")
	require.Len(t, api.puts, 1)
	assert.Equal(t, "Elm St", api.puts[0]["address"])
	assert.Equal(t, "John", api.puts[0]["firstName"])
	assert.Equal(t, "1990-05-17", api.puts[0]["dob"])
}

func TestDelete(t *testing.T) {
	out, err := run(t, seededAPI(), "delete", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Employee 1 deleted")
}
