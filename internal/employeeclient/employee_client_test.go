package employeeclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-employee-form/internal/employeeclient"
	"go-employee-form/internal/employeeform"
	"go-employee-form/internal/shared/apperror"
	"go-employee-form/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, dobField string) *employeeclient.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := employeeclient.NewClient(employeeclient.Config{
		BaseURL:  srv.URL + "/api/",
		DOBField: dobField,
	}, srv.Client())
	require.NoError(t, err)
	return c
}

func sampleRecord() employeeform.Record {
	return employeeform.Record{
		FirstName:    "Al",
		LastName:     "Lee",
		EmployeeCode: "1234",
		Contact:      "5551234567",
		DateOfBirth:  "1990-01-01",
		Address:      "Main St",
	}
}

func TestClient_List(t *testing.T) {
	ctx := context.Background()

	t.Run("tolerates doB and numeric ids", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/Employee", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `[
				{"id":1,"firstName":"Al","lastName":"Lee","employeeCode":"1234","contact":"5551234567","doB":"1990-01-01T00:00:00","address":"Main St"},
				{"id":"b7","firstName":"Bo","lastName":"Ng","employeeCode":"0042","contact":"5550000000","dob":"1985-06-30","address":"Elm"}
			]`)
		}, "")

		got, err := c.List(ctx)

		require.NoError(t, err)
		want := sampleRecord()
		want.ID = "1"
		assert.Equal(t, want, got[0])
		assert.Equal(t, "b7", got[1].ID)
		assert.Equal(t, "1985-06-30", got[1].DateOfBirth)
	})

	t.Run("non 2xx is a network error with fallback message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}, "")

		got, err := c.List(ctx)

		assert.Nil(t, got)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeNetworkError, appErr.Code)
		assert.Equal(t, employeeclient.MsgFetchFailed, appErr.Message)
		assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatus)
	})

	t.Run("malformed body is reported as unknown", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"not":"a list"}`)
		}, "")

		_, err := c.List(ctx)

		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInternalError, appErr.Code)
		assert.Equal(t, employeeclient.MsgBadResponse, appErr.Message)
	})

	t.Run("propagates request id from context", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "REQ-9", r.Header.Get("X-Request-ID"))
			_, _ = io.WriteString(w, `[]`)
		}, "")

		got, err := c.List(contextutil.WithRequestID(ctx, "REQ-9"))

		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestClient_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("posts without id and returns the echo", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/Employee", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.NotContains(t, body, "id")
			assert.Equal(t, "1990-01-01", body["dob"])
			assert.Equal(t, "1234", body["employeeCode"])

			body["id"] = 55
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(body)
		}, "")

		got, err := c.Create(ctx, sampleRecord())

		require.NoError(t, err)
		want := sampleRecord()
		want.ID = "55"
		assert.Equal(t, want, got)
	})

	t.Run("empty success body returns the sent record", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}, "")

		got, err := c.Create(ctx, sampleRecord())

		assert.NoError(t, err)
		assert.Equal(t, sampleRecord(), got)
	})

	t.Run("server error text wins", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"error":"DB down"}`)
		}, "")

		_, err := c.Create(ctx, sampleRecord())

		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, "DB down", appErr.Message)
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c, err := employeeclient.NewClient(employeeclient.Config{BaseURL: url}, nil)
		require.NoError(t, err)

		_, err = c.Create(ctx, sampleRecord())

		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeNetworkError, appErr.Code)
		assert.Equal(t, employeeclient.MsgSubmitFailed, appErr.Message)
		assert.Equal(t, 0, appErr.HTTPStatus)
	})
}

func TestClient_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("puts the full record with the configured dob key", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/Employee/12", r.URL.Path)

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(12), body["id"])
			assert.Equal(t, "1990-01-01", body["doB"])
			assert.NotContains(t, body, "dob")
			w.WriteHeader(http.StatusNoContent)
		}, employeeclient.DOBFieldCamel)

		rec := sampleRecord()
		rec.ID = "12"
		got, err := c.Update(ctx, rec)

		assert.NoError(t, err)
		assert.Equal(t, rec, got)
	})

	t.Run("record without id is rejected locally", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}, "")

		_, err := c.Update(ctx, sampleRecord())

		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})

	t.Run("message key is normalised", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"message":"Employee code already exists"}`)
		}, "")

		rec := sampleRecord()
		rec.ID = "abc"
		_, err := c.Update(ctx, rec)

		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, "Employee code already exists", appErr.Message)
	})
}

func TestClient_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/api/Employee/7", r.URL.Path)
			_, _ = io.WriteString(w, `{"id":7,"firstName":"Al","lastName":"Lee","employeeCode":"1234","contact":"5551234567","dob":"1990-01-01","address":"Main St"}`)
		case http.MethodDelete:
			assert.Equal(t, "/api/Employee/7", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	}, "")

	got, err := c.Get(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "7", got.ID)

	assert.NoError(t, c.Delete(ctx, "7"))
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := employeeclient.NewClient(employeeclient.Config{BaseURL: "localhost"}, nil)
	assert.Error(t, err)

	_, err = employeeclient.NewClient(employeeclient.Config{BaseURL: "http://x", DOBField: "d o b"}, nil)
	assert.Error(t, err)
}
