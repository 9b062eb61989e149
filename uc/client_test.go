package uc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFunctionsPagination(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.EqualValues(t, apiPath+"/functions", r.URL.Path)
		assert.EqualValues(t, "main", r.URL.Query().Get("catalog_name"))
		assert.EqualValues(t, "demo", r.URL.Query().Get("schema_name"))

		page := FunctionInfoList{
			Functions: []FunctionInfo{{Name: "add", CatalogName: "main", SchemaName: "demo"}},
		}
		if r.URL.Query().Get("page_token") == "" {
			page.NextPageToken = "p2"
		} else {
			assert.EqualValues(t, "p2", r.URL.Query().Get("page_token"))
			page.Functions[0].Name = "sub"
		}
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer srv.Close()

	cli := NewClient(srv.URL, WithToken("secret"))

	first, err := cli.ListFunctions(context.Background(), ListFunctionsRequest{Catalog: "main", Schema: "demo"})
	assert.NoError(t, err)
	assert.EqualValues(t, "p2", first.NextPageToken)
	assert.EqualValues(t, "add", first.Functions[0].Name)
	assert.EqualValues(t, "Bearer secret", gotAuth)

	second, err := cli.ListFunctions(context.Background(), ListFunctionsRequest{Catalog: "main", Schema: "demo", PageToken: first.NextPageToken})
	assert.NoError(t, err)
	assert.EqualValues(t, "", second.NextPageToken)
	assert.EqualValues(t, "sub", second.Functions[0].Name)
}

func TestGetFunctionNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error_code": "NOT_FOUND", "message": "no such function"})
	}))
	defer srv.Close()

	cli := NewClient(srv.URL)
	_, err := cli.GetFunction(context.Background(), "main.demo.missing")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.EqualValues(t, "main.demo.missing", notFound.Name)
}

func TestCreateFunctionPostsDefinition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.EqualValues(t, http.MethodPost, r.Method)
		assert.EqualValues(t, apiPath+"/functions", r.URL.Path)

		var req CreateFunctionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, "greet", req.FunctionInfo.Name)
		assert.EqualValues(t, "return 'hi'", req.FunctionInfo.RoutineDefinition)

		created := req.FunctionInfo
		created.FullName = "main.demo.greet"
		_ = json.NewEncoder(w).Encode(created)
	}))
	defer srv.Close()

	cli := NewClient(srv.URL)
	info, err := cli.CreateFunction(context.Background(), CreateFunctionRequest{FunctionInfo: FunctionInfo{
		Name:              "greet",
		CatalogName:       "main",
		SchemaName:        "demo",
		RoutineDefinition: "return 'hi'",
	}})
	assert.NoError(t, err)
	assert.EqualValues(t, "main.demo.greet", info.FullName)
}

func TestExecuteFunction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.EqualValues(t, http.MethodPost, r.Method)
		assert.EqualValues(t, apiPath+"/functions/main.demo.add/execute", r.URL.Path)

		var body map[string]map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, float64(2), body["parameters"]["x"])

		_ = json.NewEncoder(w).Encode(ExecutionResult{Format: "JSON", Value: "5"})
	}))
	defer srv.Close()

	cli := NewClient(srv.URL)
	result, err := cli.ExecuteFunction(context.Background(), "main.demo.add", map[string]interface{}{"x": 2, "y": 3})
	assert.NoError(t, err)
	assert.EqualValues(t, "5", result.Value)
}

func TestAPIErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error_code": "ALREADY_EXISTS", "message": "function exists"})
	}))
	defer srv.Close()

	cli := NewClient(srv.URL)
	_, err := cli.CreateFunction(context.Background(), CreateFunctionRequest{FunctionInfo: FunctionInfo{Name: "dup"}})
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.EqualValues(t, http.StatusConflict, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "function exists")
}
