package uc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// apiPath is the Unity Catalog REST namespace all calls are rooted at.
const apiPath = "/api/2.1/unity-catalog"

// maxResponseSize caps catalog responses so a misbehaving endpoint cannot
// exhaust memory.
const maxResponseSize = 4 << 20

// Client is the boundary to the remote function catalog. The gateway core
// depends on this interface only; the REST implementation below is the
// production binding.
type Client interface {
	ListFunctions(ctx context.Context, request ListFunctionsRequest) (*FunctionInfoList, error)
	GetFunction(ctx context.Context, fullName string) (*FunctionInfo, error)
	CreateFunction(ctx context.Context, request CreateFunctionRequest) (*FunctionInfo, error)
	ExecuteFunction(ctx context.Context, fullName string, parameters map[string]interface{}) (*ExecutionResult, error)
}

// ClientOption customises the REST client.
type ClientOption func(*restClient)

// WithToken sets the bearer token attached to every catalog request.
func WithToken(token string) ClientOption {
	return func(c *restClient) { c.token = token }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *restClient) { c.httpClient = httpClient }
}

type restClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient returns a catalog client talking to the Unity Catalog REST API
// rooted at endpoint (e.g. "http://localhost:8080").
func NewClient(endpoint string, opts ...ClientOption) Client {
	c := &restClient{
		baseURL:    strings.TrimSuffix(endpoint, "/") + apiPath,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *restClient) ListFunctions(ctx context.Context, request ListFunctionsRequest) (*FunctionInfoList, error) {
	if request.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(request.Timeout*float64(time.Second)))
		defer cancel()
	}
	query := url.Values{}
	query.Set("catalog_name", request.Catalog)
	query.Set("schema_name", request.Schema)
	if request.MaxResults > 0 {
		query.Set("max_results", strconv.Itoa(request.MaxResults))
	}
	if request.PageToken != "" {
		query.Set("page_token", request.PageToken)
	}
	var result FunctionInfoList
	if err := c.do(ctx, http.MethodGet, "/functions?"+query.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *restClient) GetFunction(ctx context.Context, fullName string) (*FunctionInfo, error) {
	var result FunctionInfo
	err := c.do(ctx, http.MethodGet, "/functions/"+url.PathEscape(fullName), nil, &result)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, &NotFoundError{Name: fullName}
		}
		return nil, err
	}
	return &result, nil
}

func (c *restClient) CreateFunction(ctx context.Context, request CreateFunctionRequest) (*FunctionInfo, error) {
	var result FunctionInfo
	if err := c.do(ctx, http.MethodPost, "/functions", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *restClient) ExecuteFunction(ctx context.Context, fullName string, parameters map[string]interface{}) (*ExecutionResult, error) {
	body := map[string]interface{}{"parameters": parameters}
	var result ExecutionResult
	err := c.do(ctx, http.MethodPost, "/functions/"+url.PathEscape(fullName)+"/execute", body, &result)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, &NotFoundError{Name: fullName}
		}
		return nil, err
	}
	return &result, nil
}

func (c *restClient) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return err
	}
	if len(data) > maxResponseSize {
		return fmt.Errorf("catalog response too large: over %d bytes", maxResponseSize)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response %s %s: %w", method, path, err)
	}
	return nil
}
