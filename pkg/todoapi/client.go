package todoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"todo-web/pkg/metrics"
)

// TokenSource yields the bearer token for the caller identified by ctx.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, bool)
}

// Client is the HTTP wrapper for the to-do REST backend. Every call is a
// single attempt; retries are left to the user.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// NewClient creates a backend client. A zero timeout keeps the transport default.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Login exchanges credentials for a bearer token via POST /auth/login.
func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	return c.authenticate(ctx, "login", "/auth/login", req)
}

// Signup creates an account via POST /auth/signup.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (AuthResult, error) {
	return c.authenticate(ctx, "signup", "/auth/signup", req)
}

// ListTasks fetches the caller's tasks via GET /todos.
func (c *Client) ListTasks(ctx context.Context) ([]Todo, error) {
	var todos []Todo
	if err := c.do(ctx, "list_tasks", http.MethodGet, "/todos", nil, true, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// GetTask fetches one task via GET /todos/{id}.
func (c *Client) GetTask(ctx context.Context, id int64) (Todo, error) {
	var todo Todo
	err := c.do(ctx, "get_task", http.MethodGet, todoPath(id), nil, true, &todo)
	return todo, err
}

// CreateTask creates a task via POST /todos.
func (c *Client) CreateTask(ctx context.Context, req TaskRequest) (Todo, error) {
	var todo Todo
	err := c.do(ctx, "create_task", http.MethodPost, "/todos", req, true, &todo)
	return todo, err
}

// UpdateTask replaces title and description via PUT /todos/{id}.
func (c *Client) UpdateTask(ctx context.Context, id int64, req TaskRequest) (Todo, error) {
	var todo Todo
	err := c.do(ctx, "update_task", http.MethodPut, todoPath(id), req, true, &todo)
	return todo, err
}

// DeleteTask removes a task via DELETE /todos/{id}. Any 2xx is success.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, "delete_task", http.MethodDelete, todoPath(id), nil, true, nil)
}

// SetTaskCompletion sends the full task with its new flag via PUT /todos/{id}/completion.
func (c *Client) SetTaskCompletion(ctx context.Context, id int64, todo Todo) (Todo, error) {
	var res Todo
	err := c.do(ctx, "set_task_completion", http.MethodPut, todoPath(id)+"/completion", todo, true, &res)
	return res, err
}

func todoPath(id int64) string {
	return "/todos/" + strconv.FormatInt(id, 10)
}

// authenticate posts credentials. The token may come wrapped in "data" or at
// the top level of the body; "data" wins when both are set.
func (c *Client) authenticate(ctx context.Context, op, path string, body any) (AuthResult, error) {
	raw, err := c.send(ctx, op, http.MethodPost, path, body, false)
	if err != nil {
		return AuthResult{}, err
	}

	var res authBody
	if err := json.Unmarshal(raw, &res); err != nil {
		return AuthResult{}, fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	if res.Data != nil && res.Data.Token != "" {
		return *res.Data, nil
	}
	if res.Token != "" {
		return AuthResult{Token: res.Token}, nil
	}
	return AuthResult{}, fmt.Errorf("%s: %w", op, ErrMissingData)
}

// do performs one round trip. When out is non-nil the response must carry a
// non-null "data" payload, which is decoded into out.
func (c *Client) do(ctx context.Context, op, method, path string, body any, auth bool, out any) error {
	raw, err := c.send(ctx, op, method, path, body, auth)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%s: %w", op, ErrMissingData)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", op, err)
	}
	return nil
}

// send performs the request and returns the body of a 2xx response.
func (c *Client) send(ctx context.Context, op, method, path string, body any, auth bool) ([]byte, error) {
	start := time.Now()
	status := "error"
	defer func() {
		metrics.RecordBackendRequest(op, status, time.Since(start))
	}()

	var reader io.Reader
	if body != nil {
		raw, mErr := json.Marshal(body)
		if mErr != nil {
			return nil, fmt.Errorf("failed to marshal %s request: %w", op, mErr)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if auth && c.tokens != nil {
		if token, ok := c.tokens.AccessToken(ctx); ok {
			(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(httpReq)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", op, err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{Operation: op, StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", op, err)
	}
	return raw, nil
}

func errorMessage(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
