package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskdeck/taskdeck/pkg/domain"
)

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body returned on a successful login.
type LoginResponse struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// Client is the taskdeck API client. All calls pass through the
// interceptor installed on the underlying transport.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	interceptor *Interceptor
}

// New creates a new API client with interceptor middleware on its transport.
func New(baseURL string, log zerolog.Logger) *Client {
	ic := NewInterceptor(nil, log)
	return &Client{
		baseURL:     baseURL,
		interceptor: ic,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: ic,
		},
	}
}

// Interceptor exposes the middleware so side-effect hooks can be bound
// once the UI exists.
func (c *Client) Interceptor() *Interceptor {
	return c.interceptor
}

// Login exchanges credentials for the account identity.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var res LoginResponse
	if err := c.post(ctx, "/auth/login", LoginRequest{Username: username, Password: password}, &res); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return &res, nil
}

// --- Todo item methods ---

// ListTodos fetches all to-do items owned by a user.
func (c *Client) ListTodos(ctx context.Context, userID int) ([]domain.TodoItem, error) {
	var todos []domain.TodoItem
	if err := c.get(ctx, "/todoitems/user/"+strconv.Itoa(userID), &todos); err != nil {
		return nil, fmt.Errorf("client.ListTodos: %w", err)
	}
	return todos, nil
}

// GetTodo fetches a single to-do item by ID.
func (c *Client) GetTodo(ctx context.Context, todoID int) (*domain.TodoItem, error) {
	var todo domain.TodoItem
	if err := c.get(ctx, "/todoitems/"+strconv.Itoa(todoID), &todo); err != nil {
		return nil, fmt.Errorf("client.GetTodo: %w", err)
	}
	return &todo, nil
}

// CreateTodo creates a to-do item for the given user.
func (c *Client) CreateTodo(ctx context.Context, userID int, dto domain.CreateTodoItem) (*domain.TodoItem, error) {
	var created domain.TodoItem
	if err := c.post(ctx, "/todoitems/user/"+strconv.Itoa(userID), dto, &created); err != nil {
		return nil, fmt.Errorf("client.CreateTodo: %w", err)
	}
	return &created, nil
}

// UpdateTodo updates a to-do item.
func (c *Client) UpdateTodo(ctx context.Context, todoID int, dto domain.UpdateTodoItem) error {
	if err := c.doRequest(ctx, http.MethodPut, "/todoitems/"+strconv.Itoa(todoID), dto, nil); err != nil {
		return fmt.Errorf("client.UpdateTodo: %w", err)
	}
	return nil
}

// ToggleTodo flips the completion state of a to-do item.
func (c *Client) ToggleTodo(ctx context.Context, todoID int) error {
	if err := c.doRequest(ctx, http.MethodPatch, "/todoitems/"+strconv.Itoa(todoID)+"/toggle", nil, nil); err != nil {
		return fmt.Errorf("client.ToggleTodo: %w", err)
	}
	return nil
}

// DeleteTodo deletes a to-do item and its activities.
func (c *Client) DeleteTodo(ctx context.Context, todoID int) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/todoitems/"+strconv.Itoa(todoID), nil, nil); err != nil {
		return fmt.Errorf("client.DeleteTodo: %w", err)
	}
	return nil
}

// --- Activity methods ---

// ListActivities fetches the activities under a to-do item.
func (c *Client) ListActivities(ctx context.Context, todoID int) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := c.get(ctx, "/activities/todo/"+strconv.Itoa(todoID), &activities); err != nil {
		return nil, fmt.Errorf("client.ListActivities: %w", err)
	}
	return activities, nil
}

// GetActivity fetches a single activity by ID.
func (c *Client) GetActivity(ctx context.Context, activityID int) (*domain.Activity, error) {
	var activity domain.Activity
	if err := c.get(ctx, "/activities/"+strconv.Itoa(activityID), &activity); err != nil {
		return nil, fmt.Errorf("client.GetActivity: %w", err)
	}
	return &activity, nil
}

// CreateActivity creates an activity; the parent todo travels in the body.
func (c *Client) CreateActivity(ctx context.Context, dto domain.CreateActivity) (*domain.Activity, error) {
	var created domain.Activity
	if err := c.post(ctx, "/activities", dto, &created); err != nil {
		return nil, fmt.Errorf("client.CreateActivity: %w", err)
	}
	return &created, nil
}

// UpdateActivity updates an activity.
func (c *Client) UpdateActivity(ctx context.Context, activityID int, dto domain.UpdateActivity) error {
	if err := c.doRequest(ctx, http.MethodPut, "/activities/"+strconv.Itoa(activityID), dto, nil); err != nil {
		return fmt.Errorf("client.UpdateActivity: %w", err)
	}
	return nil
}

// ToggleActivity flips the completion state of an activity.
func (c *Client) ToggleActivity(ctx context.Context, activityID int) error {
	if err := c.doRequest(ctx, http.MethodPatch, "/activities/"+strconv.Itoa(activityID)+"/toggle", nil, nil); err != nil {
		return fmt.Errorf("client.ToggleActivity: %w", err)
	}
	return nil
}

// DeleteActivity deletes an activity.
func (c *Client) DeleteActivity(ctx context.Context, activityID int) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/activities/"+strconv.Itoa(activityID), nil, nil); err != nil {
		return fmt.Errorf("client.DeleteActivity: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil {
			if apiErr.Message != "" {
				return &APIError{Status: resp.StatusCode, Message: apiErr.Message}
			}
			if apiErr.Error != "" {
				return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
			}
		}
		return &APIError{Status: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
