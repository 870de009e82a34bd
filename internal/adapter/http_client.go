package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/joms1025/company-management-app/models"
)

// HTTPClientConfig configures the REST backend client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpBackendClient struct {
	client *resty.Client
	broker *eventBroker

	mu      sync.RWMutex
	session *models.Session
}

// NewHTTPBackendClient builds a BackendClient speaking the comms REST API.
func NewHTTPBackendClient(cfg HTTPClientConfig) BackendClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpBackendClient{client: cli, broker: newEventBroker()}
}

func (h *httpBackendClient) Subscribe(handler func(AuthEvent)) func() {
	return h.broker.Subscribe(handler)
}

func (h *httpBackendClient) CurrentSession() *models.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

func (h *httpBackendClient) setSession(session *models.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = session
}

func (h *httpBackendClient) RestoreSession(session *models.Session) {
	if session != nil && session.Expired() {
		session = nil
	}
	h.setSession(session)
	h.broker.emit(AuthEvent{Kind: EventInitial, Session: session})
}

func (h *httpBackendClient) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/signup")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("sign up request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var out models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode sign up response: %w", err)
	}

	// Session stays nil while the account awaits email confirmation. No
	// lifecycle event fires until the user actually signs in.
	if out.Session != nil {
		h.setSession(out.Session)
		h.broker.emit(AuthEvent{Kind: EventSignedIn, Session: out.Session})
	}
	return out, nil
}

func (h *httpBackendClient) SignInWithPassword(ctx context.Context, email, password string) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SignInRequest{Email: email, Password: password}).
		Post("/api/auth/signin")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var out models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode sign in response: %w", err)
	}
	if out.Session == nil {
		return models.AuthResponse{}, fmt.Errorf("%w: sign in response carried no session", ErrInternalServerError)
	}

	h.setSession(out.Session)
	h.broker.emit(AuthEvent{Kind: EventSignedIn, Session: out.Session})
	return out, nil
}

func (h *httpBackendClient) SignOut(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/signout")

	// Local sign-out always takes effect, regardless of whether the
	// revocation round trip succeeded.
	h.setSession(nil)
	h.broker.emit(AuthEvent{Kind: EventSignedOut, Session: nil})

	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackendClient) RefreshSession(ctx context.Context) (models.AuthResponse, error) {
	current := h.CurrentSession()
	if current == nil {
		return models.AuthResponse{}, ErrUnauthorized
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: current.RefreshToken}).
		Post("/api/auth/refresh")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var out models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode refresh response: %w", err)
	}
	if out.Session == nil {
		return models.AuthResponse{}, fmt.Errorf("%w: refresh response carried no session", ErrInternalServerError)
	}

	h.setSession(out.Session)
	h.broker.emit(AuthEvent{Kind: EventTokenRefreshed, Session: out.Session})
	return out, nil
}

func (h *httpBackendClient) FindProfileByID(ctx context.Context, id string) (models.Profile, error) {
	resp, err := h.authedRequest(ctx).Get("/api/profiles/" + url.PathEscape(id))
	if err != nil {
		return models.Profile{}, fmt.Errorf("find profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile response: %w", err)
	}
	return profile, nil
}

func (h *httpBackendClient) UpdateProfileRole(ctx context.Context, id string, role models.Role) (models.Profile, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateRoleRequest{Role: role}).
		Patch("/api/profiles/" + url.PathEscape(id) + "/role")
	if err != nil {
		return models.Profile{}, fmt.Errorf("update role request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile response: %w", err)
	}

	h.broker.emit(AuthEvent{Kind: EventUserUpdated, Session: h.CurrentSession()})
	return profile, nil
}

func (h *httpBackendClient) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/tasks")
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var task models.Task
	if err = json.Unmarshal(resp.Body(), &task); err != nil {
		return models.Task{}, fmt.Errorf("decode task response: %w", err)
	}
	return task, nil
}

func (h *httpBackendClient) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	req := h.authedRequest(ctx)
	if filter.Department != "" {
		req.SetQueryParam("department", string(filter.Department))
	}
	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}
	if filter.CreatedBy != "" {
		req.SetQueryParam("created_by", filter.CreatedBy)
	}

	resp, err := req.Get("/api/tasks")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err = json.Unmarshal(resp.Body(), &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks response: %w", err)
	}
	return tasks, nil
}

func (h *httpBackendClient) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateTaskStatusRequest{Status: status}).
		Patch("/api/tasks/" + url.PathEscape(id) + "/status")
	if err != nil {
		return models.Task{}, fmt.Errorf("update task status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var task models.Task
	if err = json.Unmarshal(resp.Body(), &task); err != nil {
		return models.Task{}, fmt.Errorf("decode task response: %w", err)
	}
	return task, nil
}

func (h *httpBackendClient) DeleteTask(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/tasks/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackendClient) PostMessage(ctx context.Context, department models.Department, req models.PostMessageRequest) (models.ChatMessage, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/chat/" + url.PathEscape(string(department)) + "/messages")
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("post message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatMessage{}, err
	}

	var message models.ChatMessage
	if err = json.Unmarshal(resp.Body(), &message); err != nil {
		return models.ChatMessage{}, fmt.Errorf("decode message response: %w", err)
	}
	return message, nil
}

func (h *httpBackendClient) ListMessages(ctx context.Context, department models.Department, after string, limit int) ([]models.ChatMessage, error) {
	req := h.authedRequest(ctx)
	if after != "" {
		req.SetQueryParam("after", after)
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/chat/" + url.PathEscape(string(department)) + "/messages")
	if err != nil {
		return nil, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var messages []models.ChatMessage
	if err = json.Unmarshal(resp.Body(), &messages); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}
	return messages, nil
}

func (h *httpBackendClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if session := h.CurrentSession(); session != nil && session.AccessToken != "" {
		req.SetHeader("Authorization", "Bearer "+session.AccessToken)
	}
	return req
}
