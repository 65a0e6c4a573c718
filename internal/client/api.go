// Package client talks to the projects API and keeps the client-side
// session state used by the command line.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

const sessionCookie = "jwt"

// APIError is a non-2xx answer of the API.
type APIError struct {
	StatusCode int
	Code       string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

type APIClient struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func NewAPIClient(baseURL string) (*APIClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("server url must be absolute: %q", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &APIClient{
		baseURL: u,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}, nil
}

// SetToken places a session token into the cookie jar, as if the
// server had set it.
func (c *APIClient) SetToken(token string) {
	c.httpClient.Jar.SetCookies(c.baseURL, []*http.Cookie{{
		Name:  sessionCookie,
		Value: token,
		Path:  "/",
	}})
}

// Token returns the current session token or an empty string.
func (c *APIClient) Token() string {
	for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
		if cookie.Name == sessionCookie {
			return cookie.Value
		}
	}
	return ""
}

func (c *APIClient) Login(ctx context.Context, identifier, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{
		"identifier": identifier,
		"password":   password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	var resp SignupResponse
	err := c.do(ctx, http.MethodPost, "/api/signup", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) GetProfile(ctx context.Context) (*Profile, error) {
	var profile Profile
	err := c.do(ctx, http.MethodGet, "/api/getProfile", nil, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *APIClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
}

func (c *APIClient) ListProjects(ctx context.Context, userID string) ([]ProjectSummary, error) {
	var summaries []ProjectSummary
	err := c.do(ctx, http.MethodGet, "/api/users/projects/"+url.PathEscape(userID), nil, &summaries)
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (c *APIClient) GetProject(ctx context.Context, projectID string) (*Project, error) {
	var project Project
	err := c.do(ctx, http.MethodGet, "/api/users/project/"+url.PathEscape(projectID), nil, &project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *APIClient) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	var project Project
	err := c.do(ctx, http.MethodPost, "/api/users/createProject", req, &project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *APIClient) DeleteProject(ctx context.Context, projectID string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/deleteProject/"+url.PathEscape(projectID), nil, nil)
}

func (c *APIClient) AddTask(ctx context.Context, projectID, title, description string) (*Task, error) {
	var resp taskMessage
	err := c.do(ctx, http.MethodPost, taskPath(projectID, ""), map[string]string{
		"title":       title,
		"description": description,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Task, nil
}

func (c *APIClient) UpdateTaskStatus(ctx context.Context, projectID, taskID, status string) (*Task, error) {
	var resp taskMessage
	err := c.do(ctx, http.MethodPut, taskPath(projectID, taskID), map[string]string{
		"status": status,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Task, nil
}

func (c *APIClient) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return c.do(ctx, http.MethodDelete, taskPath(projectID, taskID), nil, nil)
}

func taskPath(projectID, taskID string) string {
	p := "/api/users/project/" + url.PathEscape(projectID) + "/task"
	if taskID != "" {
		p += "/" + url.PathEscape(taskID)
	}
	return p
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
