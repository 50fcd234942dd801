package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/arfidakai/Rapihin.ai/internal/client/models"
	"github.com/arfidakai/Rapihin.ai/internal/common"
	"github.com/arfidakai/Rapihin.ai/internal/logging"
)

const (
	defaultRequestTimeout = 15 * time.Second
	defaultFormatTimeout  = 2 * time.Minute

	// upper bound when reading an error body; real error payloads are tiny
	maxErrorBodyBytes = 64 << 10
)

// HTTPClient is the concrete Client over HTTP. A single instance is shared by
// all services; every request passes through newRequest, which attaches the
// bearer credential and a request id.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	sessions       SessionSource
	requestTimeout time.Duration
	formatTimeout  time.Duration
	log            logging.Logger
}

func NewHTTPClient(baseURL string, sessions SessionSource, requestTimeout, formatTimeout time.Duration, log logging.Logger) *HTTPClient {
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	if formatTimeout <= 0 {
		formatTimeout = defaultFormatTimeout
	}
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	}
	return &HTTPClient{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           &http.Client{Transport: transport},
		sessions:       sessions,
		requestTimeout: requestTimeout,
		formatTimeout:  formatTimeout,
		log:            log.With("component", "api"),
	}
}

// newRequest builds a request against the base endpoint. When the session
// store holds a credential it is attached as a bearer header; otherwise the
// request goes out unauthenticated.
func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	if session := c.sessions.Get(); session.Authenticated() {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+session.Credential)
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())

	return req, nil
}

func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Transport: true, cause: err}
	}
	return resp, nil
}

// errorFromResponse normalizes a non-2xx response. The body is parsed as the
// server's structured error shape ({"detail": ...}) when possible.
func (c *HTTPClient) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	var payload struct {
		Detail string `json:"detail"`
	}
	detail := ""
	if err := sonic.Unmarshal(body, &payload); err == nil {
		detail = payload.Detail
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case (resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusConflict) &&
		strings.Contains(strings.ToLower(detail), "already registered"):
		return common.ErrEmailTaken
	}

	return &Error{Status: resp.StatusCode, Detail: detail}
}

// doJSON sends payload (when non-nil) as a JSON body and decodes a 2xx
// response into out (when non-nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, payload, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := sonic.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Transport: true, cause: err}
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// tokenResponse is the server's shape for register/login.
type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password, fullName string) (*models.Session, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}{email, password, fullName}

	var tr tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", payload, &tr); err != nil {
		return nil, err
	}
	return &models.Session{Credential: tr.AccessToken, User: &tr.User}, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var tr tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", payload, &tr); err != nil {
		// a 401 here means the credentials were wrong, not that the
		// session expired
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	return &models.Session{Credential: tr.AccessToken, User: &tr.User}, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FormatDocument issues the multipart formatting request. The response body
// is returned raw: it is the binary document, never JSON or text.
func (c *HTTPClient) FormatDocument(ctx context.Context, fr models.FormatRequest, content io.Reader) ([]byte, error) {
	// the server-side formatting run takes longer than a JSON round trip
	ctx, cancel := context.WithTimeout(ctx, c.formatTimeout)
	defer cancel()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", fr.File.Name)
	if err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read staged file: %w", err)
	}
	if err := mw.WriteField("document_type", string(fr.DocumentType)); err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if err := mw.WriteField("university", string(fr.University)); err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/format-docx/", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.errorFromResponse(resp)
	}

	artifact, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Transport: true, cause: err}
	}

	c.log.Info(ctx, "document formatted", "name", fr.File.Name, "bytes", len(artifact))
	return artifact, nil
}

func (c *HTTPClient) History(ctx context.Context) ([]models.HistoryRecord, error) {
	var payload struct {
		History []models.HistoryRecord `json:"history"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/history", nil, &payload); err != nil {
		return nil, err
	}
	return payload.History, nil
}

func (c *HTTPClient) Templates(ctx context.Context) (*models.TemplateInfo, error) {
	var info models.TemplateInfo
	if err := c.doJSON(ctx, http.MethodGet, "/api/templates", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
