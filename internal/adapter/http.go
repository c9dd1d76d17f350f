package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/utils"
	"github.com/MKhiriev/go-case-tracker/models"
)

// envelope is the JSON body every endpoint answers with.
type envelope[T any] struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
	TotalCount int64  `json:"totalCount"`
}

type httpCaseTrackerClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCaseTrackerClient builds a client for the server at baseURL. A
// missing scheme defaults to http. timeout bounds each request; zero
// disables the limit.
//
// Returns an error if baseURL is empty or cannot be parsed as a URL.
func NewHTTPCaseTrackerClient(baseURL string, timeout time.Duration, logger *logger.Logger) (CaseTrackerClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpCaseTrackerClient{
		client: utils.NewAPIClient(normalized, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpCaseTrackerClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (c *httpCaseTrackerClient) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	var result envelope[models.User]

	resp, err := c.jsonRequest(ctx, creds, &result).Post("/api/cases/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.Data, nil
}

func (c *httpCaseTrackerClient) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := c.jsonRequest(ctx, creds, nil).Post("/api/cases/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpCaseTrackerClient) Me(ctx context.Context) (bool, error) {
	var result envelope[any]

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/cases/me")
	if err != nil {
		return false, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Success, nil
}

func (c *httpCaseTrackerClient) Logout(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Post("/api/cases/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpCaseTrackerClient) ListCases(ctx context.Context, page, limit int) (models.CasePage, error) {
	var result envelope[[]models.Case]

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get("/api/cases/")
	if err != nil {
		return models.CasePage{}, fmt.Errorf("list cases request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CasePage{}, err
	}

	return models.CasePage{Cases: result.Data, TotalCount: result.TotalCount}, nil
}

func (c *httpCaseTrackerClient) GetCase(ctx context.Context, id string) (models.Case, error) {
	var result envelope[models.Case]

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Get("/api/cases/{id}")
	if err != nil {
		return models.Case{}, fmt.Errorf("get case request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Case{}, err
	}

	return result.Data, nil
}

func (c *httpCaseTrackerClient) CreateCase(ctx context.Context, input models.CaseInput) (models.Case, error) {
	var result envelope[models.Case]

	resp, err := c.jsonRequest(ctx, input, &result).Post("/api/cases/")
	if err != nil {
		return models.Case{}, fmt.Errorf("create case request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Case{}, err
	}

	return result.Data, nil
}

func (c *httpCaseTrackerClient) UpdateCase(ctx context.Context, id string, update models.CaseUpdate) (models.Case, error) {
	var result envelope[models.Case]

	resp, err := c.jsonRequest(ctx, update, &result).
		SetPathParam("id", id).
		Put("/api/cases/{id}")
	if err != nil {
		return models.Case{}, fmt.Errorf("update case request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Case{}, err
	}

	return result.Data, nil
}

func (c *httpCaseTrackerClient) DeleteCase(ctx context.Context, id string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/api/cases/{id}")
	if err != nil {
		return fmt.Errorf("delete case request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpCaseTrackerClient) ListFiles(ctx context.Context) ([]models.StoredFile, error) {
	var result envelope[[]models.StoredFile]

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/cases/files")
	if err != nil {
		return nil, fmt.Errorf("list files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Data, nil
}

func (c *httpCaseTrackerClient) UploadFile(ctx context.Context, fileName, contentType string, content io.Reader) (models.StoredFile, error) {
	var result envelope[models.StoredFile]

	resp, err := c.client.R().
		SetContext(ctx).
		SetMultipartField("file", fileName, contentType, content).
		SetResult(&result).
		Post("/api/cases/upload")
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoredFile{}, err
	}

	return result.Data, nil
}

func (c *httpCaseTrackerClient) DownloadFile(ctx context.Context, id string, dst io.Writer) (models.StoredFile, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetDoNotParseResponse(true).
		Get("/api/cases/files/{id}")
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("download request: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		raw, _ := io.ReadAll(body)
		return models.StoredFile{}, mapStatus(resp.StatusCode(), raw)
	}

	file := models.StoredFile{
		ID:       id,
		FileType: resp.Header().Get("Content-Type"),
		FileSize: -1,
	}
	if _, params, perr := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); perr == nil {
		file.FileName = params["filename"]
	}

	n, err := io.Copy(dst, body)
	if err != nil {
		return file, fmt.Errorf("download body: %w", err)
	}
	file.FileSize = n

	return file, nil
}

// jsonRequest prepares a request with a JSON body. result may be nil.
func (c *httpCaseTrackerClient) jsonRequest(ctx context.Context, body, result any) *resty.Request {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if result != nil {
		req.SetResult(result)
	}
	return req
}
