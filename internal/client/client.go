// Package client consumes the incident API the way the map and table
// views do: paginated bulk aggregation, memoized detail lookups and
// persisted view preferences.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/firewatch/incident-map/internal/httperr"
	"github.com/firewatch/incident-map/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentListResponse mirrors the list endpoint envelope.
type IncidentListResponse struct {
	Data       []models.IncidentListItem `json:"data"`
	Pagination models.PaginationMeta     `json:"pagination"`
}

// StationListResponse mirrors the stations endpoint envelope.
type StationListResponse struct {
	Data []models.StationSummary `json:"data"`
}

// Client is a thin HTTP client for the incident API. Timeouts are the
// transport's concern; callers cancel through the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// decodeError surfaces the structured error body when present, falling
// back to a status-based message.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var envelope httperr.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Errorf("%s", envelope.Error.Message)
	}

	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}

// FetchIncidents requests one page of the incident list.
func (c *Client) FetchIncidents(ctx context.Context, page, pageSize int) (*IncidentListResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var response IncidentListResponse
	if err := c.get(ctx, "/incidents", query, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// FetchIncidentDetail requests the full detail record for an incident.
func (c *Client) FetchIncidentDetail(ctx context.Context, incidentNumber string) (*models.IncidentDetail, error) {
	trimmed := strings.TrimSpace(incidentNumber)
	if trimmed == "" {
		return nil, fmt.Errorf("incident number is required")
	}

	var detail models.IncidentDetail
	if err := c.get(ctx, "/incidents/"+url.PathEscape(trimmed), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// FetchStations requests the station list, optionally filtered on the
// active flag.
func (c *Client) FetchStations(ctx context.Context, isActive *bool) ([]models.StationSummary, error) {
	query := url.Values{}
	if isActive != nil {
		query.Set("isActive", strconv.FormatBool(*isActive))
	}

	var response StationListResponse
	if err := c.get(ctx, "/stations", query, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}
