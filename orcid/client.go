// Package orcid proxies a researcher's publication list from the ORCID
// public registry and normalizes its nested, inconsistently-present
// fields into a flat stable schema. The registry is an untrusted third
// party: a non-2xx response is reshaped into data, never an error, so
// callers branch on Success instead of catching.
package orcid

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const (
	worksFailedMessage = "Failed to fetch researches"
	workFailedMessage  = "Failed to fetch work"
)

type Client struct {
	http       *resty.Client
	researcher string
}

// NewClient builds a registry client for one researcher identifier.
// The public registry needs no authentication.
func NewClient(baseURL, researcherID string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json"),
		researcher: researcherID,
	}
}

// FetchWorks issues one read against the registry's works endpoint.
// The returned error covers transport and decode failures only; an
// upstream rejection comes back as data.
func (c *Client) FetchWorks(ctx context.Context) (WorksResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/%s/works", c.researcher))
	if err != nil {
		return WorksResult{}, fmt.Errorf("orcid: works request: %w", err)
	}

	if resp.IsError() {
		return WorksResult{
			Success: false,
			Error:   worksFailedMessage,
			Status:  resp.StatusCode(),
		}, nil
	}

	var payload worksPayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return WorksResult{}, fmt.Errorf("orcid: decode works payload: %w", err)
	}

	return WorksResult{
		Success:    true,
		Researches: normalizeGroups(payload.Group),
	}, nil
}

// FetchWork retrieves one full record by its external id and passes the
// upstream JSON through unshaped.
func (c *Client) FetchWork(ctx context.Context, putCode string) (WorkResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/%s/work/%s", c.researcher, putCode))
	if err != nil {
		return WorkResult{}, fmt.Errorf("orcid: work request: %w", err)
	}

	if resp.IsError() {
		return WorkResult{
			Success: false,
			Error:   workFailedMessage,
			Status:  resp.StatusCode(),
		}, nil
	}

	return WorkResult{
		Success: true,
		Record:  json.RawMessage(resp.Body()),
	}, nil
}
