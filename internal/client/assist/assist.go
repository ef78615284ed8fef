// Package assist calls the myGaadi assistant backend. The client ships the
// user's question together with a snapshot of their garage data so the
// backend can answer questions like "when is my insurance due".
package assist

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mygaadi/mygaadi/internal/client/models"
)

// Request is the payload sent to the assistant endpoint.
type Request struct {
	Query             string                   `json:"query"`
	Vehicles          []models.Vehicle         `json:"vehicles"`
	ServiceRecords    []models.ServiceRecord   `json:"serviceRecords"`
	Expenses          []models.Expense         `json:"expenses"`
	InsurancePolicies []models.InsurancePolicy `json:"insurancePolicies"`
}

// Response is the non-streaming answer.
type Response struct {
	Answer string `json:"answer"`
}

type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Ask sends the request and waits for the complete answer.
func (c *Client) Ask(ctx context.Context, req Request) (string, error) {
	resp, err := c.post(ctx, req, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("error decoding assistant response: %w", err)
	}
	return out.Answer, nil
}

// AskStream sends the request in streaming mode and invokes fn for every
// answer fragment as it arrives. Fragments are newline-delimited.
func (c *Client) AskStream(ctx context.Context, req Request, fn func(fragment string)) error {
	resp, err := c.post(ctx, req, "text/plain")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(scanner.Text())
	}
	return scanner.Err()
}

func (c *Client) post(ctx context.Context, req Request, accept string) (*http.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if accept != "" {
		httpReq.Header.Set("Accept", accept)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("assistant returned %d: %s", resp.StatusCode, msg)
	}
	return resp, nil
}
