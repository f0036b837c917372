// Package classifier talks to the external app-productivity classifier.
// The service answers POST /classify/app with a verdict and confidence;
// a null verdict means it has no opinion, which is not an error.
package classifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/being-saiful/productivity-tracker1/internal/error_values"
)

type Request struct {
	AppName  string  `json:"app_name"`
	Category *string `json:"category"`
	Career   string  `json:"career"`
}

type Verdict struct {
	IsProductive *bool   `json:"is_productive"`
	Confidence   float64 `json:"confidence"`
}

type ClientI interface {
	// Classify asks the remote service for a verdict. It returns
	// ErrClassifierUnavailable on transport or status failures and
	// ErrNoOpinion when the service explicitly declines to decide.
	Classify(ctx context.Context, req *Request) (*Verdict, error)
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpc: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Classify(ctx context.Context, req *Request) (*Verdict, error) {
	body, err := sonic.ConfigDefault.Marshal(req)
	if err != nil {
		return nil, errors.New("encoding classify request error: " + err.Error())
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify/app", bytes.NewReader(body))
	if err != nil {
		return nil, errors.New("building classify request error: " + err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrClassifierUnavailable, err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", errorvalues.ErrClassifierUnavailable, resp.StatusCode)
	}

	var verdict Verdict
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %s", errorvalues.ErrClassifierUnavailable, err.Error())
	}
	if verdict.IsProductive == nil {
		return nil, errorvalues.ErrNoOpinion
	}
	return &verdict, nil
}
