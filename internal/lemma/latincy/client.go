// Package latincy wraps a LatinCy annotation service over HTTP. The
// pretrained spaCy pipeline runs behind a small HTTP front end; this client
// is the only part of the process that talks to it.
package latincy

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/lexicon-tools/logeion/internal/lemma"
)

type Client struct {
	httpClient    *resty.Client
	model         string
	readyAttempts uint
}

var _ lemma.Lemmatizer = (*Client)(nil)

func NewClient(baseURL, model string, timeout time.Duration, readyAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		httpClient:    client,
		model:         model,
		readyAttempts: readyAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Model returns the model package identifier configured for this client
func (client *Client) Model() string {
	return client.model
}

type annotateRequest struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

type annotateResponse struct {
	Tokens []lemma.Token `json:"tokens"`
}

type healthResponse struct {
	Status string   `json:"status"`
	Models []string `json:"models"`
}

// Lemmatize implements the lemma.Lemmatizer interface. It runs the word
// through the annotation pipeline and returns the lemma of the first
// token. When the pipeline yields no tokens or no lemma, the word itself
// comes back unchanged.
func (client *Client) Lemmatize(ctx context.Context, word string) (string, error) {
	var result annotateResponse
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(annotateRequest{Text: word, Model: client.model}).
		SetResult(&result).
		Post("/annotate")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post(/annotate) > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("annotation service response error %d: %s", response.StatusCode(), response.String())
	}

	if len(result.Tokens) == 0 || result.Tokens[0].Lemma == "" {
		return word, nil
	}
	return result.Tokens[0].Lemma, nil
}

// Ready implements the lemma.Lemmatizer interface with a single probe of
// the annotation service's health endpoint.
func (client *Client) Ready(ctx context.Context) error {
	return client.checkHealth(ctx)
}

// WaitReady probes the annotation service until it reports the configured
// model as loaded, backing off between attempts. Meant for process
// startup: a service that never becomes ready is fatal to the caller.
func (client *Client) WaitReady(ctx context.Context) error {
	return retry.Do(
		func() error {
			return client.checkHealth(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(client.readyAttempts),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

func (client *Client) checkHealth(ctx context.Context) error {
	var health healthResponse
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return fmt.Errorf("httpClient.Get(/health) > %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("annotation service response error %d: %s", response.StatusCode(), response.String())
	}

	// The service may answer /health while still loading models, so a
	// missing model is retryable like any other probe failure.
	for _, model := range health.Models {
		if model == client.model {
			return nil
		}
	}
	return fmt.Errorf("model %q is not loaded on the annotation service (loaded: %v)", client.model, health.Models)
}
