// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/utils"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/sashabaranov/go-openai"
)

type httpCompletionClient struct {
	client *utils.HTTPClient

	defaults models.LLMConfig
	timeout  time.Duration

	logger *logger.Logger
}

// NewCompletionClient constructs the HTTP implementation of
// [CompletionClient]. adapterCfg supplies the default endpoint and the
// per-call timeout.
func NewCompletionClient(adapterCfg config.Adapter, log *logger.Logger) CompletionClient {
	return &httpCompletionClient{
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout),
		defaults: models.LLMConfig{
			APIURL: adapterCfg.APIURL,
			APIKey: adapterCfg.APIKey,
			Model:  adapterCfg.Model,
		},
		timeout: adapterCfg.RequestTimeout,
		logger:  log.Component("completion_client"),
	}
}

// Complete implements [CompletionClient].
func (c *httpCompletionClient) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	endpoint := req.Endpoint.WithFallback(c.defaults)
	if strings.TrimSpace(endpoint.APIURL) == "" {
		return "", ErrNoEndpoint
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	payload := openai.ChatCompletionRequest{
		Model:       endpoint.Model,
		Temperature: req.Temperature,
		Messages:    toWireMessages(req.Messages),
	}

	r := c.client.R().
		SetContext(ctx).
		SetBody(payload)
	if endpoint.APIKey != "" {
		r.SetAuthToken(endpoint.APIKey)
	}

	started := time.Now()
	resp, err := r.Post(endpoint.APIURL)
	if err != nil {
		if isTimeout(ctx, err) {
			return "", fmt.Errorf("%w after %s", ErrTimeout, timeout)
		}
		return "", fmt.Errorf("completion request: %w", err)
	}

	c.logger.Debug().
		Str("func", "*httpCompletionClient.Complete").
		Str("model", endpoint.Model).
		Int("status", resp.StatusCode()).
		Dur("took", time.Since(started)).
		Msg("completion call finished")

	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return decodeCompletion(resp.Body())
}

// decodeCompletion returns choices[0].message.content, or the provider
// error some gateways send with a 200 status.
func decodeCompletion(raw []byte) (string, error) {
	var out openai.ChatCompletionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	if len(out.Choices) == 0 {
		var errResp openai.ErrorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != nil {
			return "", fmt.Errorf("%w: %s", ErrProviderError, errResp.Error.Message)
		}
		return "", ErrEmptyCompletion
	}

	return out.Choices[0].Message.Content, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func toWireMessages(messages []models.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
