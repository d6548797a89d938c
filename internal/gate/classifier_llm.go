// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/adapter"
	"github.com/MKhiriev/go-ledger-chat/models"
)

const classifierTemperature = 0.1

const securityPrompt = `你是一个 Web 安全代理，请根据以下请求信息判断该请求的安全策略。

返回值必须是以下 3 个之一（全小写）：
- log：记录但不警告；
- warn：打警告日志；
- block：拦截返回 403。

请求信息如下：
IP: %s
Method: %s
Path: %s
User-Agent: %s
Content-Length: %d`

type llmClassifier struct {
	client   adapter.CompletionClient
	endpoint models.LLMConfig
	timeout  time.Duration
}

// NewLLMClassifier returns a Classifier backed by a chat-completions
// endpoint. Empty endpoint fields fall back to the client defaults.
func NewLLMClassifier(client adapter.CompletionClient, endpoint models.LLMConfig, timeout time.Duration) Classifier {
	return &llmClassifier{client: client, endpoint: endpoint, timeout: timeout}
}

// Classify implements Classifier.
func (c *llmClassifier) Classify(ctx context.Context, info RequestInfo) (Decision, error) {
	reply, err := c.client.Complete(ctx, models.CompletionRequest{
		Endpoint: c.endpoint,
		Messages: []models.Message{{
			Role:    models.RoleUser,
			Content: securityRequestPrompt(info),
		}},
		Temperature: classifierTemperature,
		Timeout:     c.timeout,
	})
	if err != nil {
		return "", fmt.Errorf("error classifying request: %w", err)
	}

	decision, ok := ParseDecision(reply)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedDecision, reply)
	}

	return decision, nil
}

func securityRequestPrompt(info RequestInfo) string {
	return fmt.Sprintf(securityPrompt, info.IP, info.Method, info.Path, info.UserAgent, info.ContentLength)
}
