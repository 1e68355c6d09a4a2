package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"routier/internal/model"
)

// Client 外部路线优化服务客户端
// 单次请求/响应，不重试；失败原样上抛给调用方展示
type Client struct {
	webhookURL string
	authToken  string
	httpClient *http.Client
}

// NewClient 创建客户端
func NewClient(webhookURL, authToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		webhookURL: webhookURL,
		authToken:  authToken,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Optimize 发送优化请求，返回服务原始响应体
// 响应内容不做校验和改写，由调用方透传给前端
func (c *Client) Optimize(ctx context.Context, req *model.OptimizeRequest) ([]byte, error) {
	if c.webhookURL == "" {
		return nil, fmt.Errorf("优化服务地址未配置")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("优化服务请求失败: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("优化服务返回错误 (%d): %s", resp.StatusCode, respBody)
	}

	return respBody, nil
}
