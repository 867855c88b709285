// Package fetch 从游戏的外部 API 或本地文件获取原始地图快照。
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"KingdomsMap/internal/shared/config"
	"KingdomsMap/modules/kit/errx"
	"KingdomsMap/modules/kit/logx"
)

const CodeFetchFailed errx.Code = "SNAPSHOT_FETCH_FAILED"

var ErrFetchFailed = errx.NewSys(CodeFetchFailed, "拉取地图数据失败")

// maxBodyBytes 限制单次响应体大小，地图数据通常在几 MB 以内。
const maxBodyBytes = 64 << 20

// Client 请求 <url>?action=getMapData&privateApiKey=<key>。
// 两次请求之间至少间隔 MinInterval，等待期间可被 ctx 取消。
type Client struct {
	endpoint string
	key      string
	http     *http.Client
	limiter  *rate.Limiter
	log      logx.Logger
}

func NewClient(cfg config.APIConfig, l logx.Logger) *Client {
	if l == nil {
		l = logx.Nop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}
	return &Client{
		endpoint: cfg.URL,
		key:      cfg.Key,
		http:     &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(limit, 1),
		log:      l,
	}
}

func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("action", "getMapData")
	q.Set("privateApiKey", c.key)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, ErrFetchFailed.WithMsg("fetch throttled").WithCause(err)
	}

	target, err := c.requestURL()
	if err != nil {
		return nil, ErrFetchFailed.WithMsgf("invalid api url %q", c.endpoint).WithCause(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, ErrFetchFailed.WithCause(err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrFetchFailed.WithData("url", c.endpoint).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 读一小段响应体方便排查
		head, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, ErrFetchFailed.WithMsgf("unexpected status %d", resp.StatusCode).
			WithData("status", resp.StatusCode).
			WithData("body", string(head))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, ErrFetchFailed.WithMsg("read body failed").WithCause(err)
	}
	if len(body) > maxBodyBytes {
		return nil, ErrFetchFailed.WithMsgf("body exceeds %d bytes", maxBodyBytes)
	}

	c.log.WithContext(ctx).Info("map data fetched",
		zap.Int("bytes", len(body)),
		zap.Duration("cost", time.Since(start)),
	)
	return body, nil
}

// FileSource 从本地文件读取快照，用于离线渲染和测试。
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, ErrFetchFailed.WithMsg(fmt.Sprintf("read %s failed", s.Path)).WithCause(err)
	}
	return raw, nil
}
