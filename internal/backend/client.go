// Package backend is the portal's client for the promotion REST backend.
// The portal stores nothing itself; every operation here is a pass-through
// carrying the session's bearer token.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"promoadmin/internal/structs"
	"promoadmin/pkg/config"
	"promoadmin/pkg/logger"
)

var (
	Module = fx.Provide(New)
)

type (
	Client interface {
		Login(ctx context.Context, req structs.LoginDraft) (structs.LoginResponse, error)

		CreateUser(ctx context.Context, token string, user structs.User) (structs.User, error)
		ListUsers(ctx context.Context, token string) ([]structs.User, error)
		GetUser(ctx context.Context, token string, id int64) (structs.User, error)
		UpdateUser(ctx context.Context, token string, id int64, user structs.User) (structs.User, error)
		DeleteUser(ctx context.Context, token string, id int64) error

		ListPromotions(ctx context.Context, token string) ([]structs.Promotion, error)
		GetPromotion(ctx context.Context, token string, id int64) (structs.Promotion, error)
		CreatePromotion(ctx context.Context, token string, up structs.PromotionUpload) (structs.Promotion, error)
		UpdatePromotion(ctx context.Context, token string, id int64, up structs.PromotionUpload) (structs.Promotion, error)
		DeletePromotion(ctx context.Context, token string, id int64) error

		BannerURL(rel string) string
	}

	Params struct {
		fx.In

		Logger logger.Logger
		Config config.IConfig
	}

	client struct {
		logger  logger.Logger
		base    string
		apiBase string
		http    *http.Client
	}
)

func New(p Params) Client {
	base := strings.TrimRight(p.Config.GetString("backend.base_url"), "/")

	return &client{
		logger:  p.Logger,
		base:    base,
		apiBase: base + p.Config.GetString("backend.api_prefix"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// BannerURL resolves a stored banner path against the backend host, where
// banner images are served statically.
func (c *client) BannerURL(rel string) string {
	if rel == "" {
		return ""
	}
	if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") {
		return rel
	}
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + rel
	}
	return c.base + rel
}

func (c *client) doJSON(ctx context.Context, method, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(ctx, req, token, out)
}

func (c *client) doMultipart(ctx context.Context, method, path, token string, up structs.PromotionUpload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	_ = w.WriteField("name", up.Name)
	_ = w.WriteField("startDate", up.StartDate)
	_ = w.WriteField("endDate", up.EndDate)

	if up.Banner != nil {
		part, err := w.CreateFormFile("banner", up.BannerName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, up.Banner); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(ctx, req, token, out)
}

func (c *client) send(ctx context.Context, req *http.Request, token string, out any) error {
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn(ctx, "backend returned non-2xx",
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode))
		return decodeAPIError(resp.StatusCode, body)
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode backend response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(status int, body []byte) *structs.APIError {
	var payload struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	_ = json.Unmarshal(body, &payload)

	return &structs.APIError{
		Status:  status,
		Message: payload.Message,
		Fields:  payload.Errors,
	}
}
