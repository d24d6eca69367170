package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"flicks-backend/internal/config"

	"github.com/sirupsen/logrus"
)

// SMSSender delivers one-time codes.
type SMSSender interface {
	SendOTP(ctx context.Context, phone, code string) error
}

// kavenegarSender uses the verify/lookup endpoint, which fills a
// pre-registered template with the code.
type kavenegarSender struct {
	config     config.SMSConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewSMSSender(cfg config.SMSConfig, logger *logrus.Logger) SMSSender {
	return &kavenegarSender{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

type kavenegarResponse struct {
	Return struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"return"`
}

func (s *kavenegarSender) SendOTP(ctx context.Context, phone, code string) error {
	endpoint := fmt.Sprintf("%s/%s/verify/lookup.json", strings.TrimRight(s.config.BaseURL, "/"), s.config.APIKey)

	form := url.Values{}
	form.Set("receptor", phone)
	form.Set("template", s.config.Template)
	form.Set("token", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call sms provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sms provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var result kavenegarResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode sms provider response: %w", err)
	}
	if result.Return.Status != http.StatusOK {
		return fmt.Errorf("sms provider rejected message: %d %s", result.Return.Status, result.Return.Message)
	}

	s.logger.WithField("phone", phone).Debug("OTP sms sent")
	return nil
}
