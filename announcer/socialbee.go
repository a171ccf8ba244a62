// Package announcer shares a published post on SocialBee.
package announcer

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"affiliate_autopilot/config"
	"affiliate_autopilot/httpclient"
	"affiliate_autopilot/logger"
)

const serviceName = "socialbee"

type postPayload struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

// SocialBee posts announcements to the SocialBee API. Without an API key every
// call is a logged no-op.
type SocialBee struct {
	cfg    config.SocialBeeConfig
	client *resty.Client
	log    logger.Logger
}

func New(cfg config.SocialBeeConfig, client *resty.Client, log logger.Logger) *SocialBee {
	if cfg.URL == "" {
		cfg.URL = config.DefaultSocialBeeURL
	}
	if cfg.Category == "" {
		cfg.Category = config.DefaultSocialBeeCategory
	}
	if client == nil {
		client = httpclient.New(0)
	}
	return &SocialBee{cfg: cfg, client: client, log: logger.Ensure(log)}
}

// Enabled reports whether an API key is configured.
func (s *SocialBee) Enabled() bool {
	return s.cfg.APIKey != ""
}

// ComposeMessage is the announcement text: title, newline, link.
func ComposeMessage(title, link string) string {
	return title + "\n" + link
}

// Announce shares title and link. Only the status code of the reply is checked.
func (s *SocialBee) Announce(ctx context.Context, title, link string) error {
	if !s.Enabled() {
		s.log.WarnObj("No SocialBee API key found. Skipping SocialBee post.", "socialbee_skipped", nil)
		return nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.cfg.APIKey).
		SetBody(postPayload{Content: ComposeMessage(title, link), Category: s.cfg.Category}).
		Post(s.cfg.URL)
	if err != nil {
		return fmt.Errorf("create socialbee post: %w", err)
	}
	if err := httpclient.CheckResponse(serviceName, resp); err != nil {
		s.log.ErrorObj("socialbee rejected post", "socialbee_error", map[string]any{
			"status": resp.StatusCode(),
		})
		return err
	}

	s.log.InfoObj("Shared on SocialBee!", "socialbee_shared", map[string]any{
		"category": s.cfg.Category,
	})
	return nil
}
