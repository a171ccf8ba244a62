package publisher

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"affiliate_autopilot/config"
	"affiliate_autopilot/httpclient"
	"affiliate_autopilot/logger"
)

const (
	postsPath     = "/wp-json/wp/v2/posts"
	statusPublish = "publish"
	serviceName   = "wordpress"
)

type createPostPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

type createPostResp struct {
	ID   int64  `json:"id"`
	Link string `json:"link"`
}

// WordPress publishes posts through the WordPress REST API using an
// application password.
type WordPress struct {
	cfg    config.WordPressConfig
	client *resty.Client
	md     goldmark.Markdown
	log    logger.Logger
}

func New(cfg config.WordPressConfig, client *resty.Client, log logger.Logger) (*WordPress, error) {
	if cfg.URL == "" {
		return nil, errors.New("wordpress url missing; set WORDPRESS_URL")
	}
	if cfg.Username == "" || cfg.AppPassword == "" {
		return nil, errors.New("wordpress credentials missing; set WORDPRESS_USERNAME and WORDPRESS_APP_PASSWORD")
	}
	if client == nil {
		client = httpclient.New(0)
	}
	return &WordPress{
		cfg:    cfg,
		client: client,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		log:    logger.Ensure(log),
	}, nil
}

// Publish creates an immediately published post and returns its public link.
// A response without a link yields "" and no error.
func (p *WordPress) Publish(ctx context.Context, title, content string) (string, error) {
	body := content
	if p.cfg.RenderHTML {
		html, err := p.mdToHTML(content)
		if err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		body = html
		p.log.DebugObj("converted markdown to html", "wordpress_render", map[string]any{
			"bytes": len(body),
		})
	}

	var out createPostResp
	resp, err := p.client.R().
		SetContext(ctx).
		SetBasicAuth(p.cfg.Username, p.cfg.AppPassword).
		SetBody(createPostPayload{Title: title, Content: body, Status: statusPublish}).
		SetResult(&out).
		Post(p.cfg.URL + postsPath)
	if err != nil {
		return "", fmt.Errorf("create wordpress post: %w", err)
	}
	if err := httpclient.CheckResponse(serviceName, resp); err != nil {
		p.log.ErrorObj("wordpress rejected post", "wordpress_error", map[string]any{
			"status": resp.StatusCode(),
		})
		return "", err
	}

	p.log.InfoObj("Posted to WordPress", "wordpress_published", map[string]any{
		"link":    out.Link,
		"post_id": out.ID,
	})
	return out.Link, nil
}

func (p *WordPress) mdToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
