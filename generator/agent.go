package generator

import (
	"context"
	"errors"
	"fmt"

	"affiliate_autopilot/logger"
)

// ErrNoContent is returned instead of the placeholder when content is required.
var ErrNoContent = errors.New("model returned no content")

// Agent 负责调用模型并解析为 Article。
type Agent struct {
	llm            LLMClient
	requireContent bool
	log            logger.Logger
}

type AgentOption func(*Agent)

// WithRequireContent makes an empty completion a hard failure.
func WithRequireContent(v bool) AgentOption {
	return func(a *Agent) { a.requireContent = v }
}

func WithLogger(log logger.Logger) AgentOption {
	return func(a *Agent) { a.log = logger.Ensure(log) }
}

func NewAgent(llm LLMClient, opts ...AgentOption) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	a := &Agent{llm: llm, log: logger.NopLogger{}}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Generate 请求固定提示词并解析结果。
// 网络错误和鉴权失败直接返回；其余服务端失败与空回复一样按占位内容处理。
func (a *Agent) Generate(ctx context.Context) (Article, error) {
	raw, err := a.llm.Complete(ctx, Prompt)
	if err != nil {
		if !isDegradable(err) {
			return Article{}, fmt.Errorf("generate article: %w", err)
		}
		a.log.WarnObj("model request failed", "article_llm_error", map[string]any{
			"error": err.Error(),
		})
		raw = ""
	}
	if isBlank(raw) {
		if a.requireContent {
			return Article{}, ErrNoContent
		}
		a.log.WarnObj("model returned no content, using placeholder", "article_placeholder", nil)
		raw = Placeholder
	}

	art := ParseArticle(raw)
	a.log.DebugObj("article generated", "article_generated", map[string]any{
		"title":         art.Title,
		"content_bytes": len(art.Content),
	})
	return art, nil
}
