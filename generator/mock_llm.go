package generator

import (
	"context"
	"sync"
)

// StaticLLM 返回固定内容，不调用外部模型，并记录收到的提示词。
type StaticLLM struct {
	Response string
	Err      error

	mu      sync.Mutex
	prompts []string
}

func (m *StaticLLM) Complete(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *StaticLLM) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}
