package ai

import (
	"strings"

	"github.com/ayursetu/ayur-hub/internal/config"
)

const (
	ModeMock = "mock"
	ModeGroq = "groq"
)

// NewProvider picks the generation backend from AI_MODE. Anything other
// than "groq" (including empty or unknown values) resolves to the mock.
func NewProvider(cfg *config.Config) Provider {
	if strings.EqualFold(strings.TrimSpace(cfg.AIMode), ModeGroq) {
		return NewGroqProvider(cfg)
	}
	return NewMockProvider()
}
