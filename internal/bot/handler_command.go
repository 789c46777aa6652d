package bot

import (
	"context"
)

type StartHandler struct {
	platform Platform
}

func NewStartHandler(p Platform) *StartHandler {
	return &StartHandler{platform: p}
}

func (h *StartHandler) Handle(ctx context.Context, msg *Message, _ string) {
	sendTo(ctx, h.platform, msg, helpText)
}
