package middleware

import (
	"watbot/internal/conversation"
	"watbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ResumeFunc resumes a chat's pending step with the inbound message
type ResumeFunc func(c tele.Context, step domain.Step) error

// Continuation creates middleware that routes every message from a chat
// with a pending step to the resume function instead of the regular
// handler. Continuations always win: a top-level command typed mid-flow
// is consumed by the pending step, /cancel being the only escape.
// Inline queries carry no chat and are never intercepted.
func Continuation(convs *conversation.Manager, resume ResumeFunc, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			msg := c.Message()
			if msg == nil || msg.Chat == nil {
				return next(c)
			}

			step, ok := convs.Pending(msg.Chat.ID)
			if !ok {
				return next(c)
			}

			logger.Debug("Resuming pending step",
				zap.Int64("chat_id", msg.Chat.ID),
				zap.Int("step_kind", int(step.Kind)),
			)

			return resume(c, step)
		}
	}
}
