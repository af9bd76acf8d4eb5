package handler

import (
	"strconv"

	tele "gopkg.in/telebot.v3"
)

// handleHelp handles /start and /help
func (h *Handler) handleHelp(c tele.Context) error {
	usage := "watbot - \"What the!?\"\n\n" +
		"/add <name> : Add a new WAT\n" +
		"/remove : Remove a WAT\n" +
		"/wat <expression> : Get a random WAT\n" +
		"/setexpressions : Set the expressions of a WAT\n" +
		"/addwhitelist <name> <id> : Add user ID to whitelist\n" +
		"/rmwhitelist <name> : Remove user from whitelist\n" +
		"/whitelist : Show current whitelist"

	return c.Reply(usage)
}

// handleMe echoes the sender's numeric ID
func (h *Handler) handleMe(c tele.Context) error {
	return c.Reply(strconv.FormatInt(c.Sender().ID, 10))
}

// handleCancel handles /cancel outside of a flow. Inside a flow the
// continuation middleware routes /cancel to the pending step instead.
func (h *Handler) handleCancel(c tele.Context) error {
	return c.Reply("No operation in progress")
}
