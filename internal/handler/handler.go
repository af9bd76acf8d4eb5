package handler

import (
	"watbot/internal/conversation"
	"watbot/internal/middleware"
	"watbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	cancelCommand = "/cancel"

	msgPermissionDenied = "You do not have permission to do that"
	msgCancelled        = "Operation cancelled"
)

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	wats   *service.WatService
	access *service.AccessService
	convs  *conversation.Manager
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	wats *service.WatService,
	access *service.AccessService,
	convs *conversation.Manager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:    bot,
		wats:   wats,
		access: access,
		convs:  convs,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Chats with a pending step are routed to h.resume before any
	// command dispatch happens
	h.bot.Use(middleware.Continuation(h.convs, h.resume, h.logger))

	// Commands
	h.bot.Handle("/start", h.handleHelp)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/me", h.handleMe)
	h.bot.Handle("/add", h.handleAdd)
	h.bot.Handle("/remove", h.handleRemove)
	h.bot.Handle("/wat", h.handleWat)
	h.bot.Handle("/setexpressions", h.handleSetExpressions)
	h.bot.Handle("/addwhitelist", h.handleAddWhitelist)
	h.bot.Handle("/rmwhitelist", h.handleRemoveWhitelist)
	h.bot.Handle("/whitelist", h.handleShowWhitelist)
	h.bot.Handle(cancelCommand, h.handleCancel)

	// Plain messages only matter as continuation replies, which the
	// middleware intercepts; anything reaching these is ignored
	h.bot.Handle(tele.OnText, h.handleIgnore)
	h.bot.Handle(tele.OnPhoto, h.handleIgnore)

	// Inline queries
	h.bot.Handle(tele.OnQuery, h.handleInline)
}

// requireOwner enforces the owner gate on management commands.
// Returns false after replying when the sender is not the owner.
func (h *Handler) requireOwner(c tele.Context) bool {
	if h.access.IsOwner(c.Sender().ID) {
		return true
	}

	h.logger.Info("Permission denied",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("text", c.Text()),
	)

	if err := c.Reply(msgPermissionDenied); err != nil {
		h.logger.Error("Failed to send denial reply", zap.Error(err))
	}
	return false
}

func (h *Handler) handleIgnore(c tele.Context) error {
	return nil
}

// watNamesKeyboard builds a reply keyboard listing every WAT name plus
// a cancel button, two per row
func (h *Handler) watNamesKeyboard() (*tele.ReplyMarkup, error) {
	wats, err := h.wats.ListAll()
	if err != nil {
		return nil, err
	}

	markup := &tele.ReplyMarkup{ResizeKeyboard: true}

	var rows []tele.Row
	for i := 0; i < len(wats); i += 2 {
		row := tele.Row{markup.Text(wats[i].Name)}
		if i+1 < len(wats) {
			row = append(row, markup.Text(wats[i+1].Name))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tele.Row{markup.Text(cancelCommand)})

	markup.Reply(rows...)
	return markup, nil
}

func hideKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}
