package handler

import (
	"strings"

	"watbot/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleWat replies with a random WAT matching the given expression.
//
// Expects a message with the format:
//
//	/wat <expression>
//
// An empty expression picks among all WATs, as does an expression that
// matches nothing.
func (h *Handler) handleWat(c tele.Context) error {
	if !h.access.IsAllowed(c.Sender().ID) {
		return nil
	}

	expression := c.Message().Payload

	wat, err := h.wats.PickRandom(expression)
	if err != nil {
		h.logger.Error("Failed to pick a wat",
			zap.String("expression", expression),
			zap.Error(err),
		)
		return c.Reply("Something went wrong, try again later")
	}

	if wat == nil {
		// Happens when the store is empty
		return c.Reply("Sorry, I have no WATs that match that")
	}

	photo := &tele.Photo{File: tele.File{FileID: wat.LargestFileID()}}
	return c.Reply(photo)
}

// handleInline answers inline queries.
//
// An empty query returns every WAT; non-empty text is used as an
// expression filter. Results use the smallest image variant. Failures
// on this path are logged and the query is dropped.
func (h *Handler) handleInline(c tele.Context) error {
	if !h.access.IsAllowed(c.Sender().ID) {
		return nil
	}

	expression := strings.ToLower(strings.TrimSpace(c.Query().Text))

	var wats []domain.Wat
	var err error
	if expression == "" {
		wats, err = h.wats.ListAll()
	} else {
		wats, err = h.wats.SearchByExpression(expression)
	}
	if err != nil {
		h.logger.Error("Failed to search wats for inline query",
			zap.String("expression", expression),
			zap.Error(err),
		)
		return nil
	}

	results := make(tele.Results, 0, len(wats))
	for i := range wats {
		result := &tele.PhotoResult{Cache: wats[i].SmallestFileID()}
		result.SetResultID(uuid.NewString())
		results = append(results, result)
	}

	if err := c.Answer(&tele.QueryResponse{Results: results}); err != nil {
		h.logger.Error("Failed to answer inline query", zap.Error(err))
	}
	return nil
}
