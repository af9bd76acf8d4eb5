package handler

import (
	"errors"
	"fmt"
	"strings"

	"watbot/internal/domain"
	"watbot/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// resume dispatches a message to the chat's pending step. Each step
// handler either completes and clears the step, cancels, or re-registers
// itself to ask again.
func (h *Handler) resume(c tele.Context, step domain.Step) error {
	switch step.Kind {
	case domain.StepAwaitingImage:
		return h.resumeAddImage(c, step.WatName)
	case domain.StepAwaitingRemovalChoice:
		return h.resumeRemovalChoice(c)
	case domain.StepAwaitingExpressionChoice:
		return h.resumeExpressionChoice(c)
	case domain.StepAwaitingExpressions:
		return h.resumeSetExpressions(c, step.WatName)
	default:
		h.logger.Error("Unknown pending step",
			zap.Int64("chat_id", c.Chat().ID),
			zap.Int("step_kind", int(step.Kind)),
		)
		h.convs.Clear(c.Chat().ID)
		return nil
	}
}

// cancelled checks for the cancel keyword and, if present, clears the
// chat's pending step and acknowledges
func (h *Handler) cancelled(c tele.Context, markup ...interface{}) (bool, error) {
	if c.Text() != cancelCommand {
		return false, nil
	}

	h.convs.Clear(c.Chat().ID)
	return true, c.Send(msgCancelled, markup...)
}

// handleAdd starts the add-flow for a new WAT.
//
// Expects a message with the format:
//
//	/add <name>
func (h *Handler) handleAdd(c tele.Context) error {
	if !h.requireOwner(c) {
		return nil
	}

	name := c.Message().Payload
	if name == "" {
		return c.Reply("/add <name>")
	}

	exists, err := h.wats.Exists(name)
	if err != nil {
		h.logger.Error("Failed to check wat existence", zap.Error(err))
		return c.Reply("Something went wrong, try again later")
	}
	if exists {
		return c.Reply("There is already a WAT with that name")
	}

	h.convs.Expect(c.Chat().ID, domain.Step{Kind: domain.StepAwaitingImage, WatName: name})
	return c.Send("Please send the image for this WAT")
}

// resumeAddImage stores the WAT once an image arrives
func (h *Handler) resumeAddImage(c tele.Context, name string) error {
	if done, err := h.cancelled(c); done {
		return err
	}

	photo := c.Message().Photo
	if photo == nil {
		h.convs.Expect(c.Chat().ID, domain.Step{Kind: domain.StepAwaitingImage, WatName: name})
		return c.Send("Please send the image for this WAT")
	}

	h.convs.Clear(c.Chat().ID)

	wat, err := h.wats.Create(name, []string{photo.FileID})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return c.Send("There is already a WAT with that name")
		}
		h.logger.Error("Failed to create wat",
			zap.String("name", name),
			zap.Error(err),
		)
		return c.Send("Failed to add the WAT")
	}

	h.logger.Info("Wat created",
		zap.Int64("id", wat.ID),
		zap.String("name", wat.Name),
	)
	return c.Send("Added correctly!")
}

// handleRemove starts the remove-flow, presenting all WAT names
func (h *Handler) handleRemove(c tele.Context) error {
	if !h.requireOwner(c) {
		return nil
	}

	markup, err := h.watNamesKeyboard()
	if err != nil {
		h.logger.Error("Failed to list wats", zap.Error(err))
		return c.Reply("Something went wrong, try again later")
	}

	h.convs.Expect(c.Chat().ID, domain.Step{Kind: domain.StepAwaitingRemovalChoice})
	return c.Send("Choose a WAT to delete", markup)
}

// resumeRemovalChoice deletes the chosen WAT
func (h *Handler) resumeRemovalChoice(c tele.Context) error {
	if c.Text() == "" {
		h.convs.Expect(c.Chat().ID, domain.Step{Kind: domain.StepAwaitingRemovalChoice})
		return c.Send("You need to send a WAT name")
	}

	if done, err := h.cancelled(c, hideKeyboard()); done {
		return err
	}

	name := c.Text()
	wat, err := h.wats.GetByName(name)
	if err != nil {
		h.logger.Error("Failed to fetch wat", zap.String("name", name), zap.Error(err))
		h.convs.Clear(c.Chat().ID)
		return c.Send("Something went wrong, try again later", hideKeyboard())
	}
	if wat == nil {
		h.convs.Expect(c.Chat().ID, domain.Step{Kind: domain.StepAwaitingRemovalChoice})
		return c.Send("No WAT found with that name")
	}

	h.convs.Clear(c.Chat().ID)

	removed, err := h.wats.Remove(wat.ID)
	if err != nil {
		h.logger.Error("Failed to remove wat", zap.String("name", name), zap.Error(err))
		return c.Send("Something went wrong, try again later", hideKeyboard())
	}
	if !removed {
		return c.Send(fmt.Sprintf("Failed to remove WAT %s", name), hideKeyboard())
	}

	h.logger.Info("Wat removed",
		zap.Int64("id", wat.ID),
		zap.String("name", name),
	)
	return c.Send(fmt.Sprintf("Removed WAT %s", name), hideKeyboard())
}

// handleSetExpressions starts the edit-flow, presenting all WAT names
func (h *Handler) handleSetExpressions(c tele.Context) error {
	if !h.requireOwner(c) {
		return nil
	}

	markup, err := h.watNamesKeyboard()
	if err != nil {
		h.logger.Error("Failed to list wats", zap.Error(err))
		return c.Reply("Something went wrong, try again later")
	}

	h.convs.Expect(c.Chat().ID, domain.Step{Kind: domain.StepAwaitingExpressionChoice})
	return c.Send("Choose a WAT to modify", markup)
}

// resumeExpressionChoice shows the chosen WAT's expressions and asks
// for the new list
func (h *Handler) resumeExpressionChoice(c tele.Context) error {
	if c.Text() == "" {
		h.convs.Expect(c.Chat().ID, domain.Step{Kind: domain.StepAwaitingExpressionChoice})
		return c.Send("You need to send a WAT name")
	}

	if done, err := h.cancelled(c, hideKeyboard()); done {
		return err
	}

	name := c.Text()
	wat, err := h.wats.GetByName(name)
	if err != nil {
		h.logger.Error("Failed to fetch wat", zap.String("name", name), zap.Error(err))
		h.convs.Clear(c.Chat().ID)
		return c.Send("Something went wrong, try again later", hideKeyboard())
	}
	if wat == nil {
		h.convs.Expect(c.Chat().ID, domain.Step{Kind: domain.StepAwaitingExpressionChoice})
		return c.Send("No WAT found with that name")
	}

	expressions := "[No expressions defined]"
	if len(wat.Expressions) > 0 {
		expressions = strings.Join(wat.Expressions, ",")
	}

	if err := c.Send(fmt.Sprintf("Expressions of %s:\n%s", name, expressions), hideKeyboard()); err != nil {
		return err
	}

	h.convs.Expect(c.Chat().ID, domain.Step{Kind: domain.StepAwaitingExpressions, WatName: name})
	return c.Send("Send a comma separated list of expressions")
}

// resumeSetExpressions replaces the WAT's expressions with the reply
func (h *Handler) resumeSetExpressions(c tele.Context, name string) error {
	if done, err := h.cancelled(c); done {
		return err
	}

	if c.Text() == "" {
		h.convs.Expect(c.Chat().ID, domain.Step{Kind: domain.StepAwaitingExpressions, WatName: name})
		return c.Send("You need to send a comma separated list of expressions")
	}

	h.convs.Clear(c.Chat().ID)

	if err := h.wats.SetExpressions(name, c.Text()); err != nil {
		h.logger.Error("Failed to set expressions",
			zap.String("name", name),
			zap.Error(err),
		)
		return c.Send("Failed to update expressions")
	}

	h.logger.Info("Expressions updated", zap.String("name", name))
	return c.Send("Expressions updated")
}
