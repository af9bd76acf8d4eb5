package handler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAddWhitelist adds a user to the whitelist.
//
// Expects a message with the format:
//
//	/addwhitelist <name> <id>
func (h *Handler) handleAddWhitelist(c tele.Context) error {
	if !h.requireOwner(c) {
		return nil
	}

	args := strings.Fields(c.Message().Payload)
	if len(args) != 2 {
		return c.Reply("/addwhitelist <name> <id>")
	}

	name := args[0]
	userID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return c.Reply("/addwhitelist <name> <id>")
	}

	added, err := h.access.AddWhitelistEntry(name, userID)
	if err != nil {
		h.logger.Error("Failed to persist whitelist",
			zap.String("name", name),
			zap.Error(err),
		)
		return c.Reply("Failed to save whitelist changes")
	}
	if !added {
		return c.Reply("Failed to add user to whitelist")
	}

	h.logger.Info("Whitelist entry added",
		zap.String("name", name),
		zap.Int64("user_id", userID),
	)
	return c.Reply("User added to whitelist!")
}

// handleRemoveWhitelist removes a user from the whitelist.
//
// Expects a message with the format:
//
//	/rmwhitelist <name>
func (h *Handler) handleRemoveWhitelist(c tele.Context) error {
	if !h.requireOwner(c) {
		return nil
	}

	name := c.Message().Payload
	if name == "" {
		return c.Reply("/rmwhitelist <name>")
	}

	removed, err := h.access.RemoveWhitelistEntry(name)
	if err != nil {
		h.logger.Error("Failed to persist whitelist",
			zap.String("name", name),
			zap.Error(err),
		)
		return c.Reply("Failed to save whitelist changes")
	}
	if !removed {
		return c.Reply("Failed to remove user from whitelist")
	}

	h.logger.Info("Whitelist entry removed", zap.String("name", name))
	return c.Reply("User removed from whitelist!")
}

// handleShowWhitelist lists the current whitelist
func (h *Handler) handleShowWhitelist(c tele.Context) error {
	if !h.requireOwner(c) {
		return nil
	}

	entries := h.access.WhitelistEntries()

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	msg := "Whitelisted users:\n\n"
	for _, name := range names {
		msg += fmt.Sprintf("- %s (%d)\n", name, entries[name])
	}

	return c.Reply(msg)
}
