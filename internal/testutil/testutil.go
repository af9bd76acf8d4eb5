package testutil

import (
	"watbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWat creates a test WAT
func NewTestWat(id int64, name string, fileIDs, expressions []string) *domain.Wat {
	return &domain.Wat{
		ID:          id,
		Name:        name,
		FileIDs:     fileIDs,
		Expressions: expressions,
	}
}

// FakeContext implements the subset of tele.Context that handlers use,
// recording everything sent through it. Calls to any other tele.Context
// method panic on the embedded nil interface.
type FakeContext struct {
	tele.Context

	M    *tele.Message
	Qry  *tele.Query
	User *tele.User

	Sent     []interface{}
	Replied  []interface{}
	Answered *tele.QueryResponse
}

// NewTextContext creates a fake context carrying a plain text message
func NewTextContext(chatID, userID int64, text string) *FakeContext {
	return &FakeContext{
		M: &tele.Message{
			Text: text,
			Chat: &tele.Chat{ID: chatID},
		},
		User: &tele.User{ID: userID},
	}
}

// NewPhotoContext creates a fake context carrying a photo message
func NewPhotoContext(chatID, userID int64, fileID string) *FakeContext {
	return &FakeContext{
		M: &tele.Message{
			Photo: &tele.Photo{File: tele.File{FileID: fileID}},
			Chat:  &tele.Chat{ID: chatID},
		},
		User: &tele.User{ID: userID},
	}
}

// NewCommandContext creates a fake context for a command with a payload
func NewCommandContext(chatID, userID int64, command, payload string) *FakeContext {
	text := command
	if payload != "" {
		text += " " + payload
	}

	return &FakeContext{
		M: &tele.Message{
			Text:    text,
			Payload: payload,
			Chat:    &tele.Chat{ID: chatID},
		},
		User: &tele.User{ID: userID},
	}
}

// NewQueryContext creates a fake context carrying an inline query
func NewQueryContext(userID int64, text string) *FakeContext {
	return &FakeContext{
		Qry:  &tele.Query{Text: text},
		User: &tele.User{ID: userID},
	}
}

func (f *FakeContext) Message() *tele.Message { return f.M }

func (f *FakeContext) Sender() *tele.User { return f.User }

func (f *FakeContext) Chat() *tele.Chat {
	if f.M == nil {
		return nil
	}
	return f.M.Chat
}

func (f *FakeContext) Text() string {
	if f.M == nil {
		return ""
	}
	return f.M.Text
}

func (f *FakeContext) Query() *tele.Query { return f.Qry }

func (f *FakeContext) Send(what interface{}, opts ...interface{}) error {
	f.Sent = append(f.Sent, what)
	return nil
}

func (f *FakeContext) Reply(what interface{}, opts ...interface{}) error {
	f.Replied = append(f.Replied, what)
	return nil
}

func (f *FakeContext) Answer(resp *tele.QueryResponse) error {
	f.Answered = resp
	return nil
}

// LastSent returns the most recent payload passed to Send, or nil
func (f *FakeContext) LastSent() interface{} {
	if len(f.Sent) == 0 {
		return nil
	}
	return f.Sent[len(f.Sent)-1]
}

// LastReply returns the most recent payload passed to Reply, or nil
func (f *FakeContext) LastReply() interface{} {
	if len(f.Replied) == 0 {
		return nil
	}
	return f.Replied[len(f.Replied)-1]
}
