package command_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kwehdev/discord-game-bot/internal/chat"
	"github.com/Kwehdev/discord-game-bot/internal/command"
	"github.com/Kwehdev/discord-game-bot/internal/logger"
	mockchat "github.com/Kwehdev/discord-game-bot/testutils/mocks/chat"
)

// steamRecorder records steam invocations.
type steamRecorder struct {
	mu    sync.Mutex
	calls [][]string
	ctxs  []context.Context
}

func (s *steamRecorder) Steam(ctx context.Context, _ chat.Incoming, args []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, args)
	s.ctxs = append(s.ctxs, ctx)
}

func newRouter(t *testing.T, prefix string) (*command.Router, *mockchat.MockClient, *steamRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mockchat.NewMockClient(ctrl)
	steam := &steamRecorder{}

	router := command.NewRouter(prefix, command.RouterDeps{
		Steam:  steam,
		Chat:   client,
		Logger: logger.NewNop(),
	})
	return router, client, steam
}

func message(content string) chat.Incoming {
	return chat.Incoming{
		Message:  chat.Message{ID: "m1", ChannelID: "c1"},
		AuthorID: "u1",
		Content:  content,
	}
}

func TestRouter_Parse(t *testing.T) {
	t.Parallel()

	router, _, _ := newRouter(t, "")

	tests := []struct {
		content  string
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{content: "?steam half life", wantName: "steam", wantArgs: []string{"half", "life"}, wantOK: true},
		{content: "?STEAM Portal", wantName: "steam", wantArgs: []string{"Portal"}, wantOK: true},
		{content: "?help", wantName: "help", wantArgs: []string{}, wantOK: true},
		{content: "?", wantName: "", wantArgs: nil, wantOK: true},
		{content: "steam half life", wantOK: false},
		{content: "!steam", wantOK: false},
	}

	for _, tt := range tests {
		name, args, ok := router.Parse(tt.content)
		assert.Equal(t, tt.wantOK, ok, tt.content)
		assert.Equal(t, tt.wantName, name, tt.content)
		assert.Equal(t, tt.wantArgs, args, tt.content)
	}
}

func TestRouter_DispatchesSteam(t *testing.T) {
	t.Parallel()

	router, _, steam := newRouter(t, "")

	router.Handle(context.Background(), message("?steam half life"))

	require.Len(t, steam.calls, 1)
	assert.Equal(t, []string{"half", "life"}, steam.calls[0])
	assert.Error(t, steam.ctxs[0].Err(), "invocation context is released after the command")
}

func TestRouter_IgnoresNonCommandsAndBots(t *testing.T) {
	t.Parallel()

	// No expectations: any chat call fails the test.
	router, _, steam := newRouter(t, "")

	router.Handle(context.Background(), message("hello there"))

	bot := message("?steam portal")
	bot.AuthorIsBot = true
	router.Handle(context.Background(), bot)

	assert.Empty(t, steam.calls)
}

func TestRouter_Help(t *testing.T) {
	t.Parallel()

	router, client, _ := newRouter(t, "")
	in := message("?help")

	client.EXPECT().
		Reply(gomock.Any(), in.Message, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ chat.Message, content string) (chat.Message, error) {
			assert.Contains(t, content, "?help - Displays a list of commands and their usage.")
			assert.Contains(t, content, "?steam 'searchterm'")
			return chat.Message{ID: "r1"}, nil
		})

	router.Handle(context.Background(), in)
}

func TestRouter_UnknownCommand(t *testing.T) {
	t.Parallel()

	router, client, steam := newRouter(t, "")

	client.EXPECT().Send(gomock.Any(), "c1", "Unknown command.").Return(chat.Message{ID: "r1"}, nil)

	router.Handle(context.Background(), message("?dance"))

	assert.Empty(t, steam.calls)
}

func TestRouter_SendFailureIsLogged(t *testing.T) {
	t.Parallel()

	router, client, _ := newRouter(t, "")

	client.EXPECT().Send(gomock.Any(), "c1", "Unknown command.").Return(chat.Message{}, errors.New("forbidden"))

	assert.NotPanics(t, func() {
		router.Handle(context.Background(), message("?dance"))
	})
}

func TestRouter_CustomPrefix(t *testing.T) {
	t.Parallel()

	router, _, steam := newRouter(t, "!")

	router.Handle(context.Background(), message("?steam portal"))
	router.Handle(context.Background(), message("!steam portal"))

	require.Len(t, steam.calls, 1)
	assert.Equal(t, []string{"portal"}, steam.calls[0])
}
