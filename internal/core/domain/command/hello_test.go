package command

import (
	"gamerbot/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHello(t *testing.T) {
	h := NewHello("!hello")

	assert.Equal(t, "!hello", h.GetCommand())
	assert.Equal(t, 0, h.MinArgs())
	assert.Empty(t, h.ArgNames())
	assert.Equal(t, "Sends greetings to the user", h.Description())
}

func TestHelloExecute(t *testing.T) {
	h := NewHello("!hello")

	got, err := h.Execute(t.Context(), &domain.Invocation{
		Message: &domain.Message{AuthorMention: "Alice"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello Alice", got)
}

func TestHelloThroughDispatcher(t *testing.T) {
	registry := &Registry{}
	registry.Register(NewHello("!hello"))
	sender := &mockTextSender{}

	err := NewDispatcher(registry, sender, nil, nil, 0).Dispatch(t.Context(), &domain.Message{
		ChannelID:     "general",
		AuthorMention: "<@42>",
		Text:          "!hello",
	})

	require.NoError(t, err)
	assert.Equal(t, []sentMessage{{channelID: "general", text: "Hello <@42>"}}, sender.sent)
}

func TestHelpExecute(t *testing.T) {
	h := NewHelp("!commands", "!help")

	got, err := h.Execute(t.Context(), &domain.Invocation{Message: &domain.Message{}})

	require.NoError(t, err)
	assert.Equal(t, "!help", h.GetCommand())
	assert.Equal(t, "Type in command as ```!<command>``` or type in ```!commands``` for list of commands", got)
}
