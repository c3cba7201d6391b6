package irc

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lrstanley/girc"
	"go.uber.org/zap"

	"pkdindustries/multijoin/internal/config"
	"pkdindustries/multijoin/internal/core"
)

// ChatContext is a control command received by one link
type ChatContext struct {
	context.Context
	Sys       core.System
	Config    *config.Configuration
	network   string
	client    *girc.Client
	event     *girc.Event
	args      []string
	logger    *zap.SugaredLogger
	requestID string
}

var _ core.ChatContextInterface = (*ChatContext)(nil)

func NewChatContext(parentctx context.Context, config *config.Configuration, system core.System, link *Link, e *girc.Event) (core.ChatContextInterface, context.CancelFunc) {
	timedctx, cancel := context.WithTimeout(parentctx, config.API.Timeout)

	// Generate a unique request ID for correlation
	requestID := generateRequestID()

	source := ""
	if e.Source != nil {
		source = e.Source.Name
	}

	ctx := &ChatContext{
		Context:   timedctx,
		Config:    config,
		Sys:       system,
		network:   link.Network,
		client:    link.Client(),
		event:     e,
		args:      CommandArgs(e.Last(), config.Bot.Trigger),
		requestID: requestID,
		logger: link.Logger().With(
			"request_id", requestID,
			"source", source,
		),
	}

	return ctx, cancel
}

func (c *ChatContext) GetSystem() core.System {
	return c.Sys
}

func (c *ChatContext) GetConfig() *config.Configuration {
	return c.Config
}

func (c *ChatContext) GetLogger() *zap.SugaredLogger {
	return c.logger
}

func (c *ChatContext) GetArgs() []string {
	return c.args
}

func (c *ChatContext) GetNetwork() string {
	return c.network
}

func (c *ChatContext) GetSource() string {
	if c.event.Source == nil {
		return ""
	}
	return c.event.Source.Name
}

func (c *ChatContext) IsAdmin() bool {
	if c.event.Source == nil {
		return false
	}
	hostmask := c.event.Source.String()
	c.logger.Debugw("Checking hostmask", "hostmask", hostmask)
	return CheckAdmin(hostmask, c.Config.Bot.Admins)
}

// Reply sends one line back to whoever issued the command
func (c *ChatContext) Reply(message string) {
	c.client.Cmd.Message(c.GetSource(), message)
}

// checks if the message is a command for us
func (c *ChatContext) Valid() bool {
	if c.event.Command != girc.PRIVMSG || len(c.event.Params) == 0 || c.event.Source == nil {
		return false
	}
	return CheckPrivate(c.event.Params[0]) && len(c.args) > 0
}

func (c *ChatContext) GetCommand() string {
	if len(c.args) == 0 {
		return ""
	}
	return strings.ToLower(c.args[0])
}

// generateRequestID creates a unique 8-character request ID for correlation
func generateRequestID() string {
	id, _, _ := strings.Cut(uuid.NewString(), "-")
	return id
}
