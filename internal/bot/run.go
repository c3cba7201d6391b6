package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/lrstanley/girc"
	"go.uber.org/zap"

	"pkdindustries/multijoin/internal/commands"
	"pkdindustries/multijoin/internal/config"
	"pkdindustries/multijoin/internal/core"
	"pkdindustries/multijoin/internal/irc"
)

var Version = "0.3"

// Run connects every registered identity and serves control commands until ctx is done
func Run(ctx context.Context, cfg *config.Configuration) error {
	core.InitLogger(cfg.Bot.Verbose, cfg.Bot.LogFile)
	defer zap.L().Sync()

	if cfg.Bot.Verbose {
		cfg.PrintConfig()
	}

	sys, err := NewSystem(cfg)
	if err != nil {
		return err
	}
	defer sys.Close()

	cmdRegistry := commands.Default("v" + Version)

	records, err := sys.GetStore().All()
	if err != nil {
		return fmt.Errorf("loading accounts: %w", err)
	}

	for _, rec := range records {
		for _, network := range rec.Networks {
			link := irc.NewLink(rec.Name, network, cfg.Identity, zap.S())
			AddHandlers(ctx, cfg, sys, cmdRegistry, link)
			sys.Pool().Add(link)
		}
	}

	if sys.Pool().Len() == 0 {
		zap.S().Warn("No networks registered; add one with 'multijoin network add'")
		<-ctx.Done()
		return nil
	}

	Greeting(sys.Pool().Links(), cfg.Bot.Trigger)

	return sys.Pool().Run(ctx, cfg.Identity.RetryDelay, cfg.Identity.MaxRetries)
}

// AddHandlers wires the control surface onto link
func AddHandlers(ctx context.Context, cfg *config.Configuration, sys core.System, cmdRegistry *commands.Registry, link *irc.Link) {
	client := link.Client()

	client.Handlers.AddBg(girc.CONNECTED, func(client *girc.Client, e girc.Event) {
		link.Logger().Infow("Connected", "nick", client.GetNick())
	})

	client.Handlers.AddBg(girc.DISCONNECTED, func(client *girc.Client, e girc.Event) {
		link.Logger().Info("Disconnected")
	})

	client.Handlers.AddBg(girc.PRIVMSG, func(client *girc.Client, e girc.Event) {
		ctx, cancel := irc.NewChatContext(ctx, cfg, sys, link, &e)
		defer cancel()

		if !ctx.Valid() {
			return
		}

		ctx.GetLogger().Infof(">> %s", strings.Join(e.Params[1:], " "))
		cmdRegistry.Dispatch(ctx)
	})
}
