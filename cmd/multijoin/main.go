package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"pkdindustries/multijoin/internal/bot"
	"pkdindustries/multijoin/internal/config"
	"pkdindustries/multijoin/internal/core"
)

func main() {
	fmt.Printf("%s\n", bot.GetBanner(bot.Version))

	cmd := &cli.Command{
		Name:    "multijoin",
		Usage:   "one command, every nick",
		Version: bot.Version,
		Flags:   config.GetFlags(),
		Action:  runBot,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "connect every registered nick and serve control commands",
				Action: runBot,
			},
			accountCommand(),
			networkCommand(),
			reportCommand("join", "<#channel> <network_name>", "show which nicks a join would instruct"),
			reportCommand("part", "<#channel> <network_name>", "show which nicks a part would instruct"),
			reportCommand("list", "<network_name>", "list the nicks registered on a network"),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runBot(ctx context.Context, c *cli.Command) error {
	cfg := config.NewConfiguration(c)
	return bot.Run(ctx, cfg)
}

// openStore initializes logging and opens the configured account store for an offline subcommand
func openStore(c *cli.Command) (*bot.System, error) {
	cfg := config.NewConfiguration(c)
	core.InitLogger(cfg.Bot.Verbose, cfg.Bot.LogFile)
	return bot.NewSystem(cfg)
}

func syncLogger() {
	_ = zap.L().Sync()
}
