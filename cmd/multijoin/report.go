package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"pkdindustries/multijoin/internal/multijoin"
	"pkdindustries/multijoin/internal/registry"
)

// printer writes report lines to a terminal
type printer struct {
	w io.Writer
}

func (p printer) Reply(line string) {
	fmt.Fprintln(p.w, line)
}

// reportCommand runs the engine against the stored registry. Nothing is
// connected offline, so join and part only show who would be skipped.
func reportCommand(verb, args, usage string) *cli.Command {
	action, _ := multijoin.ParseAction(verb)

	return &cli.Command{
		Name:      verb,
		Usage:     usage,
		ArgsUsage: args,
		Action: withStore(func(store *registry.Store, c *cli.Command) error {
			records, err := store.All()
			if err != nil {
				return err
			}
			offline := registry.Snapshot(records, func(account, network string) registry.Identity { return nil })
			if err := offlineReport(os.Stdout, offline, action, c.Args().Slice(), c.String("partreason")); err != nil {
				return fmt.Errorf("%w: %s %s", err, verb, args)
			}
			return nil
		}),
	}
}

// errMissingArgs is returned when the network (or channel) is not given.
// There is no current network offline to fall back on.
var errMissingArgs = errors.New("missing arguments, usage")

func offlineReport(w io.Writer, accessor registry.Accessor, action multijoin.Action, args []string, reason string) error {
	req := multijoin.Request{Action: action}
	if action.NeedsChannel() {
		if len(args) < 2 || args[0] == "" || args[1] == "" {
			return errMissingArgs
		}
		req.Channel = args[0]
		req.Network = args[1]
	} else {
		if len(args) < 1 || args[0] == "" {
			return errMissingArgs
		}
		req.Network = args[0]
	}

	engine := multijoin.NewEngine(accessor, reason, nil)
	engine.Run(req).Emit(printer{w: w})
	return nil
}

