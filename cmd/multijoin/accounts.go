package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"pkdindustries/multijoin/internal/registry"
)

func accountCommand() *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "manage accounts",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "register a new account",
				ArgsUsage: "<name>",
				Action: withStore(func(store *registry.Store, c *cli.Command) error {
					name := c.Args().First()
					if err := store.AddAccount(name); err != nil {
						return err
					}
					fmt.Printf("Added account %s\n", name)
					return nil
				}),
			},
			{
				Name:      "remove",
				Usage:     "remove an account and all its networks",
				ArgsUsage: "<name>",
				Action: withStore(func(store *registry.Store, c *cli.Command) error {
					name := c.Args().First()
					if err := store.RemoveAccount(name); err != nil {
						return err
					}
					fmt.Printf("Removed account %s\n", name)
					return nil
				}),
			},
			{
				Name:  "list",
				Usage: "show every account with its networks",
				Action: withStore(func(store *registry.Store, c *cli.Command) error {
					records, err := store.All()
					if err != nil {
						return err
					}
					renderAccounts(os.Stdout, records)
					return nil
				}),
			},
		},
	}
}

func networkCommand() *cli.Command {
	return &cli.Command{
		Name:  "network",
		Usage: "manage an account's networks",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "register a network connection for an account",
				ArgsUsage: "<account> <network>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "server", Aliases: []string{"s"}, Usage: "irc server address", Required: true},
					&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 6667, Usage: "irc server port"},
					&cli.BoolFlag{Name: "tls", Aliases: []string{"e"}, Usage: "enable TLS for the connection"},
					&cli.BoolFlag{Name: "tlsinsecure", Usage: "skip TLS certificate verification"},
					&cli.StringFlag{Name: "nick", Aliases: []string{"n"}, Usage: "nick to use on the network", Required: true},
					&cli.StringFlag{Name: "ident", Usage: "username for this connection"},
					&cli.StringFlag{Name: "name", Usage: "realname for this connection"},
					&cli.StringFlag{Name: "password", Usage: "server password"},
					&cli.StringFlag{Name: "saslnick", Usage: "nick used for SASL"},
					&cli.StringFlag{Name: "saslpass", Usage: "password for SASL plain"},
				},
				Action: withStore(func(store *registry.Store, c *cli.Command) error {
					if c.NArg() < 2 {
						return fmt.Errorf("usage: network add <account> <network>")
					}
					rec := registry.NetworkRecord{
						Name:        c.Args().Get(1),
						Server:      c.String("server"),
						Port:        c.Int("port"),
						TLS:         c.Bool("tls"),
						TLSInsecure: c.Bool("tlsinsecure"),
						Nick:        c.String("nick"),
						Username:    c.String("ident"),
						Realname:    c.String("name"),
						Password:    c.String("password"),
						SASLUser:    c.String("saslnick"),
						SASLPass:    c.String("saslpass"),
					}
					if err := store.AddNetwork(c.Args().First(), rec); err != nil {
						return err
					}
					fmt.Printf("Added network %s to account %s\n", rec.Name, c.Args().First())
					return nil
				}),
			},
			{
				Name:      "remove",
				Usage:     "remove a network from an account",
				ArgsUsage: "<account> <network>",
				Action: withStore(func(store *registry.Store, c *cli.Command) error {
					if c.NArg() < 2 {
						return fmt.Errorf("usage: network remove <account> <network>")
					}
					if err := store.RemoveNetwork(c.Args().First(), c.Args().Get(1)); err != nil {
						return err
					}
					fmt.Printf("Removed network %s from account %s\n", c.Args().Get(1), c.Args().First())
					return nil
				}),
			},
		},
	}
}

func withStore(fn func(*registry.Store, *cli.Command) error) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		sys, err := openStore(c)
		if err != nil {
			return err
		}
		defer syncLogger()
		defer sys.Close()
		return fn(sys.GetStore(), c)
	}
}

func renderAccounts(w io.Writer, records []registry.AccountRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Account", "Network", "Server", "Nick", "TLS"})
	table.SetAutoMergeCells(true)
	table.SetRowLine(true)

	for _, rec := range records {
		if len(rec.Networks) == 0 {
			table.Append([]string{rec.Name, "-", "-", "-", "-"})
			continue
		}
		for _, n := range rec.Networks {
			table.Append([]string{
				rec.Name,
				n.Name,
				n.Server + ":" + strconv.Itoa(n.Port),
				n.Nick,
				strconv.FormatBool(n.TLS),
			})
		}
	}
	table.Render()
}
