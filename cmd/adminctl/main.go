// adminctl drives the most common admin operations from a terminal, against
// the same platform API the panel talks to. It shares the panel's token
// file, so a session opened here carries over to the panel and back.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"raffle-admin-panel/internal/api"
	"raffle-admin-panel/internal/common/config"
	"raffle-admin-panel/internal/common/logger"
	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

func main() {
	app := &cli.App{
		Name:  "adminctl",
		Usage: "manage the raffle platform from the command line",
		Commands: []*cli.Command{
			loginCommand(),
			whoamiCommand(),
			userCommand(),
			payoutsCommand(),
			caseCommand(),
			raffleCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newClient() (*api.Client, error) {
	cfg := config.Load()
	logger.Init("adminctl", cfg.Debug)

	tokens := backend.NewTokenStore(cfg.Auth.TokenFile)
	return api.NewClient(cfg.Backend.BaseURL, tokens), nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "sign in, persisting the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email"},
			&cli.StringFlag{Name: "password"},
			&cli.StringFlag{Name: "init-data", Usage: "Telegram Mini App init data, instead of email/password"},
		},
		Action: func(c *cli.Context) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var user *models.UserInfo
			switch {
			case c.String("init-data") != "":
				user, err = client.Auth.Telegram(c.Context, c.String("init-data"))
			case c.String("email") != "" && c.String("password") != "":
				user, err = client.Auth.Login(c.Context, c.String("email"), c.String("password"))
			default:
				return fmt.Errorf("either --init-data or --email and --password are required")
			}
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the user behind the stored session token",
		Action: func(c *cli.Context) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			user, err := client.Auth.Check(c.Context)
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
}

func userCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "look up platform users",
		Subcommands: []*cli.Command{
			{
				Name:  "search",
				Usage: "search users by id, telegram id or username",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id"},
					&cli.StringFlag{Name: "telegram-id"},
					&cli.StringFlag{Name: "username"},
				},
				Action: func(c *cli.Context) error {
					client, err := newClient()
					if err != nil {
						return err
					}
					users, err := client.Users.Search(c.Context, api.UserSearch{
						UserID:     c.String("id"),
						TelegramID: c.String("telegram-id"),
						Username:   c.String("username"),
					})
					if err != nil {
						return err
					}
					return printJSON(users)
				},
			},
		},
	}
}

func payoutsCommand() *cli.Command {
	return &cli.Command{
		Name:  "payouts",
		Usage: "review and process referral payout requests",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list payout requests",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Usage: "pending, approved or rejected"},
					&cli.Int64Flag{Name: "user-id"},
					&cli.IntFlag{Name: "page"},
					&cli.IntFlag{Name: "limit"},
				},
				Action: func(c *cli.Context) error {
					client, err := newClient()
					if err != nil {
						return err
					}
					page, err := client.Referrals.PayoutRequests(c.Context, models.PayoutFilter{
						Status: models.PayoutStatus(c.String("status")),
						UserID: c.Int64("user-id"),
						Page:   c.Int("page"),
						Limit:  c.Int("limit"),
					})
					if err != nil {
						return err
					}
					return printJSON(page)
				},
			},
			{
				Name:      "process",
				Usage:     "approve or reject a payout request",
				ArgsUsage: "<request-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Required: true, Usage: "approved or rejected"},
					&cli.StringFlag{Name: "notes"},
				},
				Action: func(c *cli.Context) error {
					var id int64
					if _, err := fmt.Sscanf(c.Args().First(), "%d", &id); err != nil {
						return fmt.Errorf("request id is required")
					}
					client, err := newClient()
					if err != nil {
						return err
					}
					updated, err := client.Referrals.ProcessPayoutRequest(c.Context, id, models.ProcessPayoutInput{
						NewStatus:  models.PayoutStatus(c.String("status")),
						AdminNotes: c.String("notes"),
					})
					if err != nil {
						return err
					}
					return printJSON(updated)
				},
			},
		},
	}
}

func caseCommand() *cli.Command {
	return &cli.Command{
		Name:  "case",
		Usage: "manage loot-box cases",
		Subcommands: []*cli.Command{
			{
				Name:  "give",
				Usage: "grant cases to a user directly",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "user-id", Required: true},
					&cli.Int64Flag{Name: "case-id", Required: true},
					&cli.IntFlag{Name: "quantity", Value: 1},
				},
				Action: func(c *cli.Context) error {
					client, err := newClient()
					if err != nil {
						return err
					}
					err = client.Cases.Give(c.Context, models.GiveCaseInput{
						UserID:   c.Int64("user-id"),
						CaseID:   c.Int64("case-id"),
						Quantity: c.Int("quantity"),
					})
					if err != nil {
						return err
					}
					fmt.Println("OK")
					return nil
				},
			},
		},
	}
}

func raffleCommand() *cli.Command {
	return &cli.Command{
		Name:  "raffle",
		Usage: "inspect and drive the current raffle",
		Subcommands: []*cli.Command{
			{
				Name:  "current",
				Usage: "show the current raffle snapshot",
				Action: func(c *cli.Context) error {
					client, err := newClient()
					if err != nil {
						return err
					}
					current, err := client.Raffles.Current(c.Context)
					if err != nil {
						return err
					}
					return printJSON(current)
				},
			},
			{
				Name:  "complete",
				Usage: "draw the winner and close the current raffle",
				Action: func(c *cli.Context) error {
					client, err := newClient()
					if err != nil {
						return err
					}
					completed, err := client.Raffles.Complete(c.Context)
					if err != nil {
						return err
					}
					return printJSON(completed)
				},
			},
		},
	}
}
