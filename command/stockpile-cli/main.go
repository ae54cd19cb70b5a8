// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/stockpiled/chain"
)

type metadata struct {
	connect string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "stockpile-cli"
	app.Usage = "create and inspect fundraising projects, pools and sources"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	keyFlag := cli.StringFlag{
		Name:   "key, k",
		Value:  "",
		Usage:  "*payer private `KEY` in base58",
		EnvVar: "STOCKPILE_KEY",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Testing,
			Usage: " accounts belong to `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " stockpiled RPC `HOST:PORT`",
			EnvVar: "STOCKPILE_CONNECT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a new private key for the selected network",
			Action: runGenerate,
		},
		{
			Name:      "address",
			Usage:     "show the record address for a project, pool or source",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "project, p",
					Usage: "+project `ID`",
				},
				cli.Uint64Flag{
					Name:  "pool, l",
					Usage: "+pool `ID`",
				},
				cli.StringFlag{
					Name:  "source, s",
					Usage: "+source `NAME`, also needs --source-pool, --amount and --payer",
				},
				cli.Uint64Flag{
					Name:  "source-pool",
					Usage: " pool `ID` of the source",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Usage: " source `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "payer",
					Usage: " source payer `ACCOUNT`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "create-project",
			Usage:     "create a new project",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				keyFlag,
				cli.Uint64Flag{
					Name:  "id",
					Usage: "*project `ID`",
				},
				cli.StringFlag{
					Name:  "name",
					Usage: "*project `NAME`",
				},
				cli.StringSliceFlag{
					Name:  "admin",
					Usage: "*admin `ACCOUNT`, repeat for more",
				},
				cli.StringFlag{
					Name:  "beneficiary",
					Usage: "*beneficiary `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "goal",
					Usage: "*funding goal `AMOUNT`",
				},
			},
			Action: runCreateProject,
		},
		{
			Name:      "create-pool",
			Usage:     "create a new pool",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				keyFlag,
				cli.Uint64Flag{
					Name:  "id",
					Usage: "*pool `ID`",
				},
				cli.StringFlag{
					Name:  "name",
					Usage: "*pool `NAME`",
				},
				cli.Uint64Flag{
					Name:  "start",
					Usage: "*window start `SECONDS` since the epoch",
				},
				cli.Uint64Flag{
					Name:  "end",
					Usage: "*window end `SECONDS` since the epoch",
				},
				cli.StringSliceFlag{
					Name:  "admin",
					Usage: "*admin `ACCOUNT`, repeat for more",
				},
				cli.StringFlag{
					Name:  "access",
					Value: "open",
					Usage: " who may add projects `ACCESS` [open|manual]",
				},
			},
			Action: runCreatePool,
		},
		{
			Name:      "create-source",
			Usage:     "create a new funding source",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				keyFlag,
				cli.StringFlag{
					Name:  "name",
					Usage: "*source `NAME`",
				},
				cli.Uint64Flag{
					Name:  "pool",
					Usage: "*pool `ID`",
				},
				cli.Uint64Flag{
					Name:  "amount",
					Usage: "*`AMOUNT` offered",
				},
			},
			Action: runCreateSource,
		},
		{
			Name:      "join-pool",
			Usage:     "add a project to a pool",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				keyFlag,
				cli.Uint64Flag{
					Name:  "project",
					Usage: "*project `ID`",
				},
				cli.Uint64Flag{
					Name:  "pool",
					Usage: "*pool `ID`",
				},
				cli.StringFlag{
					Name:   "authority-key",
					Usage:  " pool admin private `KEY` to countersign, defaults to the payer",
					EnvVar: "STOCKPILE_AUTHORITY_KEY",
				},
			},
			Action: runJoinPool,
		},
		{
			Name:      "project",
			Usage:     "display a project",
			ArgsUsage: "ID",
			Action:    runProject,
		},
		{
			Name:      "pool",
			Usage:     "display a pool and its project shares",
			ArgsUsage: "ID",
			Action:    runPool,
		},
		{
			Name:      "source",
			Usage:     "display a source",
			ArgsUsage: "ADDRESS",
			Action:    runSource,
		},
		{
			Name:   "info",
			Usage:  "display stockpiled status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display stockpile-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		network := c.GlobalString("network")
		switch network {
		case "bitmark", "live":
			network = chain.Live
		case "testing", "test":
			network = chain.Testing
		case "local", "regression":
			network = chain.Local
		default:
			return fmt.Errorf("network: %q can only be live/testing/local", network)
		}

		verbose := c.GlobalBool("verbose")
		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "network: %s\n", network)
		}

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			testnet: chain.IsTesting(network),
			verbose: verbose,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
