// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/knowledged/account"
	"github.com/bitmark-inc/knowledged/command/knowledge-cli/configuration"
)

type metadata struct {
	file     string
	network  string
	identity *configuration.Identity
	key      *account.PrivateKey
	connect  string
	verbose  bool
	e        io.Writer
	w        io.Writer
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
	app.Name = "knowledge-cli"
	app.Usage = "store and search knowledge records on a knowledged"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "testing",
			Usage: " connect to `NETWORK` [bitmark|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `FILE` [default: $XDG_CONFIG_HOME/knowledge-cli/NETWORK-identity.yaml]",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: " override the identity's knowledged `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "create a new identity file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " identity description `STRING`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:   "identity",
			Usage:  "display the current identity",
			Action: runIdentity,
		},
		{
			Name:   "info",
			Usage:  "display knowledged status",
			Action: runInfo,
		},
		{
			Name:      "insert",
			Usage:     "store a payload",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "+payload `STRING`",
				},
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: "+payload as `HEX`",
				},
				cli.IntFlag{
					Name:  "category, C",
					Value: 0,
					Usage: " category `NUMBER`",
				},
			},
			Action: runInsert,
		},
		{
			Name:      "search",
			Usage:     "find own payloads in a category containing a pattern",
			ArgsUsage: "\n   (empty pattern matches all)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "pattern, p",
					Value: "",
					Usage: " pattern `STRING`",
				},
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: " pattern as `HEX`",
				},
				cli.IntFlag{
					Name:  "category, C",
					Value: 0,
					Usage: " category `NUMBER`",
				},
			},
			Action: runSearch,
		},
		{
			Name:   "list",
			Usage:  "list every stored payload",
			Action: runList,
		},
		{
			Name:  "version",
			Usage: "display knowledge-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = before
	return app
}

// select network and identity file, then read the identity
func before(c *cli.Context) error {

	e := c.App.ErrWriter
	w := c.App.Writer
	verbose := c.GlobalBool("verbose")

	command := c.Args().Get(0)
	if "version" == command || "help" == command || "" == command {
		return nil
	}

	network, err := normaliseNetwork(c.GlobalString("network"))
	if nil != err {
		return err
	}

	file := c.GlobalString("identity")
	if "" == file {
		file, err = defaultIdentityFile(c.App.Name, network)
		if nil != err {
			return err
		}
	}

	if verbose {
		fmt.Fprintf(e, "identity file: %q\n", file)
	}

	m := &metadata{
		file:    file,
		network: network,
		connect: c.GlobalString("connect"),
		verbose: verbose,
		e:       e,
		w:       w,
	}
	c.App.Metadata["config"] = m

	// generate creates the file
	if "generate" == command {
		return nil
	}

	identity, err := configuration.Load(file)
	if nil != err {
		return err
	}
	if identity.Network != network {
		return fmt.Errorf("identity network: %q does not match: %q", identity.Network, network)
	}

	key, err := identity.Key()
	if nil != err {
		return err
	}

	m.identity = identity
	m.key = key
	if "" == m.connect {
		m.connect = identity.Connect
	}

	return nil
}

func normaliseNetwork(network string) (string, error) {
	switch network {
	case "bitmark", "live":
		return "bitmark", nil
	case "testing", "test":
		return "testing", nil
	case "local", "regression":
		return "local", nil
	default:
		return "", fmt.Errorf("network: %q can only be bitmark/testing/local", network)
	}
}

func defaultIdentityFile(name string, network string) (string, error) {
	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
	}
	return filepath.Join(p, name, network+"-identity.yaml"), nil
}
