// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/knowledged/command/knowledge-cli/configuration"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identity, err := configuration.Generate(m.network, m.connect, c.String("description"))
	if nil != err {
		return err
	}

	if err := identity.Save(m.file); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "saved identity: %s\n", m.file)
	}

	printJson(m.w, identity)
	return nil
}

func runIdentity(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	printJson(m.w, m.identity)
	return nil
}
