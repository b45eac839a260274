// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/knowledged/command/knowledge-cli/rpccalls"
)

type insertResult struct {
	Account  string `json:"account"`
	Category int32  `json:"category"`
	Length   int    `json:"length"`
}

type payloadsResult struct {
	Count    int      `json:"count"`
	Payloads []string `json:"payloads"`
}

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payload, err := textOrHex(c.String("payload"), c.String("hex"), "payload")
	if nil != err {
		return err
	}
	if 0 == len(payload) {
		return fmt.Errorf("payload is required")
	}
	category, err := categoryFlag(c)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Insert(payload, category)
	if nil != err {
		return err
	}

	printJson(m.w, insertResult{
		Account:  m.key.Account().String(),
		Category: category,
		Length:   reply.Length,
	})
	return nil
}

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	pattern, err := textOrHex(c.String("pattern"), c.String("hex"), "pattern")
	if nil != err {
		return err
	}
	category, err := categoryFlag(c)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	payloads, err := client.Search(pattern, category)
	if nil != err {
		return err
	}

	printJson(m.w, toResult(payloads))
	return nil
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	payloads, err := client.List()
	if nil != err {
		return err
	}

	printJson(m.w, toResult(payloads))
	return nil
}

// only one of text or hex may be given
func textOrHex(text string, hexText string, name string) ([]byte, error) {
	if "" != text && "" != hexText {
		return nil, fmt.Errorf("only one of %s or hex may be given", name)
	}
	if "" != hexText {
		return hex.DecodeString(hexText)
	}
	return []byte(text), nil
}

func categoryFlag(c *cli.Context) (int32, error) {
	category := c.Int("category")
	if category < math.MinInt32 || category > math.MaxInt32 {
		return 0, fmt.Errorf("category: %d out of range", category)
	}
	return int32(category), nil
}

// payloads shown as text, or hex when not printable
func toResult(payloads [][]byte) payloadsResult {
	result := payloadsResult{
		Count:    len(payloads),
		Payloads: make([]string, len(payloads)),
	}
	for i, p := range payloads {
		if isPrintable(p) {
			result.Payloads[i] = string(p)
		} else {
			result.Payloads[i] = "0x" + hex.EncodeToString(p)
		}
	}
	return result
}

func isPrintable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
