// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/knowledged/knowledge"
	"github.com/bitmark-inc/knowledged/storage"
	"github.com/bitmark-inc/knowledged/util"
	"github.com/bitmark-inc/knowledged/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publish-key", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "fingerprint", "fp":
		return false // defer processing until configuration is read

	case "records", "r":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--define=NAME=VALUE...] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)       - display this message\n\n")
		fmt.Printf("  version                    (v)       - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)     - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                         and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]          - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                         and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-key [DIR]      (publish) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                         and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)     - just run the program, same as no arguments\n")
		fmt.Printf("                                         for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)     - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)      - display the SHA3-256 fingerprint of the RPC certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  records [FILE]             (r)       - dump all stored records as JSON to stdout/file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	case "fingerprint", "fp":
		fingerprint, err := certificateFingerprint(options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
		if nil != err {
			exitwithstatus.Message("error: cannot decode certificate: %q  error: %s", options.ClientRPC.Certificate, err)
		}
		fmt.Printf("rpc fingerprint: %s\n", fingerprint)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage is open so these commands can read the database
func processDataCommand(log *logger.L, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "records", "r":
		fd := os.Stdout
		if len(arguments) > 0 && "" != arguments[0] && "-" != arguments[0] {
			f, err := os.Create(arguments[0])
			if nil != err {
				exitwithstatus.Message("error: creating: %q error: %s", arguments[0], err)
			}
			defer f.Close()
			fd = f
		}
		count, err := dumpRecords(fd, storage.NewTable(storage.Pool.Knowledge))
		if nil != err {
			exitwithstatus.Message("dump records error: %s", err)
		}
		log.Infof("dumped: %d records", count)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// the fingerprint of a PEM certificate file
func certificateFingerprint(certificateFile string, keyFile string) (util.FingerprintBytes, error) {
	certificate, err := ioutil.ReadFile(certificateFile)
	if nil != err {
		return util.FingerprintBytes{}, err
	}
	key, err := ioutil.ReadFile(keyFile)
	if nil != err {
		return util.FingerprintBytes{}, err
	}
	keypair, err := tls.X509KeyPair(certificate, key)
	if nil != err {
		return util.FingerprintBytes{}, err
	}
	return util.Fingerprint(keypair.Certificate[0]), nil
}

type recordDump struct {
	Key      string    `json:"key"`
	Category int32     `json:"category"`
	Owner    string    `json:"owner"`
	Payload  hexString `json:"payload"`
}

type hexString []byte

func (h hexString) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%x", []byte(h))), nil
}

type mapper interface {
	Map(f func(key []byte, value []byte) error) error
}

// write every record as one element of a JSON array
func dumpRecords(w io.Writer, table mapper) (int, error) {
	count := 0
	if _, err := fmt.Fprintf(w, "[\n"); nil != err {
		return 0, err
	}
	err := table.Map(func(key []byte, value []byte) error {
		record, err := knowledge.RecordFromBytes(value)
		if nil != err {
			return err
		}
		s, err := json.Marshal(recordDump{
			Key:      fmt.Sprintf("%x", key),
			Category: record.Category,
			Owner:    record.Owner.String(),
			Payload:  record.Payload,
		})
		if nil != err {
			return err
		}
		separator := ",\n"
		if 0 == count {
			separator = ""
		}
		count += 1
		_, err = fmt.Fprintf(w, "%s  %s", separator, s)
		return err
	})
	if nil != err {
		return count, err
	}
	_, err = fmt.Fprintf(w, "\n]\n")
	return count, err
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
