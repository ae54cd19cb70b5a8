// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/stockpiled/address"
	"github.com/bitmark-inc/stockpiled/ledger"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
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

	case "start", "run":
		return false // continue processing

	case "project", "pool", "source", "counts":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

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
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  project ID                          - print a stored project as JSON\n")
		fmt.Printf("  pool ID                             - print a stored pool and its shares as JSON\n")
		fmt.Printf("  source ADDRESS                      - print a stored source as JSON\n")
		fmt.Printf("  counts                              - print the number of each kind of record\n")
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
		err := printJson(os.Stdout, options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage pools are open so these commands can read the stored records
func processDataCommand(log *logger.L, arguments []string, l ledger.Ledger) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	log.Infof("data command: %s %q", command, arguments)

	var result interface{}

	switch command {

	case "start", "run":
		return false // continue processing

	case "project":
		id := parseId(arguments)
		a, err := address.ForProject(id)
		if nil != err {
			exitwithstatus.Message("project address error: %s", err)
		}
		result, err = l.Project(a)
		if nil != err {
			exitwithstatus.Message("project: %d  error: %s", id, err)
		}

	case "pool":
		id := parseId(arguments)
		a, err := address.ForPool(id)
		if nil != err {
			exitwithstatus.Message("pool address error: %s", err)
		}
		result, err = l.Pool(a)
		if nil != err {
			exitwithstatus.Message("pool: %d  error: %s", id, err)
		}

	case "source":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing source address argument")
		}
		a, err := address.FromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in source address: %s", err)
		}
		result, err = l.Source(a)
		if nil != err {
			exitwithstatus.Message("source: %s  error: %s", a, err)
		}

	case "counts":
		result = l.Counts()

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}

	if err := printJson(os.Stdout, result); nil != err {
		exitwithstatus.Message("JSON error: %s", err)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func parseId(arguments []string) uint64 {
	if len(arguments) < 1 {
		exitwithstatus.Message("missing id argument")
	}
	n, err := strconv.ParseUint(arguments[0], 10, 64)
	if nil != err {
		exitwithstatus.Message("error in id: %s", err)
	}
	return n
}

// get the filename with directory prefix
func getFilenameWithDirectory(arguments []string, name string) string {
	directory := "."
	if len(arguments) >= 1 {
		directory = arguments[0]
	}
	return filepath.Join(directory, name)
}

func printJson(handle *os.File, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}
