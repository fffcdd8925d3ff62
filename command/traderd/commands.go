// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/nftszn/traderd/util"
)

// setup command handler
//
// commands that run before the configuration file is read; they only
// create local files
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-cert", "cert":
		directory := "."
		if len(arguments) >= 1 && "" != arguments[0] {
			directory = arguments[0]
		}
		certificateFileName := filepath.Join(directory, defaultCertificateFile)
		privateKeyFileName := filepath.Join(directory, defaultKeyFile)

		extraHosts := arguments[1:]
		err := makeSelfSignedCertificate("rpc", certificateFileName, privateKeyFileName, 0 != len(extraHosts), extraHosts)
		if nil != err {
			fmt.Printf("generate certificate: %q  error: %s\n", certificateFileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated certificate: %q  private key: %q\n", certificateFileName, privateKeyFileName)

	case "fingerprint", "fingerprints":
		certificateFileName := defaultCertificateFile
		if len(arguments) >= 1 && "" != arguments[0] {
			certificateFileName = arguments[0]
		}
		keyPair, err := tls.LoadX509KeyPair(certificateFileName, strings.TrimSuffix(certificateFileName, ".crt")+".key")
		if nil != err {
			fmt.Printf("certificate: %q  error: %s\n", certificateFileName, err)
			exitwithstatus.Exit(1)
		}
		fingerprint := util.Fingerprint(keyPair.Certificate[0])
		fmt.Printf("SHA3-256 fingerprint: %x\n", fingerprint)

	case "version":
		fmt.Println(version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [command]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                         (h)       - display this message\n\n")
		fmt.Printf("  version                      (v)       - display version\n\n")
		fmt.Printf("  gen-cert [DIR [HOSTS…]]      (cert)    - create self signed %q and %q\n", defaultCertificateFile, defaultKeyFile)
		fmt.Printf("  fingerprint [CERTIFICATE]              - display the certificate fingerprint clients pin\n")
		fmt.Printf("\n")

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %q\n", command)
		fmt.Fprintf(os.Stderr, "run: %s help\n", program)
		exitwithstatus.Exit(1)
	}
	return true
}
