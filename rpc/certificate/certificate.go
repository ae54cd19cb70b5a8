// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS configuration for the RPC listener
package certificate

import (
	"crypto/tls"
	"io/ioutil"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/stockpiled/util"
)

// Get - verify a PEM certificate and key pair and return the TLS
// configuration with the certificate fingerprint
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, util.FingerprintBytes, error) {
	var fingerprint util.FingerprintBytes

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fingerprint, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fingerprint = util.Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fingerprint, nil
}

// ReadFiles - load the PEM certificate and key
func ReadFiles(certificateFileName string, keyFileName string) (string, string, error) {
	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		return "", "", err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		return "", "", err
	}
	return string(certificate), string(key), nil
}
