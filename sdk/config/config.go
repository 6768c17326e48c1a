// SPDX-FileCopyrightText: © 2025 Sigpush Authors
//
// SPDX-License-Identifier: Apache-2.0

package config

// Config passed to the SDK by the caller; services hold no ambient state.
type Config struct {
	Server ServerConfig
	S3     S3Config
}

// ServerConfig identifies the signature storage server and the basic-auth
// credentials used to write to it. Credentials arrive already resolved.
type ServerConfig struct {
	BaseURL  string
	Username string
	Password string
}

type S3Config struct {
	AccessKey   string
	SecretKey   string
	AccessToken string
	Region      string
	EndpointURL string
}
