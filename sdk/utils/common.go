// SPDX-FileCopyrightText: © 2025 Sigpush Authors
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"log"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/ini.v1"

	"github.com/sigpush/sigpush-cli-sdk/sdk/config"
)

func getIniPath() string {
	iniPath, err := os.UserHomeDir()
	if err != nil {
		iniPath = "."
	}
	return iniPath + string(os.PathSeparator) + IniName
}

func LoadIni(createOnMissing bool) *ini.File {
	cfg, err := ini.Load(getIniPath())
	if err != nil {
		if !createOnMissing {
			log.Printf("Failed to read ini file: %v\n", err)
			os.Exit(1)
		}
		return ini.Empty()
	}
	return cfg
}

func SaveIni(cfg *ini.File) {
	if err := cfg.SaveTo(getIniPath()); err != nil {
		log.Printf("Failed to update ini file: %v\n", err)
		os.Exit(1)
	}
}

// ConfigFromViper materializes the SDK config from the bound environment, for
// CLI front ends. Services themselves never touch viper.
func ConfigFromViper() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			BaseURL:  viper.GetString(SigServerURL),
			Username: viper.GetString(SigServerUsername),
			Password: viper.GetString(SigServerPassword),
		},
		S3: config.S3Config{
			AccessKey:   viper.GetString("aws_access_key_id"),
			SecretKey:   viper.GetString("aws_secret_access_key"),
			AccessToken: viper.GetString("aws_session_token"),
			Region:      viper.GetString("aws_region"),
			EndpointURL: viper.GetString("aws_endpoint_url"),
		},
	}
}

// RequiredConfigKeys lists the viper keys that must be set before the push
// step can run; validation happens in the CLI before services are built.
func RequiredConfigKeys() []string {
	return []string{SigServerURL, SigServerUsername, SigServerPassword}
}

// MissingConfigKeys returns the required keys with no value bound.
func MissingConfigKeys() []string {
	var missing []string
	for _, k := range RequiredConfigKeys() {
		if viper.GetString(k) == "" {
			missing = append(missing, k)
		}
	}
	return missing
}
