// SPDX-FileCopyrightText: © 2025 Sigpush Authors
//
// SPDX-License-Identifier: Apache-2.0

package utils

const (
	IniName            = ".sigpush.ini"
	IniSource          = "ini_source"
	CurrentEnvironment = "current_environment"
	UpdatedEnvKey      = "updated_environment"

	// Viper keys for the signature server and the step runtime. The env names
	// bound to them live on the Config struct tags in viper.go.
	SigServerURL      = "container_image_signature_server_url"
	SigServerUsername = "container_image_signature_server_username"
	SigServerPassword = "container_image_signature_server_password"
	ResultsFile       = "results_file"
	SigBackend        = "signature_backend"
	S3Bucket          = "s3_bucket"
)

// Supported signature storage backends.
const (
	BackendHTTP = "http"
	BackendS3   = "s3"
)
