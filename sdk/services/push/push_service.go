// SPDX-FileCopyrightText: © 2025 Sigpush Authors
//
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"context"
	"errors"
	"net/http"

	"github.com/sigpush/sigpush-cli-sdk/sdk/config"
)

type PushService struct {
	http config.SignatureHTTP
	s3   *config.S3Client
}

func NewPushService(_ context.Context, conf config.Config) (*PushService, error) {
	if conf.Server.BaseURL == "" {
		return nil, errors.New("missing container-image-signature-server-url")
	}
	if conf.Server.Username == "" {
		return nil, errors.New("missing container-image-signature-server-username")
	}
	if conf.Server.Password == "" {
		return nil, errors.New("missing container-image-signature-server-password")
	}
	return &PushService{
		http: config.NewSignatureHTTP(nil, conf.Server),
	}, nil
}

// NewPushServiceWithClient lets callers inject the HTTP client, primarily for
// tests and for outer timeouts.
func NewPushServiceWithClient(ctx context.Context, conf config.Config, httpClient *http.Client) (*PushService, error) {
	svc, err := NewPushService(ctx, conf)
	if err != nil {
		return nil, err
	}
	svc.http = config.NewSignatureHTTP(httpClient, conf.Server)
	return svc, nil
}

// NewS3PushService builds a service that writes to an S3-compatible store;
// the HTTP server config is not required in this mode.
func NewS3PushService(ctx context.Context, conf config.Config) (*PushService, error) {
	s3c, err := config.NewS3Client(ctx, conf.S3)
	if err != nil {
		return nil, err
	}
	return &PushService{
		http: config.NewSignatureHTTP(nil, conf.Server),
		s3:   s3c,
	}, nil
}
