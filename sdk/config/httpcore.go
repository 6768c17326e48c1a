// SPDX-FileCopyrightText: © 2025 Sigpush Authors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	HeaderChecksumSha1 = "X-Checksum-Sha1"
	HeaderChecksumMD5  = "X-Checksum-MD5"
)

type SignatureHTTP interface {
	BuildObjectURL(objectName string) string
	Put(ctx context.Context, url string, body []byte, sha1Hex, md5Hex string) ([]byte, int, error)
}

type sigHTTP struct {
	httpClient   *http.Client
	serverConfig ServerConfig
}

func NewSignatureHTTP(httpClient *http.Client, serverConfig ServerConfig) SignatureHTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &sigHTTP{httpClient: httpClient, serverConfig: serverConfig}
}

// BuildObjectURL joins the server base URL and the object name. Exactly one
// trailing "/" is removed from the base; the object name is appended as-is,
// with no escaping. A base ending in "//" therefore yields a double slash in
// the result, which keeps URLs stable for callers relying on that.
func (sigHTTP *sigHTTP) BuildObjectURL(objectName string) string {
	base := strings.TrimSuffix(sigHTTP.serverConfig.BaseURL, "/")
	return base + "/" + objectName
}

// Put writes body to url in a single shot. The SHA-1 and MD5 hex digests of
// the body travel as X-Checksum headers so the server can verify the transfer.
func (sigHTTP *sigHTTP) Put(ctx context.Context, url string, body []byte, sha1Hex, md5Hex string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set(HeaderChecksumSha1, sha1Hex)
	req.Header.Set(HeaderChecksumMD5, md5Hex)

	if user := sigHTTP.serverConfig.Username; user != "" {
		req.SetBasicAuth(user, sigHTTP.serverConfig.Password)
	}

	resp, err := sigHTTP.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	b, rerr := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return b, resp.StatusCode, fmt.Errorf("signature server responded with: %s", resp.Status)
	}
	return b, resp.StatusCode, rerr
}
