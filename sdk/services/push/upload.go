// SPDX-FileCopyrightText: © 2025 Sigpush Authors
//
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
)

/* ------------ logging helpers (stderr) ------------ */

func infof(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", a...)
}

// Upload publishes one signature file with a single authenticated HTTP PUT.
// The file is read fully into memory and both digests are computed before any
// network activity, so a missing or unreadable file never touches the server.
// There is no retry; callers wanting resilience re-invoke Upload themselves.
func (s *PushService) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	contents, err := os.ReadFile(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read signature file: %w", err)
	}
	md5Hex, sha1Hex := digests(contents)

	url := s.http.BuildObjectURL(req.ObjectName)
	infof("Uploading signature %s → %s", req.FilePath, url)

	if _, _, err := s.http.Put(ctx, url, contents, sha1Hex, md5Hex); err != nil {
		return nil, fmt.Errorf("unexpected error uploading signature file to %s: %w", url, err)
	}

	return &UploadResult{URL: url, MD5: md5Hex, SHA1: sha1Hex}, nil
}

// UploadS3 publishes one signature file to an S3-compatible store, returning
// the same result contract as Upload with an s3:// URL.
func (s *PushService) UploadS3(ctx context.Context, req S3UploadRequest) (*UploadResult, error) {
	if s.s3 == nil {
		return nil, errors.New("S3 backend not configured")
	}
	if req.Bucket == "" {
		return nil, errors.New("missing bucket")
	}

	contents, err := os.ReadFile(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read signature file: %w", err)
	}
	md5Hex, sha1Hex := digests(contents)

	url := "s3://" + req.Bucket + "/" + req.ObjectName
	infof("Uploading signature %s → %s", req.FilePath, url)

	if _, err := s.s3.UploadObject(ctx, req.Bucket, req.ObjectName, contents); err != nil {
		return nil, fmt.Errorf("unexpected error uploading signature file to %s: %w", url, err)
	}

	return &UploadResult{URL: url, MD5: md5Hex, SHA1: sha1Hex}, nil
}

// digests returns the lowercase hex MD5 and SHA-1 of contents. Both are
// transfer-integrity checks only, not trust anchors.
func digests(contents []byte) (md5Hex, sha1Hex string) {
	md5Sum := md5.Sum(contents)
	sha1Sum := sha1.Sum(contents)
	return hex.EncodeToString(md5Sum[:]), hex.EncodeToString(sha1Sum[:])
}
