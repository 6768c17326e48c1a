// SPDX-FileCopyrightText: © 2025 Sigpush Authors
//
// SPDX-License-Identifier: Apache-2.0

package push

// UploadRequest describes one signature file to publish. FilePath must point
// at a readable local file; ObjectName is used verbatim as the remote path.
type UploadRequest struct {
	FilePath   string
	ObjectName string
}

// UploadResult carries the canonical storage URL and the content digests the
// transfer was verified against. Produced only on a fully successful upload.
type UploadResult struct {
	URL  string `json:"url"  yaml:"url"`
	MD5  string `json:"md5"  yaml:"md5"`
	SHA1 string `json:"sha1" yaml:"sha1"`
}

// S3UploadRequest targets an S3-compatible signature store instead of the
// HTTP server. The object lands under Bucket/ObjectName.
type S3UploadRequest struct {
	Bucket     string
	FilePath   string
	ObjectName string
}

// StepRequest feeds RunStep with the results of the signing stage.
type StepRequest struct {
	// Prior-step results, keyed by artifact name. RunStep reads
	// SignatureFilePathKey and SignatureNameKey from here.
	PriorResults map[string]string
}
