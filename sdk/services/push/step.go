// SPDX-FileCopyrightText: © 2025 Sigpush Authors
//
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"context"

	"github.com/sigpush/sigpush-cli-sdk/sdk/services/step"
)

const StepName = "sign-container-image-push"

// Prior-step result keys consumed and artifact keys produced by this step.
const (
	SignatureFilePathKey = "container-image-signature-file-path"
	SignatureNameKey     = "container-image-signature-name"
	SignatureURLKey      = "container-image-signature-url"
	SignatureMD5Key      = "container-image-signature-file-md5"
	SignatureSHA1Key     = "container-image-signature-file-sha1"
)

// RunStep runs the signature-push step against the prior stage's results.
//
// A missing prior result is a precondition failure: it yields a failed Result
// with a message naming the key, a nil error, and no hashing or network
// activity. An upload failure is fatal to the step and is returned as the
// error alongside the failed Result, so the calling framework can abort.
func (s *PushService) RunStep(ctx context.Context, req StepRequest) (*step.Result, error) {
	res := step.NewResult(StepName)

	filePath := req.PriorResults[SignatureFilePathKey]
	if filePath == "" {
		res.Fail("Missing " + SignatureFilePathKey)
		return res, nil
	}
	objectName := req.PriorResults[SignatureNameKey]
	if objectName == "" {
		res.Fail("Missing " + SignatureNameKey)
		return res, nil
	}

	out, err := s.Upload(ctx, UploadRequest{FilePath: filePath, ObjectName: objectName})
	if err != nil {
		res.Fail(err.Error())
		return res, err
	}

	res.AddArtifact(SignatureURLKey, out.URL)
	res.AddArtifact(SignatureMD5Key, out.MD5)
	res.AddArtifact(SignatureSHA1Key, out.SHA1)
	return res, nil
}
