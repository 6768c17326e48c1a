// SPDX-FileCopyrightText: © 2025 Sigpush Authors
//
// SPDX-License-Identifier: Apache-2.0

package push_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sigpush/sigpush-cli-sdk/sdk/config"
	"github.com/sigpush/sigpush-cli-sdk/sdk/services/push"
)

func TestRunStepMissingPriorResults(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	conf := config.Config{Server: config.ServerConfig{
		BaseURL:  srv.URL,
		Username: "u",
		Password: "p",
	}}
	svc := newService(t, conf, srv.Client())

	cases := []struct {
		name    string
		prior   map[string]string
		wantMsg string
	}{
		{
			name:    "no file path",
			prior:   map[string]string{push.SignatureNameKey: "demo/signature-1"},
			wantMsg: "Missing container-image-signature-file-path",
		},
		{
			name:    "no signature name",
			prior:   map[string]string{push.SignatureFilePathKey: "/tmp/whatever"},
			wantMsg: "Missing container-image-signature-name",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.RunStep(context.Background(), push.StepRequest{PriorResults: tc.prior})
			if err != nil {
				t.Fatalf("precondition failures must not surface as errors: %v", err)
			}
			if res.Success {
				t.Fatal("expected failed result")
			}
			if res.Message != tc.wantMsg {
				t.Fatalf("message: got %q, want %q", res.Message, tc.wantMsg)
			}
			if len(res.Artifacts) != 0 {
				t.Fatalf("failed step must not carry artifacts: %v", res.Artifacts)
			}
		})
	}

	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("no network activity expected, got %d calls", calls)
	}
}

func TestRunStepSuccessArtifacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	conf := config.Config{Server: config.ServerConfig{
		BaseURL:  srv.URL + "/sigs",
		Username: "u",
		Password: "p",
	}}
	svc := newService(t, conf, srv.Client())

	filePath := writeSignatureFile(t, "hello")
	res, err := svc.RunStep(context.Background(), push.StepRequest{PriorResults: map[string]string{
		push.SignatureFilePathKey: filePath,
		push.SignatureNameKey:     "demo@sha256=deadbeef/signature-1",
	}})
	if err != nil {
		t.Fatalf("RunStep failed: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, got message %q", res.Message)
	}

	wantURL := srv.URL + "/sigs/demo@sha256=deadbeef/signature-1"
	if got := res.Artifact(push.SignatureURLKey); got != wantURL {
		t.Fatalf("url artifact: got %q, want %q", got, wantURL)
	}
	if got := res.Artifact(push.SignatureMD5Key); got != helloMD5 {
		t.Fatalf("md5 artifact: got %q, want %q", got, helloMD5)
	}
	if got := res.Artifact(push.SignatureSHA1Key); got != helloSHA1 {
		t.Fatalf("sha1 artifact: got %q, want %q", got, helloSHA1)
	}
}

func TestRunStepUploadFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	conf := config.Config{Server: config.ServerConfig{
		BaseURL:  srv.URL,
		Username: "u",
		Password: "p",
	}}
	svc := newService(t, conf, srv.Client())

	filePath := writeSignatureFile(t, "hello")
	res, err := svc.RunStep(context.Background(), push.StepRequest{PriorResults: map[string]string{
		push.SignatureFilePathKey: filePath,
		push.SignatureNameKey:     "demo/signature-1",
	}})
	if err == nil {
		t.Fatal("transport failure must surface as an error")
	}
	if res == nil || res.Success {
		t.Fatal("expected failed result alongside the error")
	}
}
