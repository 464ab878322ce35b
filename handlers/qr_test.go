// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/sorting-hat/cliparse"
	"github.com/danielhkuo/sorting-hat/models"
	"github.com/danielhkuo/sorting-hat/testutil"
)

func TestGenerateQR(t *testing.T) {
	handler := NewQRHandler(testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/api/generate-qr", nil, nil)
	w := httptest.NewRecorder()
	handler.GenerateQR(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.GenerateQRResponse
	testutil.AssertJSON(t, w, &resp)

	if !resp.Success {
		t.Error("expected success true")
	}
	if resp.URL != "http://localhost:3000/assign" {
		t.Errorf("expected assignment deep link, got %q", resp.URL)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(resp.QRCode, prefix) {
		t.Fatalf("expected PNG data URI, got %q", resp.QRCode[:min(len(resp.QRCode), 40)])
	}

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(resp.QRCode, prefix))
	if err != nil {
		t.Fatalf("QR payload is not valid base64: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("decoded payload is not a PNG")
	}
}

func TestAssignURL_TrailingSlash(t *testing.T) {
	cfg := cliparse.Config{BaseURL: "https://party.example.com/"}
	handler := NewQRHandler(cfg)

	if got := handler.AssignURL(); got != "https://party.example.com/assign" {
		t.Errorf("expected trailing slash collapsed, got %q", got)
	}
}
