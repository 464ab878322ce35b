// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/danielhkuo/sorting-hat/cliparse"
	"github.com/danielhkuo/sorting-hat/middleware"
	"github.com/danielhkuo/sorting-hat/models"
)

// qrSize is the PNG edge length in pixels, enough for a projector slide.
const qrSize = 256

type QRHandler struct {
	cfg cliparse.Config
}

func NewQRHandler(cfg cliparse.Config) *QRHandler {
	return &QRHandler{cfg: cfg}
}

// GenerateQR handles GET /api/generate-qr
// Returns a QR code deep-linking to the assignment page, as a PNG data URI.
func (h *QRHandler) GenerateQR(w http.ResponseWriter, r *http.Request) {
	url := h.AssignURL()

	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		slog.Error("failed to encode QR code", "error", err, "url", url)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GenerateQRResponse{
		Success: true,
		QRCode:  "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		URL:     url,
	})
}

// AssignURL returns the absolute link the QR code points at.
func (h *QRHandler) AssignURL() string {
	return strings.TrimRight(h.cfg.BaseURL, "/") + "/assign"
}
