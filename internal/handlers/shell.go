package handlers

import (
	"bytes"
	"net/http"

	"advanced-ai/internal/web"
)

type ShellHandler struct {
	data web.ShellData
}

func NewShellHandler(data web.ShellData) *ShellHandler {
	return &ShellHandler{data: data}
}

// Serve returns the HTML shell that boots the browser client.
func (h *ShellHandler) Serve(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := web.RenderShell(&buf, h.data); err != nil {
		log.WithError(err).Error("Failed to render shell")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
