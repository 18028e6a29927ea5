package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/galleryd-dev/galleryd/internal/config"
	"github.com/galleryd-dev/galleryd/internal/logger"
	"github.com/galleryd-dev/galleryd/internal/service"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	account service.AccountService
	post    service.PostService
	health  HealthChecker
	cfg     *config.Config
}

func New(account service.AccountService, post service.PostService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{account, post, health, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
