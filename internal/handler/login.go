package handler

import (
	"net/http"
)

type loginRequest struct {
	Identifier string `validate:"required" json:"identifier"`
	Name       string `json:"name"`
}

type loginResponse struct {
	Status     string `json:"status"`
	Identifier string `json:"identifier"`
}

// Login upserts the account for a caller-supplied identifier. The name may
// be empty; an identifier seen before logs in without touching the stored
// name.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := loadAndValidateRequestBody(r, &body); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	account, err := h.account.Login(body.Identifier, body.Name)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, loginResponse{Status: "success", Identifier: account.Identifier})
}
