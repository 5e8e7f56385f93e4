package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskboard/internal/common"
)

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithMessage(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, map[string]string{"message": message})
}

// respondServerError maps faults no handler has a dedicated answer for.
// Storage write failures are distinguishable from other internal faults.
func respondServerError(w http.ResponseWriter, err error) {
	if errors.Is(err, common.ErrorStorage) {
		respondWithMessage(w, http.StatusInternalServerError, "Storage failure")
		return
	}
	respondWithMessage(w, http.StatusInternalServerError, "Internal server error")
}
