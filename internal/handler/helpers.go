package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/security"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/util"
)

const maxJSONBody = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		util.HandleError(w, "invalid request body", http.StatusBadRequest)
		return err
	}
	return nil
}

// operator : audit name of the authenticated caller
func operator(r *http.Request) string {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		return "unknown"
	}
	return claims.Operator()
}
