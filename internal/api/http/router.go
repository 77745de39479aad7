package http

import (
	"net/http"

	"medequip-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter wires the JSON API. Administrative mutations sit behind the
// admin bearer token; everything the ward terminals use is open.
func NewRouter(
	tokens security.TokenManager,
	authHandler *AuthHandler,
	equipmentHandler *EquipmentHandler,
	loanHandler *LoanHandler,
	reportHandler *ReportHandler,
) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	api.HandleFunc("/equipment", equipmentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id}", equipmentHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/equipment", adminOnly(tokens, equipmentHandler.Add)).Methods(http.MethodPost)
	api.HandleFunc("/equipment/{id}/quantity", adminOnly(tokens, equipmentHandler.SetQuantity)).Methods(http.MethodPut)

	api.HandleFunc("/loans", loanHandler.Issue).Methods(http.MethodPost)
	api.HandleFunc("/loans", loanHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/loans", adminOnly(tokens, loanHandler.PurgeAll)).Methods(http.MethodDelete)
	api.HandleFunc("/loans/{id}", loanHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/loans/{id}/returns", loanHandler.ApplyReturn).Methods(http.MethodPost)
	api.HandleFunc("/loans/{id}/returns", loanHandler.ListReturns).Methods(http.MethodGet)
	api.HandleFunc("/scan", loanHandler.Scan).Methods(http.MethodPost)

	api.HandleFunc("/reports/summary", reportHandler.Summary).Methods(http.MethodGet)

	return r
}
