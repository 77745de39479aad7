package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"medequip-backend/internal/codec"
	"medequip-backend/internal/domain"
	"medequip-backend/internal/logger"
	"medequip-backend/internal/service"

	"github.com/gorilla/mux"
)

type LoanHandler struct {
	loanSvc service.LoanService
	codec   codec.Codec // nil when no codec service is configured
}

func NewLoanHandler(loanSvc service.LoanService, imageCodec codec.Codec) *LoanHandler {
	return &LoanHandler{loanSvc: loanSvc, codec: imageCodec}
}

type issueRequest struct {
	EquipmentID  string `json:"equipment_id"`
	BorrowerName string `json:"borrower_name"`
	BorrowerDept string `json:"borrower_dept"`
	Quantity     int32  `json:"quantity"`
	Notes        string `json:"notes"`
}

type issueResponse struct {
	Loan       *domain.Loan `json:"loan"`
	ClaimCheck string       `json:"claim_check"`
	CodeImage  string       `json:"code_image,omitempty"` // base64 PNG
}

func (h *LoanHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.EquipmentID == "" || req.BorrowerName == "" || req.BorrowerDept == "" {
		badRequest(w, "equipment_id, borrower_name and borrower_dept are required")
		return
	}

	loan, payload, err := h.loanSvc.Issue(r.Context(), req.EquipmentID, req.BorrowerName, req.BorrowerDept, req.Quantity, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := issueResponse{Loan: loan, ClaimCheck: payload}
	if h.codec != nil && payload != "" {
		image, err := h.codec.Encode(r.Context(), payload)
		if err != nil {
			// The loan is committed; the label can be re-rendered later.
			logger.Error("Codec encode failed", "loan_id", loan.ID, "error", err)
		} else {
			resp.CodeImage = base64.StdEncoding.EncodeToString(image)
		}
	}
	writeJSON(w, http.StatusCreated, resp)
}

type applyReturnRequest struct {
	Quantity int32  `json:"quantity"`
	Notes    string `json:"notes"`
}

func (h *LoanHandler) ApplyReturn(w http.ResponseWriter, r *http.Request) {
	var req applyReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	loan, err := h.loanSvc.ApplyReturn(r.Context(), mux.Vars(r)["id"], req.Quantity, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	loan, err := h.loanSvc.Lookup(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanSvc.ListLoans(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if loans == nil {
		loans = []domain.Loan{}
	}
	writeJSON(w, http.StatusOK, loans)
}

func (h *LoanHandler) ListReturns(w http.ResponseWriter, r *http.Request) {
	events, err := h.loanSvc.ListReturns(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if events == nil {
		events = []domain.ReturnEvent{}
	}
	writeJSON(w, http.StatusOK, events)
}

type scanRequest struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"` // base64
}

type scanResponse struct {
	ClaimCheck *domain.ClaimCheck `json:"claim_check"`
	Loan       *domain.Loan       `json:"loan"`
}

// Scan accepts either the raw text from a phone scanner or an uploaded code
// image, recovers the claim-check payload and resolves the loan. Only the
// loan id in the payload matters; the rest is informational.
func (h *LoanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	text := req.Text
	if text == "" && req.Image != "" {
		if h.codec == nil {
			badRequest(w, "image scanning is not configured")
			return
		}
		image, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			badRequest(w, "image is not valid base64")
			return
		}
		text, err = h.codec.Decode(r.Context(), image)
		if err != nil {
			writeError(w, err)
			return
		}
	}
	if text == "" {
		badRequest(w, "no readable code")
		return
	}

	check, err := domain.ParseClaimCheck(text)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	loan, err := h.loanSvc.Lookup(r.Context(), check.LoanID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scanResponse{ClaimCheck: check, Loan: loan})
}

func (h *LoanHandler) PurgeAll(w http.ResponseWriter, r *http.Request) {
	if err := h.loanSvc.PurgeAll(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
