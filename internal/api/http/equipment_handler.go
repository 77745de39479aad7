package http

import (
	"encoding/json"
	"net/http"

	"medequip-backend/internal/domain"
	"medequip-backend/internal/service"

	"github.com/gorilla/mux"
)

type EquipmentHandler struct {
	inventorySvc service.InventoryService
}

func NewEquipmentHandler(inventorySvc service.InventoryService) *EquipmentHandler {
	return &EquipmentHandler{inventorySvc: inventorySvc}
}

type addEquipmentRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int32  `json:"quantity"`
	Unit     string `json:"unit"`
}

func (h *EquipmentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.ID == "" || req.Name == "" || req.Category == "" || req.Unit == "" {
		badRequest(w, "id, name, category and unit are required")
		return
	}

	kind := &domain.EquipmentKind{
		ID:       req.ID,
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	}
	if err := h.inventorySvc.AddEquipment(r.Context(), kind); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, kind)
}

type setQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

func (h *EquipmentHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.inventorySvc.SetQuantity(r.Context(), id, req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, err := h.inventorySvc.GetEquipment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, kind)
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	kinds, err := h.inventorySvc.ListEquipment(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if kinds == nil {
		kinds = []domain.EquipmentKind{}
	}
	writeJSON(w, http.StatusOK, kinds)
}
