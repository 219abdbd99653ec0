// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/what2eat/internal/menu"
	"github.com/tomtom215/what2eat/internal/models"
)

// Steps returns the questionnaire definition.
//
// @Summary List questionnaire steps
// @Description Returns every step in order with its options, multi-select and optional flags
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.StepList}
// @Router /steps [get]
func (h *Handler) Steps(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	respondOK(w, http.StatusOK, models.StepList{
		Steps: menu.Steps(),
		Total: menu.StepCount(),
	}, start)
}

// Menus returns the full catalog.
//
// @Summary List menu items
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.MenuList}
// @Router /menus [get]
func (h *Handler) Menus(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	respondOK(w, http.StatusOK, models.MenuList{
		Version: h.catalog.Version(),
		Count:   h.catalog.Len(),
		Items:   h.catalog.Items(),
	}, start)
}

// MenuByID returns one catalog item with its share card.
//
// @Summary Get a menu item
// @Tags Catalog
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.APIResponse{data=models.MenuDetail}
// @Failure 404 {object} models.APIResponse "Menu item not found"
// @Router /menus/{id} [get]
func (h *Handler) MenuByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	it, ok := h.catalog.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, CodeNotFound, "Menu item not found", nil)
		return
	}
	respondOK(w, http.StatusOK, models.MenuDetail{
		Item:  it,
		Share: menu.NewShareCard(&it, it.Description),
	}, start)
}
