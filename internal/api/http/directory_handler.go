package http

import (
	"net/http"
	"strconv"

	"lendify-backend/internal/service"
)

type DirectoryHandler struct {
	directorySvc service.DirectoryService
}

func NewDirectoryHandler(directorySvc service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directorySvc: directorySvc}
}

func (h *DirectoryHandler) GetTools(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if q.Get("lat") == "" || q.Get("lng") == "" || latErr != nil || lngErr != nil {
		writeClientError(w, http.StatusBadRequest, "Latitude and longitude are required")
		return
	}

	tools, err := h.directorySvc.NearbyTools(r.Context(), lat, lng)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tools": tools})
}

func (h *DirectoryHandler) MyTools(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.URL.Query().Get("userID"))
	if err != nil || userID <= 0 {
		writeClientError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	tools, checkouts, err := h.directorySvc.MyTools(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tools":     tools,
		"checkouts": checkouts,
	})
}
