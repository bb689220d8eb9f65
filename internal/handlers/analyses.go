package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/biasbuster/api/internal/models"
	"github.com/biasbuster/api/internal/store"
	"github.com/biasbuster/api/internal/utils"
)

type AnalysisHandler struct {
	Analyses *store.AnalysisStore
}

func NewAnalysisHandler(analyses *store.AnalysisStore) *AnalysisHandler {
	return &AnalysisHandler{Analyses: analyses}
}

type analysisCreateReq struct {
	SourceText string          `json:"source_text"`
	Result     json.RawMessage `json:"result"`
	Sources    json.RawMessage `json:"sources"`
}

type feedbackReq struct {
	Vote string `json:"vote"`
}

// ---------------------- CREATE ----------------------

func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(utils.CtxUserKey).(*models.User)

	var req analysisCreateReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.SourceText == "" || len(req.Result) == 0 || len(req.Sources) == 0 {
		utils.Detail(w, http.StatusUnprocessableEntity, "source_text, result and sources required")
		return
	}

	analysis, err := h.Analyses.Create(r.Context(), user.ID, req.SourceText, req.Result, req.Sources)
	if err != nil {
		utils.Detail(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusOK, analysis)
}

// ---------------------- LIST ----------------------

func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(utils.CtxUserKey).(*models.User)

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	analyses, err := h.Analyses.ListByOwner(r.Context(), user.ID, skip, limit)
	if err != nil {
		utils.Detail(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusOK, analyses)
}

// ---------------------- FEEDBACK ----------------------

func (h *AnalysisHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(utils.CtxUserKey).(*models.User)
	analysisID := chi.URLParam(r, "id")

	var req feedbackReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Vote == "" {
		utils.Detail(w, http.StatusUnprocessableEntity, "vote required")
		return
	}

	feedback, err := h.Analyses.CreateFeedback(r.Context(), user.ID, analysisID, req.Vote)
	if errors.Is(err, store.ErrNotFound) {
		utils.Detail(w, http.StatusNotFound, "Analysis not found")
		return
	}
	if err != nil {
		utils.Detail(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusOK, feedback)
}
