package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

type policyReader interface {
	Get(ctx context.Context, scopeID string) (*domain.Policy, error)
}

type ledgerReader interface {
	Get(ctx context.Context, scopeID, subjectID string) (*domain.LedgerEntry, error)
}

// AdminHandler serves read-only operator endpoints for inspecting stored
// watchlist state. It is mounted on the operator port only.
type AdminHandler struct {
	policies policyReader
	ledger   ledgerReader
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(policies policyReader, ledger ledgerReader, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		policies: policies,
		ledger:   ledger,
		log:      logger.With("handler", "admin"),
	}
}

// PolicyView is the JSON form of a stored policy.
type PolicyView struct {
	ScopeID         string            `json:"scope_id"`
	AgeThreshold    float64           `json:"age_threshold"`
	AgeUnit         string            `json:"age_unit"`
	RejoinThreshold int               `json:"rejoin_threshold"`
	FieldOrder      []string          `json:"field_order"`
	AlertChannels   []string          `json:"alert_channels"`
	AlertEntities   []MentionableView `json:"alert_entities"`
}

// MentionableView is the JSON form of an alert entity.
type MentionableView struct {
	ID   string `json:"id"`
	Kind string `json:"kind,omitempty"`
}

// LedgerView is the JSON form of a subject's join counter.
type LedgerView struct {
	ScopeID     string `json:"scope_id"`
	SubjectID   string `json:"subject_id"`
	RejoinCount int    `json:"rejoin_count"`
}

// ScopePolicy returns the stored policy of a scope.
// GET /admin/scopes/{scope_id}/policy
func (h *AdminHandler) ScopePolicy(w http.ResponseWriter, r *http.Request) {
	scopeID := r.PathValue("scope_id")

	p, err := h.policies.Get(r.Context(), scopeID)
	if err != nil {
		h.fail(w, r, "get policy", err)
		return
	}

	entities := make([]MentionableView, len(p.AlertEntities))
	for i, m := range p.AlertEntities {
		entities[i] = MentionableView{ID: m.ID, Kind: string(m.Kind)}
	}
	writeJSON(w, http.StatusOK, PolicyView{
		ScopeID:         p.ScopeID,
		AgeThreshold:    p.AgeThreshold,
		AgeUnit:         p.AgeUnit.String(),
		RejoinThreshold: p.RejoinThreshold,
		FieldOrder:      p.FieldOrder.Strings(),
		AlertChannels:   p.AlertChannels,
		AlertEntities:   entities,
	})
}

// SubjectLedger returns a subject's join counter.
// GET /admin/scopes/{scope_id}/subjects/{subject_id}
func (h *AdminHandler) SubjectLedger(w http.ResponseWriter, r *http.Request) {
	e, err := h.ledger.Get(r.Context(), r.PathValue("scope_id"), r.PathValue("subject_id"))
	if err != nil {
		h.fail(w, r, "get ledger entry", err)
		return
	}
	writeJSON(w, http.StatusOK, LedgerView{
		ScopeID:     e.ScopeID,
		SubjectID:   e.SubjectID,
		RejoinCount: e.RejoinCount,
	})
}

func (h *AdminHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	h.log.ErrorContext(r.Context(), op, slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "internal server error")
}
