package goals

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chitieu-app/chitieu/pkg/api"
	"github.com/chitieu-app/chitieu/pkg/goalfund"
	"github.com/chitieu-app/chitieu/pkg/mapping"
	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/chitieu-app/chitieu/pkg/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GoalsHandler holds the dependencies for goal-related handlers.
type GoalsHandler struct {
	Service *goalfund.Service
}

// NewGoalsHandler creates a new GoalsHandler.
func NewGoalsHandler(service *goalfund.Service) *GoalsHandler {
	return &GoalsHandler{Service: service}
}

// CreateGoal handles the logic for creating a new shared goal.
func (h *GoalsHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userId, ok := callerId(w, r)
	if !ok {
		return
	}

	var newGoal api.NewGoal
	if err := json.NewDecoder(r.Body).Decode(&newGoal); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	goal, err := h.Service.CreateGoal(r.Context(), newGoal.Title, newGoal.TargetAmount, newGoal.Locked, userId, newGoal.OwnerName)
	if err != nil {
		writeServiceError(w, "Failed to create goal", err)
		return
	}

	writeJSON(w, http.StatusCreated, mapping.ToApiGoal(goal))
}

// ListGoals handles the logic for listing the caller's goals.
func (h *GoalsHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	userId, ok := callerId(w, r)
	if !ok {
		return
	}

	goals, err := h.Service.GoalsForUser(r.Context(), userId)
	if err != nil {
		writeServiceError(w, "Failed to list goals", err)
		return
	}

	apiGoals := make([]*api.Goal, len(goals))
	for i, g := range goals {
		apiGoals[i] = mapping.ToApiGoal(&g)
	}
	writeJSON(w, http.StatusOK, apiGoals)
}

// Contribute handles the logic for contributing to a goal.
func (h *GoalsHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	userId, ok := callerId(w, r)
	if !ok {
		return
	}
	goalId, ok := pathId(w, r, "goalId")
	if !ok {
		return
	}

	var contribution api.NewContribution
	if err := json.NewDecoder(r.Body).Decode(&contribution); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	goal, err := h.Service.Contribute(r.Context(), goalId, userId, contribution.Amount)
	if err != nil {
		writeServiceError(w, "Failed to record contribution", err)
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiGoal(goal))
}

// RequestWithdrawal handles the logic for opening a withdrawal request.
func (h *GoalsHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	userId, ok := callerId(w, r)
	if !ok {
		return
	}
	goalId, ok := pathId(w, r, "goalId")
	if !ok {
		return
	}

	var newWithdrawal api.NewWithdrawal
	if err := json.NewDecoder(r.Body).Decode(&newWithdrawal); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	req, err := h.Service.RequestWithdrawal(r.Context(), goalId, userId, newWithdrawal.Amount, newWithdrawal.Description)
	if err != nil {
		writeServiceError(w, "Failed to request withdrawal", err)
		return
	}

	writeJSON(w, http.StatusCreated, mapping.ToApiWithdrawalRequest(req))
}

// ListWithdrawals handles the logic for listing a goal's withdrawal requests.
func (h *GoalsHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	goalId, ok := pathId(w, r, "goalId")
	if !ok {
		return
	}

	reqs, err := h.Service.WithdrawalsForGoal(r.Context(), goalId)
	if err != nil {
		writeServiceError(w, "Failed to list withdrawal requests", err)
		return
	}

	apiReqs := make([]*api.WithdrawalRequest, len(reqs))
	for i, req := range reqs {
		apiReqs[i] = mapping.ToApiWithdrawalRequest(&req)
	}
	writeJSON(w, http.StatusOK, apiReqs)
}

// Approve handles the logic for recording an approval decision.
func (h *GoalsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userId, ok := callerId(w, r)
	if !ok {
		return
	}
	requestId, ok := pathId(w, r, "requestId")
	if !ok {
		return
	}

	var decision api.ApprovalDecision
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	req, err := h.Service.RecordApproval(r.Context(), requestId, userId, models.ApprovalStatus(decision.Decision))
	if err != nil {
		writeServiceError(w, "Failed to record approval", err)
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiWithdrawalRequest(req))
}

// Settlements handles the logic for computing a goal's settlement plan.
func (h *GoalsHandler) Settlements(w http.ResponseWriter, r *http.Request) {
	goalId, ok := pathId(w, r, "goalId")
	if !ok {
		return
	}

	settlements, err := h.Service.Settlements(r.Context(), goalId)
	if err != nil {
		writeServiceError(w, "Failed to calculate settlements", err)
		return
	}

	apiSettlements := make([]*api.Settlement, len(settlements))
	for i, s := range settlements {
		apiSettlements[i] = mapping.ToApiSettlement(&s)
	}
	writeJSON(w, http.StatusOK, apiSettlements)
}

// Invite handles the logic for inviting a user to a goal.
func (h *GoalsHandler) Invite(w http.ResponseWriter, r *http.Request) {
	userId, ok := callerId(w, r)
	if !ok {
		return
	}
	goalId, ok := pathId(w, r, "goalId")
	if !ok {
		return
	}

	var newInv api.NewInvitation
	if err := json.NewDecoder(r.Body).Decode(&newInv); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	invitedUserId, err := uuid.Parse(newInv.InvitedUserId)
	if err != nil {
		http.Error(w, "Invalid invited_user_id", http.StatusBadRequest)
		return
	}

	inv, err := h.Service.Invite(r.Context(), goalId, invitedUserId, userId, newInv.InvitedName, models.GoalRole(newInv.Role), newInv.TargetAmount, newInv.Message)
	if err != nil {
		writeServiceError(w, "Failed to create invitation", err)
		return
	}

	writeJSON(w, http.StatusCreated, mapping.ToApiInvitation(inv))
}

// AnswerInvitation handles accepting or declining an invitation.
func (h *GoalsHandler) AnswerInvitation(w http.ResponseWriter, r *http.Request) {
	userId, ok := callerId(w, r)
	if !ok {
		return
	}
	invitationId, ok := pathId(w, r, "invitationId")
	if !ok {
		return
	}

	var err error
	switch chi.URLParam(r, "answer") {
	case "accept":
		err = h.Service.AcceptInvitation(r.Context(), invitationId, userId)
	case "decline":
		err = h.Service.DeclineInvitation(r.Context(), invitationId, userId)
	default:
		http.Error(w, "Answer must be accept or decline", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeServiceError(w, "Failed to answer invitation", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListInvitations handles listing the caller's pending invitations.
func (h *GoalsHandler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	userId, ok := callerId(w, r)
	if !ok {
		return
	}

	invs, err := h.Service.PendingInvitations(r.Context(), userId)
	if err != nil {
		writeServiceError(w, "Failed to list invitations", err)
		return
	}

	apiInvs := make([]*api.Invitation, len(invs))
	for i, inv := range invs {
		apiInvs[i] = mapping.ToApiInvitation(&inv)
	}
	writeJSON(w, http.StatusOK, apiInvs)
}

// callerId reads the authenticated user from the X-User-Id header. Credential
// validation happens upstream of this service.
func callerId(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userId, err := uuid.Parse(r.Header.Get("X-User-Id"))
	if err != nil {
		http.Error(w, "Missing or invalid X-User-Id header", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userId, true
}

func pathId(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid %s", param), http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, context string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrGoalNotFound),
		errors.Is(err, storage.ErrRequestNotFound),
		errors.Is(err, storage.ErrInvitationNotFound),
		errors.Is(err, storage.ErrMemberNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrInsufficientFunds),
		errors.Is(err, goalfund.ErrNonPositiveAmount),
		errors.Is(err, goalfund.ErrInvalidDecision),
		errors.Is(err, goalfund.ErrRequestFinalized),
		errors.Is(err, goalfund.ErrInvitationNotPending),
		errors.Is(err, goalfund.ErrAlreadyInvited),
		errors.Is(err, goalfund.ErrAlreadyMember):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, goalfund.ErrNotInvitee):
		status = http.StatusForbidden
	case errors.Is(err, storage.ErrVersionConflict):
		status = http.StatusConflict
	}
	http.Error(w, fmt.Sprintf("%s: %v", context, err), status)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
