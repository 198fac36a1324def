package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tourmate/tourmate/internal/api/middleware"
	"github.com/tourmate/tourmate/internal/api/request"
	"github.com/tourmate/tourmate/internal/api/response"
	"github.com/tourmate/tourmate/internal/services/account"
	"github.com/tourmate/tourmate/internal/services/leveling"
)

// AccountHandler handles account-related endpoints
type AccountHandler struct {
	accountService  *account.Service
	levelingService *leveling.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *account.Service, levelingService *leveling.Service) *AccountHandler {
	return &AccountHandler{
		accountService:  accountService,
		levelingService: levelingService,
	}
}

// Register handles POST /api/v1/accounts/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.accountService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}

// Login handles POST /api/v1/accounts/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.accountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/accounts/logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	h.accountService.InvalidateSession(session.Token)
	response.NoContent(w)
}

// GetMe handles GET /api/v1/accounts/me
func (h *AccountHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	acct, err := h.accountService.GetAccount(r.Context(), session.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Profile{
		Username: acct.Username,
		Level:    h.levelingService.Summarize(acct.CumulativeXP),
	})
}
