package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ausawards/admin-api/internal/apperr"
	"github.com/ausawards/admin-api/internal/middleware"
	"github.com/ausawards/admin-api/internal/queue"
	"github.com/ausawards/admin-api/internal/service"
)

// SessionHandler exposes the session lifecycle endpoints. Events may be
// nil; audit publishing is best effort and never blocks a response.
type SessionHandler struct {
	Sessions *service.SessionService
	Events   *queue.Publisher
}

func NewSessionHandler(s *service.SessionService, events *queue.Publisher) *SessionHandler {
	return &SessionHandler{Sessions: s, Events: events}
}

// ----- DTOs (field names are part of the wire contract) -----

type logInRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

type logInResponse struct {
	SessionID     string `json:"sessionId"`
	SessionSecret string `json:"sessionSecret"`
	Token         string `json:"token"`
}

type refreshRequest struct {
	SessionID     string `json:"sessionId"`
	SessionSecret string `json:"sessionSecret"`
}

type refreshResponse struct {
	Token string `json:"token"`
}

// CreateSession handles POST /session: verify credentials, persist a
// session and return its id, the one-time secret and a token.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req logInRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrInvalidParameters
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Sessions.CreateSession(ctx, req.LoginID, req.Password)
	if err != nil {
		return err
	}

	h.publish(queue.SessionEvent{
		Type:      queue.EventSessionCreated,
		SessionID: res.SessionID,
		UserID:    res.UserID,
		LoginID:   req.LoginID,
		At:        time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, logInResponse{
		SessionID:     res.SessionID,
		SessionSecret: res.SessionSecret,
		Token:         res.Token,
	})
}

// RefreshToken handles POST /session/refresh: exchange a session id and
// secret for a fresh token. The session's own expiry is untouched.
func (h *SessionHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrInvalidParameters
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	token, err := h.Sessions.RefreshToken(ctx, req.SessionID, req.SessionSecret)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refreshResponse{Token: token})
}

// SignOut handles DELETE /session: revoke the session named in the
// caller's own token. Requires RequireAuth on the route.
func (h *SessionHandler) SignOut(c echo.Context) error {
	claims := middleware.CurrentClaims(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Sessions.SignOut(ctx, claims.SessionID); err != nil {
		return err
	}

	h.publish(queue.SessionEvent{
		Type:      queue.EventSessionRevoked,
		SessionID: claims.SessionID,
		UserID:    claims.Subject,
		LoginID:   claims.LoginID,
		At:        time.Now().UTC().Format(time.RFC3339),
	})

	return c.NoContent(http.StatusOK)
}

// publish forwards an audit event without tying it to the request
// lifetime.
func (h *SessionHandler) publish(ev queue.SessionEvent) {
	if h.Events == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Events.Publish(ctx, ev)
	}()
}
