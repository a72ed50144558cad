package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ausawards/admin-api/internal/apperr"
	"github.com/ausawards/admin-api/internal/model"
	"github.com/ausawards/admin-api/internal/service"
)

// UserHandler exposes admin user management. Creation is guarded by the
// createAdminUser permission at the route level.
type UserHandler struct {
	Users *service.UserService
}

func NewUserHandler(u *service.UserService) *UserHandler { return &UserHandler{Users: u} }

type createAdminRequest struct {
	LoginID  string   `json:"loginId"`
	Password string   `json:"password"`
	RoleIDs  []string `json:"roleIds"`
}

type userResponse struct {
	ID        string   `json:"id"`
	UserType  string   `json:"userType"`
	CompanyID *string  `json:"companyId"`
	LoginID   string   `json:"loginId"`
	RoleIDs   []string `json:"roleIds"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{
		ID:        u.ID,
		UserType:  u.UserType,
		CompanyID: u.CompanyID,
		LoginID:   u.LoginID,
		RoleIDs:   u.RoleIDs,
	}
}

// CreateAdmin handles POST /users/create/admin.
func (h *UserHandler) CreateAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrInvalidParameters
	}
	if req.LoginID == "" || req.Password == "" {
		return apperr.ErrInvalidParameters
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.CreateAdminUser(ctx, req.LoginID, req.Password, req.RoleIDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
