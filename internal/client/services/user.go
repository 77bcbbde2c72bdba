package services

import (
	"context"
	"net/http"

	"github.com/Fyandono/project-maintenance-system/internal/client/gateway"
	"github.com/Fyandono/project-maintenance-system/internal/client/liststate"
	"github.com/Fyandono/project-maintenance-system/internal/client/models"
	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

const userPath = "/x/user"

// UserInput is the create/edit payload. Password is only sent on create.
type UserInput struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password,omitempty"`
	UnitID   string `json:"unit_id"`
	RoleID   string `json:"role_id"`
}

type UserService interface {
	List(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[models.User], error)
	Create(ctx context.Context, in UserInput) (models.User, error)
	Edit(ctx context.Context, in UserInput) (models.User, error)
}

type userService struct {
	api gateway.Doer
}

func NewUserService(api gateway.Doer) UserService {
	return &userService{api: api}
}

func (s *userService) List(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[models.User], error) {
	return fetchList[models.User](ctx, s.api, userPath, criteria, page, pageSize)
}

// Create goes through the registration endpoint, not /x/user.
func (s *userService) Create(ctx context.Context, in UserInput) (models.User, error) {
	return sendJSON[models.User](ctx, s.api, http.MethodPost, "/x/register", in)
}

func (s *userService) Edit(ctx context.Context, in UserInput) (models.User, error) {
	return sendJSON[models.User](ctx, s.api, http.MethodPut, "/x/edit-user", in)
}

func NewUserList(svc UserService, pageSize int, log logging.Logger) *liststate.Machine[models.User] {
	return liststate.New(liststate.Config[models.User]{
		Name:            "user",
		DefaultPageSize: pageSize,
		Fetch:           svc.List,
		Log:             log,
	})
}
