package account

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/av954416-web/javadrive/internal/audit"
	"github.com/av954416-web/javadrive/internal/domain/account"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/models"
	"github.com/av954416-web/javadrive/internal/validators"
)

type TokenIssuer interface {
	Issue(userID uuid.UUID, role identity.Role) (string, error)
}

type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// ======================================================
// REGISTER
// ======================================================

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	// Owner asks for a fleet account; admins are only ever promoted.
	Owner bool
}

type Register struct {
	repo        account.Repository
	tokens      TokenIssuer
	audit       *audit.Dispatcher
	checkDomain func(ctx context.Context, email string) error
}

func NewRegister(repo account.Repository, tokens TokenIssuer, audit *audit.Dispatcher) *Register {
	return &Register{
		repo:   repo,
		tokens: tokens,
		audit:  audit,
		checkDomain: func(ctx context.Context, email string) error {
			return validators.CheckEmailDomain(ctx, net.DefaultResolver, email)
		},
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := uc.checkDomain(ctx, email); err != nil {
		if errors.Is(err, validators.ErrEmailMalformed) {
			return nil, httperr.ErrBusiness("invalid_email")
		}
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	taken, err := uc.repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("email_already_exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := identity.RoleUser
	if in.Owner {
		role = identity.RoleOwner
	}

	user := &models.User{
		Email:        email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PasswordHash: string(hashed),
		Role:         string(role),
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user.ID, role)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": role},
	})

	return &Session{User: user, Token: token}, nil
}

// ======================================================
// LOGIN
// ======================================================

type Login struct {
	repo   account.Repository
	tokens TokenIssuer
}

func NewLogin(repo account.Repository, tokens TokenIssuer) *Login {
	return &Login{repo: repo, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*Session, error) {
	user, err := uc.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if httperr.IsNotFound(err) {
		return nil, httperr.ErrUnauthorized("invalid_credentials")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrUnauthorized("invalid_credentials")
	}

	token, err := uc.tokens.Issue(user.ID, identity.Role(user.Role))
	if err != nil {
		return nil, err
	}

	return &Session{User: user, Token: token}, nil
}

// ======================================================
// ME
// ======================================================

type Me struct {
	repo account.Repository
}

func NewMe(repo account.Repository) *Me {
	return &Me{repo: repo}
}

func (uc *Me) Execute(ctx context.Context, p identity.Principal) (*models.User, error) {
	return uc.repo.GetUser(ctx, p.UserID)
}

// ======================================================
// ROLE
// ======================================================

type SetRole struct {
	repo  account.Repository
	audit *audit.Dispatcher
}

func NewSetRole(repo account.Repository, audit *audit.Dispatcher) *SetRole {
	return &SetRole{repo: repo, audit: audit}
}

func (uc *SetRole) Execute(
	ctx context.Context,
	p identity.Principal,
	userID uuid.UUID,
	role string,
) (*models.User, error) {

	if !p.IsAdmin() {
		return nil, httperr.ErrForbidden("admin_role_required")
	}

	r := identity.Role(role)
	if !r.Valid() {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	// An admin cannot lock the last seat behind them.
	if userID == p.UserID && r != identity.RoleAdmin {
		return nil, httperr.ErrBusiness("cannot_demote_self")
	}

	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	from := user.Role

	if err := uc.repo.UpdateUserRole(ctx, userID, string(r)); err != nil {
		return nil, err
	}
	user.Role = string(r)

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "user_role_changed",
		Entity:   "user",
		EntityID: &userID,
		Metadata: map[string]any{"from": from, "to": r},
	})

	return user, nil
}
