package service

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"go-secadmin-ws/internal/model"
	"go-secadmin-ws/internal/repository"
	"go-secadmin-ws/pkg/jwt"
	"go-secadmin-ws/pkg/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Logout(userID uuid.UUID) error
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
	ForgotPassword(email string)
}

type LoginResponse struct {
	Token       string             `json:"token"`
	User        model.UserResponse `json:"user"`
	Role        string             `json:"role"`
	Permissions []string           `json:"permissions"`
}

type TokenValidationResponse struct {
	User        model.UserResponse `json:"user"`
	Role        string             `json:"role"`
	Permissions []string           `json:"permissions"`
}

type authService struct {
	userRepo     repository.UserRepository
	templateRepo repository.EmailTemplateRepository
	mail         mailer.Mailer
}

func NewAuthService(userRepo repository.UserRepository, templateRepo repository.EmailTemplateRepository, mail mailer.Mailer) AuthService {
	return &authService{
		userRepo:     userRepo,
		templateRepo: templateRepo,
		mail:         mail,
	}
}

// Login matches the email exactly against active accounts. Any non-empty
// password is accepted; the stored hash is not consulted (see SetPassword).
// Unknown email and inactive account both collapse into
// ErrInvalidCredentials so the response does not reveal which one happened.
func (s *authService) Login(email, password string) (*LoginResponse, error) {
	if password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive() {
		return nil, ErrInvalidCredentials
	}

	// A fresh token version retires every previously issued token,
	// making re-login an unconditional session overwrite.
	newTokenVersion := uuid.New().String()
	if err := s.userRepo.UpdateTokenVersion(user.ID, newTokenVersion); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, user.RoleCode, newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:       token,
		User:        user.ToResponse(),
		Role:        user.RoleCode,
		Permissions: model.PermissionTokens(user.RoleCode),
	}, nil
}

// Logout bumps the token version; outstanding tokens stop validating. There
// is nothing else to tear down.
func (s *authService) Logout(userID uuid.UUID) error {
	return s.userRepo.UpdateTokenVersion(userID, uuid.New().String())
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !user.IsActive() {
		return nil, ErrInvalidCredentials
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, errors.New("session ended (signed in elsewhere or signed out)")
	}

	return &TokenValidationResponse{
		User:        user.ToResponse(),
		Role:        user.RoleCode,
		Permissions: model.PermissionTokens(user.RoleCode),
	}, nil
}

// ForgotPassword renders the stored reset template and mails it. It reports
// nothing to the caller: the endpoint answers identically whether or not the
// address exists.
func (s *authService) ForgotPassword(email string) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil || !user.IsActive() {
		return
	}

	tpl, err := s.templateRepo.FindByName(model.TemplatePasswordReset)
	if err != nil {
		log.Printf("forgot-password: template %q missing: %v", model.TemplatePasswordReset, err)
		return
	}

	subject, body := tpl.Render(map[string]string{
		"name":  user.Name,
		"email": user.Email,
	})
	if err := s.mail.Send(user.Email, subject, body); err != nil {
		log.Printf("forgot-password: send to %s failed: %v", user.Email, err)
	}
}
