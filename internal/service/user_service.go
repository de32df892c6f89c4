package service

import (
	"errors"

	"go-secadmin-ws/internal/model"
	"go-secadmin-ws/internal/repository"
	"go-secadmin-ws/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailExists = errors.New("email already exists")
)

type UserService interface {
	CreateUser(req *CreateUserRequest, creatorEmail string) (*model.User, error)
	UpdateUser(userID uuid.UUID, req *UpdateUserRequest, updaterEmail string) (*model.User, error)
	DeleteUser(userID uuid.UUID) error
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
	UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*model.User, error)
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin manager user"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"` // optional
	Name     string  `json:"name" validate:"required"`
	Role     string  `json:"role" validate:"required,oneof=admin manager user"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *userService) CreateUser(req *CreateUserRequest, creatorEmail string) (*model.User, error) {
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	if _, err := s.roleRepo.FindByCode(req.Role); err != nil {
		return nil, errors.New("role not found")
	}

	status := req.Status
	if status == "" {
		status = model.StatusActive
	}

	user := &model.User{
		Email:    req.Email,
		Name:     req.Name,
		RoleCode: req.Role,
		Status:   status,
		Theme:    model.ThemeLight,
	}
	user.CreatedBy = creatorEmail
	user.UpdatedBy = creatorEmail

	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(userID uuid.UUID, req *UpdateUserRequest, updaterEmail string) (*model.User, error) {
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(req.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailExists
		}
	}

	if _, err := s.roleRepo.FindByCode(req.Role); err != nil {
		return nil, errors.New("role not found")
	}

	user.Email = req.Email
	user.Name = req.Name
	user.RoleCode = req.Role
	if req.Status != nil {
		user.Status = *req.Status
	}
	user.UpdatedBy = updaterEmail

	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.userRepo.FindByID(userID)
}

func (s *userService) DeleteUser(userID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(userID)
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	response := user.ToResponse()
	return &response, nil
}

// UpdateProfile lets the signed-in user change their own display name and
// theme preference without touching role or status.
func (s *userService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*model.User, error) {
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user.Name = req.Name
	user.Theme = req.Theme
	user.UpdatedBy = user.Email

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
