package service

import (
	"context"
	"strings"

	"shopadmin/internal/models"
	"shopadmin/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserPageSize is the fixed page size for admin user listings.
const UserPageSize = 10

// UserService manages user accounts: admin listing and creation, profile
// and password updates, deletion, and credential checks for login.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsersInput holds the admin user-list filters.
type ListUsersInput struct {
	FullName string
	Phone    string
	Email    string
	Page     int
}

// UserPage is one page of a filtered user listing.
type UserPage struct {
	Items []models.User `json:"items"`
	models.PageMeta
}

// CreateUserInput carries the fields for account creation.
type CreateUserInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Address  string
	Role     string
}

// UpdateProfileInput carries the mutable profile fields.
type UpdateProfileInput struct {
	UserID   uint
	FullName string
	Phone    string
	Address  string
	Avatar   string
}

// ChangePasswordInput carries an old/new password pair.
type ChangePasswordInput struct {
	UserID      uint
	OldPassword string
	NewPassword string
}

// AdminListUsers returns one page of users matching every supplied filter.
func (s *UserService) AdminListUsers(ctx context.Context, in ListUsersInput) (*UserPage, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * UserPageSize

	filter := repository.UserFilter{
		FullName: strings.TrimSpace(in.FullName),
		Phone:    strings.TrimSpace(in.Phone),
		Email:    strings.TrimSpace(in.Email),
	}
	items, total, err := s.userRepo.List(ctx, filter, UserPageSize, offset)
	if err != nil {
		return nil, err
	}

	return &UserPage{
		Items:    items,
		PageMeta: models.NewPageMeta(page, UserPageSize, total),
	}, nil
}

// GetUserByID returns the user with the given id.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CreateUser registers a new account. Emails are unique.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	var fields []models.FieldError
	if strings.TrimSpace(in.Email) == "" {
		fields = append(fields, models.FieldError{Field: "email", Message: "email là bắt buộc"})
	}
	if len(in.Password) < 6 {
		fields = append(fields, models.FieldError{Field: "password", Message: "mật khẩu phải có ít nhất 6 ký tự"})
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	if _, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, models.NewValidationError("Email đã tồn tại trong hệ thống!")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError("", err)
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Email:    in.Email,
		Password: string(hash),
		FullName: in.FullName,
		Phone:    in.Phone,
		Address:  in.Address,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, models.NewInternalError("", err)
	}
	return user, nil
}

// Authenticate verifies credentials and returns the account.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, models.NewUnauthorizedError("Email hoặc mật khẩu không đúng")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Email hoặc mật khẩu không đúng")
	}
	return user, nil
}

// UpdateProfile applies the supplied non-empty profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Address != "" {
		user.Address = in.Address
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the old password before storing the new hash. The
// current hash is read uncached; cached user copies do not carry it.
func (s *UserService) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	user, err := s.userRepo.GetWithPassword(ctx, in.UserID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.OldPassword)); err != nil {
		return models.NewValidationError("Mật khẩu cũ không đúng")
	}
	if len(in.NewPassword) < 6 {
		return models.NewValidationError("mật khẩu phải có ít nhất 6 ký tự")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError("", err)
	}
	return s.userRepo.UpdatePassword(ctx, in.UserID, string(hash))
}

// DeleteUser soft-deletes the account.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}
