package service

import (
	"context"
	"fmt"
	"time"

	"tiendaml-pc5/internal/models"
	"tiendaml-pc5/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users     *repository.UserRepository
	jwtSecret []byte
}

type RegisterUserData struct {
	Username string
	Email    string
	Password string
	Role     string

	FullName string
	Age      *int
	Gender   string
	Location string

	PreferredCategories []string
	PreferredBrands     []string
	PriceRangeMin       *float64
	PriceRangeMax       *float64
}

type UpdateUserData struct {
	Email    *string
	Role     *string
	Password *string

	FullName *string
	Location *string

	PreferredCategories *[]string
	PreferredBrands     *[]string
	PriceRangeMin       *float64
	PriceRangeMax       *float64
}

func NewAuthService(users *repository.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(secret)}
}

// ================== REGISTER & LOGIN ==================

// Register crea un usuario nuevo. El role viene del body, pero solo se
// permite "user" o "admin".
func (s *AuthService) Register(ctx context.Context, data RegisterUserData) (*models.UserDoc, error) {
	existing, err := s.users.FindByEmail(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email ya registrado", ErrInvalidArgument)
	}

	nextID, err := s.users.GetNextUserID(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := data.Role
	if role == "" {
		role = "user"
	}
	if role != "user" && role != "admin" {
		return nil, fmt.Errorf("%w: role inválido (user|admin)", ErrInvalidArgument)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	u := &models.UserDoc{
		UserID:       nextID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,

		FullName: data.FullName,
		Age:      data.Age,
		Gender:   data.Gender,
		Location: data.Location,

		PreferredCategories: data.PreferredCategories,
		PreferredBrands:     data.PreferredBrands,
		PriceRangeMin:       data.PriceRangeMin,
		PriceRangeMax:       data.PriceRangeMax,

		IsActive: true,
	}

	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDoc, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.UserID,
		"role": u.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	sToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return sToken, u, nil
}

// ================== UPDATE & LIST ==================

// UpdateUser actualiza campos opcionales de un usuario.
func (s *AuthService) UpdateUser(ctx context.Context, userID int, data UpdateUserData) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	update := bson.M{}

	if data.Email != nil {
		if *data.Email == "" {
			return fmt.Errorf("%w: email vacío", ErrInvalidArgument)
		}
		existing, err := s.users.FindByEmail(ctx, *data.Email)
		if err != nil {
			return err
		}
		if existing != nil && existing.UserID != userID {
			return fmt.Errorf("%w: email en uso", ErrInvalidArgument)
		}
		update["email"] = *data.Email
	}

	if data.Role != nil {
		if *data.Role != "user" && *data.Role != "admin" {
			return fmt.Errorf("%w: role inválido (user|admin)", ErrInvalidArgument)
		}
		update["role"] = *data.Role
	}

	if data.Password != nil {
		if *data.Password == "" {
			return fmt.Errorf("%w: password vacío", ErrInvalidArgument)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*data.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		update["passwordHash"] = string(hash)
	}

	if data.FullName != nil {
		update["fullName"] = *data.FullName
	}
	if data.Location != nil {
		update["location"] = *data.Location
	}
	if data.PreferredCategories != nil {
		update["preferredCategories"] = *data.PreferredCategories
	}
	if data.PreferredBrands != nil {
		update["preferredBrands"] = *data.PreferredBrands
	}
	if data.PriceRangeMin != nil {
		update["priceRangeMin"] = *data.PriceRangeMin
	}
	if data.PriceRangeMax != nil {
		update["priceRangeMax"] = *data.PriceRangeMax
	}

	if len(update) == 0 {
		return fmt.Errorf("%w: nada que actualizar", ErrInvalidArgument)
	}

	update["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	return s.users.UpdateByID(ctx, userID, update)
}

func (s *AuthService) ListUsers(ctx context.Context, limit, offset int) ([]models.UserDoc, error) {
	return s.users.List(ctx, limit, offset)
}

func (s *AuthService) GetUserByID(ctx context.Context, userID int) (*models.UserDoc, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	return u, nil
}
