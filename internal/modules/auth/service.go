package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nilinki/internal/domain"
	jwtsvc "nilinki/internal/pkg/jwt"
	"nilinki/internal/repository"
)

type Service struct {
	db    *gorm.DB
	users *repository.UserRepository
	jwt   *jwtsvc.Service
}

func NewService(db *gorm.DB, users *repository.UserRepository, jwt *jwtsvc.Service) *Service {
	return &Service{db: db, users: users, jwt: jwt}
}

// Register creates an account and, for band accounts, the band it owns.
// User and band are written in one transaction so a failed band insert
// never leaves an ownerless band account behind.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	role := domain.UserRole(req.Role)
	if role == domain.RoleBand {
		if strings.TrimSpace(req.BandName) == "" ||
			strings.TrimSpace(req.Genre) == "" ||
			strings.TrimSpace(req.Location) == "" {
			return nil, ErrBandDetailsRequired
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)

		taken, err := users.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}

		if err := users.Create(ctx, user); err != nil {
			return err
		}

		if role == domain.RoleBand {
			band := &domain.Band{
				OwnerID:  user.ID,
				Name:     strings.TrimSpace(req.BandName),
				Genre:    strings.TrimSpace(req.Genre),
				Location: strings.TrimSpace(req.Location),
			}
			if err := repository.NewBandRepository(tx).Create(ctx, band); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResponse{Token: token, User: user}, nil
}

// Login checks credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResponse{Token: token, User: user}, nil
}

// Me loads the authenticated user's profile.
func (s *Service) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
