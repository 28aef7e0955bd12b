package service

import (
	"context"
	"errors"

	"estoque/internal/dto"
	"estoque/internal/model"
	"estoque/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	// Registrar creates an account, rejecting usernames that already exist
	// (exact, case-sensitive match).
	Registrar(ctx context.Context, req dto.RegistrarRequest) (*dto.UsuarioResponse, error)
	// Login verifies the credentials and returns the matched user. Unknown
	// username and wrong password yield the same error.
	Login(ctx context.Context, req dto.LoginRequest) (*model.Usuario, error)
}

type authService struct {
	repo       repository.UsuarioRepository
	bcryptCost int
}

func NewAuthService(repo repository.UsuarioRepository, bcryptCost int) AuthService {
	return &authService{repo: repo, bcryptCost: bcryptCost}
}

func (s *authService) Registrar(ctx context.Context, req dto.RegistrarRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsuarioDuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UsuarioResponse{ID: user.ID, Username: user.Username}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*model.Usuario, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	return user, nil
}
