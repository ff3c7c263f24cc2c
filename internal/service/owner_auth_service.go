package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"groomstation/internal/db"
	"groomstation/internal/repository"
)

type OwnerAuthService interface {
	Login(email, password string) (string, error)
	CreateOwner(email, name, password string) error
}

type ownerAuthService struct {
	repo      repository.OwnerRepository
	jwtSecret string
}

func NewOwnerAuthService(repo repository.OwnerRepository, jwtSecret string) OwnerAuthService {
	return &ownerAuthService{repo: repo, jwtSecret: jwtSecret}
}

func (s *ownerAuthService) Login(email, password string) (string, error) {
	owner, err := s.repo.GetOwnerByEmail(email)
	if err != nil {
		return "", err
	}
	if owner == nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	claims := jwt.MapClaims{
		"user_id": owner.ID,
		"role":    db.RoleOwner,
		"email":   owner.Email,
		"exp":     time.Now().Add(time.Hour * 1).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *ownerAuthService) CreateOwner(email, name, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.CreateOwner(&db.Owner{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	})
}
