// File: services/customer/auth.go
package customer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"cyfairmaids/config"
	customerRepo "cyfairmaids/database/repository/customer"
	"cyfairmaids/models"
	"cyfairmaids/utils"
)

const tokenLifetime = 24 * time.Hour

var (
	// ErrEmailTaken is returned when registering an email that already has
	// an account (not just a guest record).
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrInvalidCredentials covers both unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthResult pairs a signed token with the authenticated customer.
type AuthResult struct {
	Token    string           `json:"token"`
	Customer *models.Customer `json:"customer"`
}

// CustomerService handles customer accounts and sign-in.
type CustomerService interface {
	Register(ctx context.Context, input *models.RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input *models.LoginInput) (*AuthResult, error)
	AdminLogin(ctx context.Context, input *models.LoginInput) (string, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
}

// DefaultCustomerService is the standard implementation over the customer
// repository. AuthCache tracks each customer's current token hash; a nil
// cache disables session supersession.
type DefaultCustomerService struct {
	Repo      customerRepo.CustomerRepository
	AuthCache *redis.Client
}

// NewDefaultCustomerService wires a customer service from its repository and
// the authorization cache.
func NewDefaultCustomerService(repo customerRepo.CustomerRepository, authCache *redis.Client) *DefaultCustomerService {
	return &DefaultCustomerService{Repo: repo, AuthCache: authCache}
}

// Register creates an account. A guest record left behind by an earlier
// booking is not upgraded here; a distinct account record would collide, so
// any existing record with a password blocks the email.
func (s *DefaultCustomerService) Register(ctx context.Context, input *models.RegisterInput) (*AuthResult, error) {
	logger := utils.GetLogger()

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing.PasswordHash != "" {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, customer); err != nil {
		logger.Error("Failed to create customer account", zap.Error(err))
		return nil, err
	}

	token, err := utils.GenerateToken(customer.ID, customer.Email, utils.RoleCustomer, tokenLifetime)
	if err != nil {
		return nil, err
	}
	s.primeSession(ctx, customer.ID, token)
	logger.Info("Customer registered", zap.String("customerID", customer.ID))
	return &AuthResult{Token: token, Customer: customer}, nil
}

// Login verifies credentials and issues a customer token.
func (s *DefaultCustomerService) Login(ctx context.Context, input *models.LoginInput) (*AuthResult, error) {
	customer, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil || customer.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(customer.ID, customer.Email, utils.RoleCustomer, tokenLifetime)
	if err != nil {
		return nil, err
	}
	s.primeSession(ctx, customer.ID, token)
	return &AuthResult{Token: token, Customer: customer}, nil
}

// primeSession makes the fresh token the customer's current session so any
// earlier token is rejected as superseded. Best effort: a cache outage must
// not fail a login.
func (s *DefaultCustomerService) primeSession(ctx context.Context, customerID, token string) {
	if err := utils.PrimeAuthSession(ctx, s.AuthCache, customerID, token); err != nil {
		utils.GetLogger().Warn("Failed to prime auth session", zap.Error(err))
	}
}

// AdminLogin checks the configured console credentials and issues an admin
// token. An empty configured password disables the console outright.
func (s *DefaultCustomerService) AdminLogin(ctx context.Context, input *models.LoginInput) (string, error) {
	cfg := config.AppConfig
	if cfg.AdminPassword == "" {
		return "", ErrInvalidCredentials
	}
	if !strings.EqualFold(input.Email, cfg.AdminEmail) || input.Password != cfg.AdminPassword {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken("admin", cfg.AdminEmail, utils.RoleAdmin, tokenLifetime)
}

func (s *DefaultCustomerService) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return s.Repo.GetByID(ctx, id)
}
