package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wonderpark/parkpos/internal/core/domain"
	"github.com/wonderpark/parkpos/internal/core/ports"
)

type RegisterRequest struct {
	Username    string      `json:"username"`
	Password    string      `json:"password"`
	Role        domain.Role `json:"role"`
	Email       string      `json:"email"`
	Age         string      `json:"age"`
	Name        string      `json:"name"`
	Gender      string      `json:"gender"`
	PhoneNumber string      `json:"phone_number"`
}

type AccountService struct {
	accounts ports.AccountStore
	policy   domain.Policy
}

func NewAccountService(accounts ports.AccountStore, policy domain.Policy) *AccountService {
	return &AccountService{accounts: accounts, policy: policy}
}

func (s *AccountService) Register(ctx context.Context, req RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return domain.ErrMissingField
	}

	role := req.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if role != domain.RoleCustomer && role != domain.RoleAdmin {
		return domain.ErrMissingField
	}

	accounts, err := s.accounts.Load(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	if _, exists := accounts[req.Username]; exists {
		return domain.ErrDuplicateUsername
	}

	accounts[req.Username] = domain.AccountRecord{
		Username:    req.Username,
		Password:    req.Password,
		Role:        role,
		Email:       req.Email,
		Age:         req.Age,
		Status:      domain.AccountActive,
		Name:        req.Name,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
	}

	if err := s.accounts.Save(ctx, accounts); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}

	return nil
}

// Login checks the stored credentials and returns the account's role so the
// caller can route to the right dashboard.
func (s *AccountService) Login(ctx context.Context, username, password string) (domain.Role, error) {
	accounts, err := s.accounts.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load accounts: %w", err)
	}

	rec, ok := accounts[username]
	if !ok {
		return "", domain.ErrInvalidCredentials
	}

	acct := domain.Account{Username: rec.Username, Password: rec.Password}
	if !acct.Login(username, password) {
		return "", domain.ErrInvalidCredentials
	}

	return rec.Role, nil
}

func (s *AccountService) Deactivate(ctx context.Context, username string) error {
	accounts, err := s.accounts.Load(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	rec, ok := accounts[username]
	if !ok {
		return domain.ErrAccountNotFound
	}

	rec.Status = domain.AccountInactive
	accounts[username] = rec

	if err := s.accounts.Save(ctx, accounts); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}

	return nil
}

// RedeemPoints applies a loyalty redemption and returns the resulting
// balance. Over-redemption leaves the balance unchanged and, under the
// default policy, reports no error; callers check the returned balance.
func (s *AccountService) RedeemPoints(ctx context.Context, username string, points float64) (float64, error) {
	accounts, err := s.accounts.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load accounts: %w", err)
	}

	rec, ok := accounts[username]
	if !ok {
		return 0, domain.ErrAccountNotFound
	}

	customer := rec.Customer()
	if !customer.RedeemLoyaltyPoints(points) {
		if s.policy.StrictRedemption {
			return rec.LoyaltyPoints, domain.ErrInsufficientPoints
		}
		return rec.LoyaltyPoints, nil
	}

	rec.LoyaltyPoints = customer.LoyaltyPoints
	accounts[username] = rec

	if err := s.accounts.Save(ctx, accounts); err != nil {
		return 0, fmt.Errorf("save accounts: %w", err)
	}

	return rec.LoyaltyPoints, nil
}
