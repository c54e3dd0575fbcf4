package domain

import (
	"fmt"
	"strings"
)

type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountInactive AccountStatus = "Inactive"
)

type Role string

const (
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
)

// Account carries the credential and status shared by customers and admins.
// Customer and Admin embed it by value; there is no shared mutable base.
type Account struct {
	Username string
	Password string
	Email    string
	Age      string
	Status   AccountStatus
}

// Login is a plain equality check against the stored credentials. Any
// non-match must be treated as unauthenticated by the caller.
func (a *Account) Login(username, password string) bool {
	return a.Username == username && a.Password == password
}

// Deactivate is a one-way transition; accounts are never hard-deleted.
func (a *Account) Deactivate() {
	a.Status = AccountInactive
}

type Purchase struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

type Customer struct {
	Account
	Name            string
	Gender          string
	PhoneNumber     string
	CreditCardInfo  string
	LoyaltyPoints   float64
	PurchaseHistory []Purchase
}

func (c *Customer) AddPurchase(p Purchase) {
	c.PurchaseHistory = append(c.PurchaseHistory, p)
}

// RedeemLoyaltyPoints reports whether the redemption applied. Redeeming more
// than the balance leaves it untouched.
func (c *Customer) RedeemLoyaltyPoints(points float64) bool {
	if points > c.LoyaltyPoints {
		return false
	}
	c.LoyaltyPoints -= points
	return true
}

func (c *Customer) OrderHistory() string {
	lines := make([]string, 0, len(c.PurchaseHistory))
	for _, p := range c.PurchaseHistory {
		lines = append(lines, fmt.Sprintf("%s: $%.2f", p.Item, p.Price))
	}
	return strings.Join(lines, "\n")
}

type Admin struct {
	Account
	AccountsAccessed int
	Permissions      []string
	Role             string
	Department       string
	ClearanceLevel   int
	SuperAdmin       bool
}

func (a *Admin) GenerateReport() string {
	super := "No"
	if a.SuperAdmin {
		super = "Yes"
	}
	return fmt.Sprintf(
		"Admin Role: %s\nDepartment: %s\nAccounts Accessed: %d\nSuper Admin: %s",
		a.Role, a.Department, a.AccountsAccessed, super,
	)
}

// AccountRecord is the flat shape the account store persists, keyed by
// username.
type AccountRecord struct {
	Username      string
	Password      string
	Role          Role
	Email         string
	Age           string
	Status        AccountStatus
	Name          string
	Gender        string
	PhoneNumber   string
	LoyaltyPoints float64
	History       []Purchase
}

// Customer rehydrates the domain view of a customer record.
func (r AccountRecord) Customer() *Customer {
	return &Customer{
		Account: Account{
			Username: r.Username,
			Password: r.Password,
			Email:    r.Email,
			Age:      r.Age,
			Status:   r.Status,
		},
		Name:            r.Name,
		Gender:          r.Gender,
		PhoneNumber:     r.PhoneNumber,
		LoyaltyPoints:   r.LoyaltyPoints,
		PurchaseHistory: r.History,
	}
}
