package models

import "time"

// Bank is a payment-network participant record persisted in the banks table.
type Bank struct {
	BankID      int       `json:"bankId" db:"bank_id"`
	BankCode    string    `json:"bankCode" db:"bank_code"`
	BankName    string    `json:"bankName" db:"bank_name"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	APIURL      string    `json:"apiUrl" db:"api_url"`
	CreatedDate time.Time `json:"createdDate" db:"created_date"`
}

// BankRequest is the input payload for create and update operations.
// There is no identifier field: updates are keyed by bankCode.
type BankRequest struct {
	BankCode string `json:"bankCode" binding:"max=50"`
	BankName string `json:"bankName" binding:"max=255"`
	IsActive bool   `json:"isActive"`
	APIURL   string `json:"apiUrl" binding:"max=500"`
}

// BankResponse is the public API representation of a bank.
type BankResponse struct {
	BankID      int       `json:"bankId"`
	BankCode    string    `json:"bankCode"`
	BankName    string    `json:"bankName"`
	IsActive    bool      `json:"isActive"`
	APIURL      string    `json:"apiUrl"`
	CreatedDate time.Time `json:"createdDate"`
}
