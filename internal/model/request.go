package model

import "github.com/shopspring/decimal"

type AccountRequest struct {
	AccountNo string `json:"accountNo" form:"accountNo" binding:"required"`
	IdCard    string `json:"idCard" form:"idCard" binding:"required"`
}

type HoldAmountRequest struct {
	AccountNo   string          `json:"accountNo" binding:"required"`
	IdCard      string          `json:"idCard" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	ApproveBy   string          `json:"approveBy" binding:"required"`
	Description string          `json:"description"`
}

type UnholdAmountRequest struct {
	AccountNo   string          `json:"accountNo" binding:"required"`
	IdCard      string          `json:"idCard" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	ApproveBy   string          `json:"approveBy" binding:"required"`
	Description string          `json:"description"`
}

// OpenCustomerRequest.DateOfBirth is checked by the controller; binding
// tags are not applied to struct fields.
type OpenCustomerRequest struct {
	AccountNo   string `json:"accountNo" binding:"required"`
	IdCard      string `json:"idCard" binding:"required"`
	Name        string `json:"name" binding:"required"`
	DateOfBirth Date   `json:"dateOfBirth"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	CardPlace   string `json:"cardPlace"`
	TypeId      byte   `json:"typeId" binding:"required"`
	UserId      int64  `json:"userId" binding:"required"`
}

type DepositRequest struct {
	AccountNo   string          `json:"accountNo" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Deposit approval outcomes accepted by the core-banking engine.
const (
	ApprovalApproved = 1
	ApprovalRejected = 2
)

type DepositApprovalRequest struct {
	TransactionId string `json:"transactionId" binding:"required"`
	ApproveBy     string `json:"approveBy" binding:"required"`
	Status        int    `json:"status" binding:"oneof=1 2"`
}

// SellPaymentRequest moves money from a bank account to the linked securities account.
type SellPaymentRequest struct {
	AccountNo               string          `json:"accountNo" binding:"required"`
	IdCard                  string          `json:"idCard" binding:"required"`
	SecuritiesAccount       string          `json:"securitiesAccount" binding:"required"`
	SecuritiesAccountIdCard string          `json:"securitiesAccountIdCard" binding:"required"`
	Amount                  decimal.Decimal `json:"amount"`
	Description             string          `json:"description"`
}

// BuyPaymentRequest is the reverse leg of SellPaymentRequest.
type BuyPaymentRequest struct {
	AccountNo               string          `json:"accountNo" binding:"required"`
	IdCard                  string          `json:"idCard" binding:"required"`
	SecuritiesAccount       string          `json:"securitiesAccount" binding:"required"`
	SecuritiesAccountIdCard string          `json:"securitiesAccountIdCard" binding:"required"`
	Amount                  decimal.Decimal `json:"amount"`
	Description             string          `json:"description"`
}
