package service

import (
	"context"

	"banksystem/internal/model"
)

// BalanceService, CustomerService and TransactionService are implemented by
// the core-banking engine. The HTTP controllers depend on these interfaces,
// never on a concrete client.
//
// A returned error means the engine could not be reached or its answer was
// unusable; business outcomes are carried in ResponseDto.Code.
type BalanceService interface {
	GetBalance(ctx context.Context, accountNo, idCard string) (*model.ResponseDto, error)
	HoldAmount(ctx context.Context, req model.HoldAmountRequest) (*model.ResponseDto, error)
	UnholdAmount(ctx context.Context, req model.UnholdAmountRequest) (*model.ResponseDto, error)
}

type CustomerService interface {
	GetAccount(ctx context.Context, accountNo, idCard string) (*model.ResponseDto, error)
	OpenCustomer(ctx context.Context, req model.OpenCustomerRequest) (*model.ResponseDto, error)
}

type TransactionService interface {
	DepositMoney(ctx context.Context, req model.DepositRequest) (*model.ResponseDto, error)
	DepositApproval(ctx context.Context, req model.DepositApprovalRequest) (*model.ResponseDto, error)
	SellPayment(ctx context.Context, req model.SellPaymentRequest) (*model.ResponseDto, error)
	BuyPayment(ctx context.Context, req model.BuyPaymentRequest) (*model.ResponseDto, error)
}
