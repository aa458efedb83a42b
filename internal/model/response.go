package model

import "github.com/shopspring/decimal"

// Response codes returned by the core-banking engine. They are opaque to
// the API layer and only compared for equality.
const (
	CodeSuccess                      = "00"
	CodeNotFound                     = "01"
	CodeIdCardDoesNotBelongToAccount = "02"
	CodeDoesNotHaveBalance           = "03"
	CodeHoldAmountExceedUsable       = "04"
	CodeUnholdAmountExceedHold       = "05"
	CodeAccountNoUsed                = "06"
	CodeIdCardUsed                   = "07"
	CodeAmountTakenExceed            = "08"

	CodeInvalidRequest    = "40"
	CodeInvalidAmount     = "41"
	CodeRequestInProgress = "42"
	CodeInternal          = "99"
)

var messages = map[string]string{
	CodeSuccess:                      "success",
	CodeNotFound:                     "account not found",
	CodeIdCardDoesNotBelongToAccount: "id card does not belong to account",
	CodeDoesNotHaveBalance:           "account does not have a balance",
	CodeHoldAmountExceedUsable:       "hold amount exceeds usable balance",
	CodeUnholdAmountExceedHold:       "unhold amount exceeds held balance",
	CodeAccountNoUsed:                "account number is already used",
	CodeIdCardUsed:                   "id card is already used",
	CodeAmountTakenExceed:            "amount taken exceeds available balance",
	CodeInvalidRequest:               "invalid request",
	CodeInvalidAmount:                "amount must be positive",
	CodeRequestInProgress:            "request with the same idempotency key is in progress",
	CodeInternal:                     "internal error",
}

type ResponseDto struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type BalanceTotal struct {
	HoldAmount   decimal.Decimal `json:"holdAmount"`
	UsableAmount decimal.Decimal `json:"usableAmount"`
}

func NewResponse(data any) *ResponseDto {
	return &ResponseDto{Code: CodeSuccess, Message: messages[CodeSuccess], Data: data}
}

// ErrorResponse builds the canonical response for code.
func ErrorResponse(code string) *ResponseDto {
	return &ResponseDto{Code: code, Message: MessageFor(code)}
}

func MessageFor(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsError reports whether the response carries a failure code. An empty
// code counts as success.
func (r *ResponseDto) IsError() bool {
	return r.Code != "" && r.Code != CodeSuccess
}
