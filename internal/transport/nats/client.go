package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"banksystem/internal/metrics"
	"banksystem/internal/model"
)

// Subjects served by the core-banking engine.
const (
	SubjectBalanceGet      = "bank.balance.get"
	SubjectBalanceHold     = "bank.balance.hold"
	SubjectBalanceUnhold   = "bank.balance.unhold"
	SubjectCustomerGet     = "bank.customer.get"
	SubjectCustomerOpen    = "bank.customer.open"
	SubjectDeposit         = "bank.transaction.deposit"
	SubjectDepositApproval = "bank.transaction.deposit.approval"
	SubjectSellPayment     = "bank.transaction.sell"
	SubjectBuyPayment      = "bank.transaction.buy"
)

// Requester is the request-reply half of *nats.Conn.
type Requester interface {
	RequestWithContext(ctx context.Context, subj string, data []byte) (*nats.Msg, error)
}

// CoreClient implements the balance, customer and transaction services by
// forwarding every call to the core-banking engine over NATS request-reply.
type CoreClient struct {
	conn    Requester
	timeout time.Duration
	log     *zap.Logger
}

func NewCoreClient(conn Requester, timeout time.Duration, log *zap.Logger) *CoreClient {
	return &CoreClient{conn: conn, timeout: timeout, log: log}
}

func (c *CoreClient) GetBalance(ctx context.Context, accountNo, idCard string) (*model.ResponseDto, error) {
	return c.request(ctx, SubjectBalanceGet, model.AccountRequest{AccountNo: accountNo, IdCard: idCard})
}

func (c *CoreClient) HoldAmount(ctx context.Context, req model.HoldAmountRequest) (*model.ResponseDto, error) {
	return c.request(ctx, SubjectBalanceHold, req)
}

func (c *CoreClient) UnholdAmount(ctx context.Context, req model.UnholdAmountRequest) (*model.ResponseDto, error) {
	return c.request(ctx, SubjectBalanceUnhold, req)
}

func (c *CoreClient) GetAccount(ctx context.Context, accountNo, idCard string) (*model.ResponseDto, error) {
	return c.request(ctx, SubjectCustomerGet, model.AccountRequest{AccountNo: accountNo, IdCard: idCard})
}

func (c *CoreClient) OpenCustomer(ctx context.Context, req model.OpenCustomerRequest) (*model.ResponseDto, error) {
	return c.request(ctx, SubjectCustomerOpen, req)
}

func (c *CoreClient) DepositMoney(ctx context.Context, req model.DepositRequest) (*model.ResponseDto, error) {
	return c.request(ctx, SubjectDeposit, req)
}

func (c *CoreClient) DepositApproval(ctx context.Context, req model.DepositApprovalRequest) (*model.ResponseDto, error) {
	return c.request(ctx, SubjectDepositApproval, req)
}

func (c *CoreClient) SellPayment(ctx context.Context, req model.SellPaymentRequest) (*model.ResponseDto, error) {
	return c.request(ctx, SubjectSellPayment, req)
}

func (c *CoreClient) BuyPayment(ctx context.Context, req model.BuyPaymentRequest) (*model.ResponseDto, error) {
	return c.request(ctx, SubjectBuyPayment, req)
}

func (c *CoreClient) request(ctx context.Context, subject string, payload any) (*model.ResponseDto, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", subject, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.conn.RequestWithContext(ctx, subject, data)
	if err != nil {
		metrics.CoreRequests.WithLabelValues(subject, "transport_error").Inc()
		return nil, fmt.Errorf("request %s: %w", subject, err)
	}

	var resp model.ResponseDto
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		metrics.CoreRequests.WithLabelValues(subject, "bad_reply").Inc()
		return nil, fmt.Errorf("decode %s reply: %w", subject, err)
	}

	metrics.CoreRequests.WithLabelValues(subject, "ok").Inc()
	if resp.IsError() {
		c.log.Debug("core-banking rejected request",
			zap.String("subject", subject),
			zap.String("code", resp.Code),
		)
	}
	return &resp, nil
}
