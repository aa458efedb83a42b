package http

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"banksystem/internal/model"
)

func (s *ControllerSuite) setupDepositMoney(expected *model.ResponseDto) {
	s.transaction.On("DepositMoney", mock.Anything, mock.Anything).Return(expected, nil).Once()
}

func (s *ControllerSuite) setupDepositApproval(expected *model.ResponseDto) {
	s.transaction.On("DepositApproval", mock.Anything, mock.Anything).Return(expected, nil).Once()
}

func (s *ControllerSuite) setupSellPayment(expected *model.ResponseDto) {
	s.transaction.On("SellPayment", mock.Anything, mock.Anything).Return(expected, nil).Once()
}

func (s *ControllerSuite) setupBuyPayment(expected *model.ResponseDto) {
	s.transaction.On("BuyPayment", mock.Anything, mock.Anything).Return(expected, nil).Once()
}

func sellRequest(accountNo string, amount int64) model.SellPaymentRequest {
	return model.SellPaymentRequest{
		AccountNo:               accountNo,
		IdCard:                  "1234567890",
		SecuritiesAccount:       "2182415246",
		SecuritiesAccountIdCard: "235236555233",
		Amount:                  decimal.NewFromInt(amount),
		Description:             "123456789 sell payment 2182415246",
	}
}

func buyRequest(accountNo string, amount int64) model.BuyPaymentRequest {
	return model.BuyPaymentRequest{
		AccountNo:               accountNo,
		IdCard:                  "1234567890",
		SecuritiesAccount:       "2182415246",
		SecuritiesAccountIdCard: "235236555233",
		Amount:                  decimal.NewFromInt(amount),
		Description:             "123456789 buy payment 2182415246",
	}
}

func (s *ControllerSuite) TestDepositMoney_ReturnsOk_WhenSuccess() {
	expected := &model.ResponseDto{}
	s.transaction.On("DepositMoney", mock.Anything, mock.MatchedBy(func(req model.DepositRequest) bool {
		return req.AccountNo == "2182415246" && req.Amount.Equal(decimal.NewFromInt(1000))
	})).Return(expected, nil).Once()

	rec := s.post("/api/transaction/deposit", model.DepositRequest{
		AccountNo:   "2182415246",
		Amount:      decimal.NewFromInt(1000),
		Description: "Deposit 1000",
	})

	assertIsOkResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestDepositMoney_ReturnsNotFound() {
	expected := model.ErrorResponse(model.CodeNotFound)
	s.setupDepositMoney(expected)

	rec := s.post("/api/transaction/deposit", model.DepositRequest{
		AccountNo:   "215246",
		Amount:      decimal.NewFromInt(1000),
		Description: "Deposit 1000",
	})

	assertIsNotFoundResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestDepositMoney_AcceptsFractionalAmount() {
	expected := &model.ResponseDto{}
	s.transaction.On("DepositMoney", mock.Anything, mock.MatchedBy(func(req model.DepositRequest) bool {
		return req.Amount.Equal(decimal.RequireFromString("10.25"))
	})).Return(expected, nil).Once()

	rec := s.post("/api/transaction/deposit", `{"accountNo": "2182415246", "amount": 10.25}`)

	assertIsOkResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestDepositApproval_ReturnsOk_WhenSuccess() {
	expected := &model.ResponseDto{}
	s.transaction.On("DepositApproval", mock.Anything, model.DepositApprovalRequest{
		TransactionId: "dda8cfdc-b116-11ee-aea6-0242ac110002",
		ApproveBy:     "TanNH",
		Status:        model.ApprovalApproved,
	}).Return(expected, nil).Once()

	rec := s.post("/api/transaction/deposit/approval", model.DepositApprovalRequest{
		ApproveBy:     "TanNH",
		Status:        model.ApprovalApproved,
		TransactionId: "dda8cfdc-b116-11ee-aea6-0242ac110002",
	})

	assertIsOkResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestDepositApproval_ReturnsNotFound() {
	expected := model.ErrorResponse(model.CodeNotFound)
	s.setupDepositApproval(expected)

	rec := s.post("/api/transaction/deposit/approval", model.DepositApprovalRequest{
		ApproveBy:     "TanNH",
		Status:        model.ApprovalApproved,
		TransactionId: "ddab116-11ee-aea6-0242ac110002",
	})

	assertIsNotFoundResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestDepositApproval_RejectsUnknownStatus() {
	rec := s.post("/api/transaction/deposit/approval", model.DepositApprovalRequest{
		ApproveBy:     "TanNH",
		Status:        7,
		TransactionId: "dda8cfdc-b116-11ee-aea6-0242ac110002",
	})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(model.CodeInvalidRequest, decodeResponse(s.T(), rec).Code)
	s.transaction.AssertNotCalled(s.T(), "DepositApproval", mock.Anything, mock.Anything)
}

func (s *ControllerSuite) TestSellPayment_ReturnsOk_WhenSuccess() {
	expected := &model.ResponseDto{}
	s.setupSellPayment(expected)

	rec := s.post("/api/transaction/sell-payment", sellRequest("123456789", 1000))

	assertIsOkResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestSellPayment_ReturnsNotFound() {
	expected := model.ErrorResponse(model.CodeNotFound)
	s.setupSellPayment(expected)

	rec := s.post("/api/transaction/sell-payment", sellRequest("string", 1000))

	assertIsNotFoundResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestSellPayment_ReturnsBadRequest_WhenAccountNoUsed() {
	expected := model.ErrorResponse(model.CodeAccountNoUsed)
	s.setupSellPayment(expected)

	rec := s.post("/api/transaction/sell-payment", sellRequest("123456789", 1000))

	assertIsBadRequestResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestSellPayment_ReturnsBadRequest_WhenAmountTakenExceed() {
	expected := model.ErrorResponse(model.CodeAmountTakenExceed)
	s.setupSellPayment(expected)

	rec := s.post("/api/transaction/sell-payment", sellRequest("123456789", 10000000000))

	assertIsBadRequestResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestBuyPayment_ReturnsOk_WhenSuccess() {
	expected := &model.ResponseDto{}
	s.setupBuyPayment(expected)

	rec := s.post("/api/transaction/buy-payment", buyRequest("123456789", 1000))

	assertIsOkResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestBuyPayment_ReturnsNotFound() {
	expected := model.ErrorResponse(model.CodeNotFound)
	s.setupBuyPayment(expected)

	rec := s.post("/api/transaction/buy-payment", buyRequest("string", 1000))

	assertIsNotFoundResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestBuyPayment_ReturnsBadRequest_WhenAccountNoUsed() {
	expected := model.ErrorResponse(model.CodeAccountNoUsed)
	s.setupBuyPayment(expected)

	rec := s.post("/api/transaction/buy-payment", buyRequest("123456789", 1000))

	assertIsBadRequestResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestBuyPayment_ReturnsBadRequest_WhenAmountTakenExceed() {
	expected := model.ErrorResponse(model.CodeAmountTakenExceed)
	s.setupBuyPayment(expected)

	rec := s.post("/api/transaction/buy-payment", buyRequest("123456789", 10000000000))

	assertIsBadRequestResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestBuyPayment_MissingSecuritiesAccount() {
	req := buyRequest("123456789", 1000)
	req.SecuritiesAccount = ""

	rec := s.post("/api/transaction/buy-payment", req)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.transaction.AssertNotCalled(s.T(), "BuyPayment", mock.Anything, mock.Anything)
}
