package http

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"banksystem/internal/model"
)

func (s *ControllerSuite) setupGetBalance(expected *model.ResponseDto) {
	s.balance.On("GetBalance", mock.Anything, mock.Anything, mock.Anything).Return(expected, nil).Once()
}

func (s *ControllerSuite) setupHoldAmount(expected *model.ResponseDto) {
	s.balance.On("HoldAmount", mock.Anything, mock.Anything).Return(expected, nil).Once()
}

func (s *ControllerSuite) setupUnholdAmount(expected *model.ResponseDto) {
	s.balance.On("UnholdAmount", mock.Anything, mock.Anything).Return(expected, nil).Once()
}

func holdRequest(accountNo, idCard string, amount int64) model.HoldAmountRequest {
	return model.HoldAmountRequest{
		AccountNo:   accountNo,
		IdCard:      idCard,
		Amount:      decimal.NewFromInt(amount),
		ApproveBy:   "MinhNH",
		Description: "MinhNH Hold Amount 1000",
	}
}

func unholdRequest(accountNo, idCard string, amount int64) model.UnholdAmountRequest {
	return model.UnholdAmountRequest{
		AccountNo:   accountNo,
		IdCard:      idCard,
		Amount:      decimal.NewFromInt(amount),
		ApproveBy:   "MinhNH",
		Description: "MinhNH Unhold Amount 1000",
	}
}

func (s *ControllerSuite) TestGetBalance_ReturnsOk_WhenSuccess() {
	expected := &model.ResponseDto{}
	s.balance.On("GetBalance", mock.Anything, "2182415246", "235236555233").Return(expected, nil).Once()

	rec := s.get("/api/balance?accountNo=2182415246&idCard=235236555233")

	assertIsOkResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestGetBalance_ReturnsBadRequest_WhenIdCardDoesNotBelongToAccount() {
	expected := model.ErrorResponse(model.CodeIdCardDoesNotBelongToAccount)
	s.setupGetBalance(expected)

	rec := s.get("/api/balance?accountNo=2182415246&idCard=2352233")

	assertIsBadRequestResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestGetBalance_ReturnsNotFound() {
	expected := model.ErrorResponse(model.CodeNotFound)
	s.setupGetBalance(expected)

	rec := s.get("/api/balance?accountNo=2182&idCard=2352233")

	assertIsNotFoundResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestGetBalance_ReturnsBadRequest_WhenDoesNotHaveBalance() {
	expected := model.ErrorResponse(model.CodeDoesNotHaveBalance)
	s.setupGetBalance(expected)

	rec := s.get("/api/balance?accountNo=2182415246&idCard=235236555233")

	assertIsBadRequestResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestGetBalance_MissingIdCard_DoesNotCallService() {
	rec := s.get("/api/balance?accountNo=2182415246")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(model.CodeInvalidRequest, decodeResponse(s.T(), rec).Code)
	s.balance.AssertNotCalled(s.T(), "GetBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ControllerSuite) TestGetBalance_ServiceUnavailable_ReturnsInternalError() {
	s.balance.On("GetBalance", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("nats: timeout")).Once()

	rec := s.get("/api/balance?accountNo=2182415246&idCard=235236555233")

	assertResult(s.T(), rec, http.StatusInternalServerError, model.ErrorResponse(model.CodeInternal))
}

func (s *ControllerSuite) TestHoldAmount_ReturnsOk_WhenSuccess() {
	expected := model.NewResponse(model.BalanceTotal{
		HoldAmount:   decimal.NewFromInt(1000),
		UsableAmount: decimal.NewFromInt(1000),
	})
	s.balance.On("HoldAmount", mock.Anything, mock.MatchedBy(func(req model.HoldAmountRequest) bool {
		return req.AccountNo == "2182415246" &&
			req.IdCard == "235236555233" &&
			req.Amount.Equal(decimal.NewFromInt(1000)) &&
			req.ApproveBy == "MinhNH"
	})).Return(expected, nil).Once()

	rec := s.post("/api/balance/hold", holdRequest("2182415246", "235236555233", 1000))

	assertIsOkResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestHoldAmount_ReturnsNotFound() {
	expected := model.ErrorResponse(model.CodeNotFound)
	s.setupHoldAmount(expected)

	rec := s.post("/api/balance/hold", holdRequest("123", "123", 1000))

	assertIsNotFoundResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestHoldAmount_ReturnsBadRequest_WhenDoesNotHaveBalance() {
	expected := model.ErrorResponse(model.CodeDoesNotHaveBalance)
	s.setupHoldAmount(expected)

	rec := s.post("/api/balance/hold", holdRequest("2182415246", "235236555233", 1000))

	assertIsBadRequestResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestHoldAmount_ReturnsBadRequest_WhenHoldAmountExceedUsable() {
	expected := model.ErrorResponse(model.CodeHoldAmountExceedUsable)
	s.setupHoldAmount(expected)

	rec := s.post("/api/balance/hold", holdRequest("2182415246", "235236555233", 1000000000))

	assertIsBadRequestResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestHoldAmount_RejectsNonPositiveAmount() {
	for _, amount := range []int64{0, -5} {
		rec := s.post("/api/balance/hold", holdRequest("2182415246", "235236555233", amount))

		assertIsBadRequestResult(s.T(), rec, model.ErrorResponse(model.CodeInvalidAmount))
	}
	s.balance.AssertNotCalled(s.T(), "HoldAmount", mock.Anything, mock.Anything)
}

func (s *ControllerSuite) TestHoldAmount_MalformedJSON() {
	rec := s.post("/api/balance/hold", `{"accountNo": "2182415246", "amount": "lots"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(model.CodeInvalidRequest, decodeResponse(s.T(), rec).Code)
}

func (s *ControllerSuite) TestUnholdAmount_ReturnsOk_WhenSuccess() {
	expected := model.NewResponse(model.BalanceTotal{
		HoldAmount:   decimal.Zero,
		UsableAmount: decimal.NewFromInt(2000),
	})
	s.setupUnholdAmount(expected)

	rec := s.post("/api/balance/unhold", unholdRequest("2182415246", "235236555233", 1000))

	assertIsOkResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestUnholdAmount_ReturnsNotFound() {
	expected := model.ErrorResponse(model.CodeNotFound)
	s.setupUnholdAmount(expected)

	rec := s.post("/api/balance/unhold", unholdRequest("1", "3592", 1000))

	assertIsNotFoundResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestUnholdAmount_ReturnsBadRequest_WhenDoesNotHaveBalance() {
	expected := model.ErrorResponse(model.CodeDoesNotHaveBalance)
	s.setupUnholdAmount(expected)

	rec := s.post("/api/balance/unhold", unholdRequest("2182415246", "235236555233", 1000))

	assertIsBadRequestResult(s.T(), rec, expected)
}

func (s *ControllerSuite) TestUnholdAmount_ReturnsBadRequest_WhenUnholdAmountExceedHold() {
	expected := model.ErrorResponse(model.CodeUnholdAmountExceedHold)
	s.setupUnholdAmount(expected)

	rec := s.post("/api/balance/unhold", unholdRequest("2182415246", "235236555233", 100000000))

	assertIsBadRequestResult(s.T(), rec, expected)
}
