package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"banksystem/internal/model"
	"banksystem/internal/service"
)

type TransactionController struct {
	svc service.TransactionService
	log *zap.Logger
}

func NewTransactionController(svc service.TransactionService, log *zap.Logger) *TransactionController {
	return &TransactionController{svc: svc, log: log}
}

func (h *TransactionController) Register(rg *gin.RouterGroup) {
	rg.POST("/transaction/deposit", h.DepositMoney)
	rg.POST("/transaction/deposit/approval", h.DepositApproval)
	rg.POST("/transaction/sell-payment", h.SellPayment)
	rg.POST("/transaction/buy-payment", h.BuyPayment)
}

// DepositMoney registers a pending deposit; it only moves money once
// approved through DepositApproval.
func (h *TransactionController) DepositMoney(c *gin.Context) {
	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	if !positiveAmount(c, req.Amount) {
		return
	}
	resp, err := h.svc.DepositMoney(c.Request.Context(), req)
	respond(c, h.log, resp, err)
}

func (h *TransactionController) DepositApproval(c *gin.Context) {
	var req model.DepositApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	resp, err := h.svc.DepositApproval(c.Request.Context(), req)
	respond(c, h.log, resp, err)
}

func (h *TransactionController) SellPayment(c *gin.Context) {
	var req model.SellPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	if !positiveAmount(c, req.Amount) {
		return
	}
	resp, err := h.svc.SellPayment(c.Request.Context(), req)
	respond(c, h.log, resp, err)
}

func (h *TransactionController) BuyPayment(c *gin.Context) {
	var req model.BuyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	if !positiveAmount(c, req.Amount) {
		return
	}
	resp, err := h.svc.BuyPayment(c.Request.Context(), req)
	respond(c, h.log, resp, err)
}
