package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"banksystem/internal/model"
	"banksystem/internal/service"
)

type BalanceController struct {
	svc service.BalanceService
	log *zap.Logger
}

func NewBalanceController(svc service.BalanceService, log *zap.Logger) *BalanceController {
	return &BalanceController{svc: svc, log: log}
}

func (h *BalanceController) Register(rg *gin.RouterGroup) {
	rg.GET("/balance", h.GetBalance)
	rg.POST("/balance/hold", h.HoldAmount)
	rg.POST("/balance/unhold", h.UnholdAmount)
}

// GetBalance handles GET /api/balance?accountNo=&idCard=.
func (h *BalanceController) GetBalance(c *gin.Context) {
	var req model.AccountRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	resp, err := h.svc.GetBalance(c.Request.Context(), req.AccountNo, req.IdCard)
	respond(c, h.log, resp, err)
}

func (h *BalanceController) HoldAmount(c *gin.Context) {
	var req model.HoldAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	if !positiveAmount(c, req.Amount) {
		return
	}
	resp, err := h.svc.HoldAmount(c.Request.Context(), req)
	respond(c, h.log, resp, err)
}

func (h *BalanceController) UnholdAmount(c *gin.Context) {
	var req model.UnholdAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	if !positiveAmount(c, req.Amount) {
		return
	}
	resp, err := h.svc.UnholdAmount(c.Request.Context(), req)
	respond(c, h.log, resp, err)
}
