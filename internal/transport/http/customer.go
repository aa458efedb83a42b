package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"banksystem/internal/model"
	"banksystem/internal/service"
)

var errMissingDateOfBirth = errors.New("dateOfBirth is required")

type CustomerController struct {
	svc service.CustomerService
	log *zap.Logger
}

func NewCustomerController(svc service.CustomerService, log *zap.Logger) *CustomerController {
	return &CustomerController{svc: svc, log: log}
}

func (h *CustomerController) Register(rg *gin.RouterGroup) {
	rg.GET("/customer", h.GetAccount)
	rg.POST("/customer", h.OpenCustomer)
}

func (h *CustomerController) GetAccount(c *gin.Context) {
	var req model.AccountRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	resp, err := h.svc.GetAccount(c.Request.Context(), req.AccountNo, req.IdCard)
	respond(c, h.log, resp, err)
}

func (h *CustomerController) OpenCustomer(c *gin.Context) {
	var req model.OpenCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	if req.DateOfBirth.IsZero() {
		invalidRequest(c, errMissingDateOfBirth)
		return
	}
	resp, err := h.svc.OpenCustomer(c.Request.Context(), req)
	respond(c, h.log, resp, err)
}
