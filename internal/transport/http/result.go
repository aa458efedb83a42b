package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"banksystem/internal/model"
)

const responseCodeKey = "response_code"

// Result is the HTTP shape a controller answers with.
type Result struct {
	StatusCode int
	Value      *model.ResponseDto
}

func Ok(v *model.ResponseDto) Result { return Result{StatusCode: http.StatusOK, Value: v} }

func NotFound(v *model.ResponseDto) Result { return Result{StatusCode: http.StatusNotFound, Value: v} }

func BadRequest(v *model.ResponseDto) Result {
	return Result{StatusCode: http.StatusBadRequest, Value: v}
}

func Conflict(v *model.ResponseDto) Result { return Result{StatusCode: http.StatusConflict, Value: v} }

func InternalError() Result {
	return Result{StatusCode: http.StatusInternalServerError, Value: model.ErrorResponse(model.CodeInternal)}
}

// ResultFor maps a core-banking response onto an HTTP result: the not-found
// code becomes 404, any other failure code 400, everything else 200. The
// response itself is the payload in every case.
func ResultFor(resp *model.ResponseDto) Result {
	switch {
	case resp.Code == model.CodeNotFound:
		return NotFound(resp)
	case resp.IsError():
		return BadRequest(resp)
	default:
		return Ok(resp)
	}
}

func respond(c *gin.Context, log *zap.Logger, resp *model.ResponseDto, err error) {
	if err != nil {
		log.Error("core-banking call failed", zap.String("route", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
		writeResult(c, InternalError())
		return
	}
	if resp == nil {
		log.Error("core-banking returned an empty response", zap.String("route", c.FullPath()))
		writeResult(c, InternalError())
		return
	}
	writeResult(c, ResultFor(resp))
}

func writeResult(c *gin.Context, r Result) {
	c.Set(responseCodeKey, r.Value.Code)
	c.JSON(r.StatusCode, r.Value)
}

func abortWithResult(c *gin.Context, r Result) {
	c.Set(responseCodeKey, r.Value.Code)
	c.AbortWithStatusJSON(r.StatusCode, r.Value)
}

func invalidRequest(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	writeResult(c, BadRequest(&model.ResponseDto{
		Code:    model.CodeInvalidRequest,
		Message: err.Error(),
	}))
}

// positiveAmount writes a 400 and returns false unless amount > 0.
func positiveAmount(c *gin.Context, amount decimal.Decimal) bool {
	if amount.IsPositive() {
		return true
	}
	writeResult(c, BadRequest(model.ErrorResponse(model.CodeInvalidAmount)))
	return false
}
