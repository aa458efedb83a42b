package http

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"banksystem/internal/service"
)

// Deps are the collaborators of the API. Audit and Idempotency are
// optional; a nil value switches the corresponding middleware off.
type Deps struct {
	Balance     service.BalanceService
	Customer    service.CustomerService
	Transaction service.TransactionService
	Logger      *zap.Logger

	Audit          Publisher
	Idempotency    IdempotencyStore
	IdempotencyTTL time.Duration
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.Use(ginzap.Ginzap(d.Logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(d.Logger, true))
	r.Use(Metrics())
	if d.Audit != nil {
		r.Use(Audit(d.Audit, d.Logger))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	if d.Idempotency != nil {
		api.Use(Idempotency(d.Idempotency, d.IdempotencyTTL, d.Logger))
	}
	NewBalanceController(d.Balance, d.Logger).Register(api)
	NewCustomerController(d.Customer, d.Logger).Register(api)
	NewTransactionController(d.Transaction, d.Logger).Register(api)

	return r
}

type Server struct {
	srv *http.Server
	log *zap.Logger
}

func NewServer(addr string, d Deps) *Server {
	return &Server{
		log: d.Logger,
		srv: &http.Server{
			Addr:         addr,
			Handler:      NewRouter(d),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info("api listening", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
