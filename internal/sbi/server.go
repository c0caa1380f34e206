package sbi

import (
	"context"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/free5gc/e2ap/internal/logger"
	"github.com/free5gc/e2ap/internal/metrics"
	"github.com/free5gc/e2ap/pkg/factory"
	"github.com/free5gc/e2ap/pkg/procedure"
	logger_util "github.com/free5gc/util/logger"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
	rootPath        = "/e2ap/v1"
)

// Server is the debug HTTP API: encode and decode E2AP messages, health,
// metrics and pprof.
type Server struct {
	cfg        *factory.Config
	procedures *procedure.Procedures
	router     *gin.Engine
	httpServer *http.Server
}

func NewServer(cfg *factory.Config, procedures *procedure.Procedures) *Server {
	s := &Server{
		cfg:        cfg,
		procedures: procedures,
	}
	s.router = newRouter(s)
	s.httpServer = &http.Server{
		Addr:              cfg.GetSbiBindingAddr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func newRouter(s *Server) *gin.Engine {
	router := logger_util.NewGinWithLogrus(logger.SBILog)
	router.Use(requestID())

	group := router.Group(rootPath)
	group.GET("/health", s.HTTPHealth)
	group.POST("/encode/subscription-request", s.HTTPEncodeSubscriptionRequest)
	group.POST("/encode/subscription-delete-request", s.HTTPEncodeSubscriptionDeleteRequest)
	group.POST("/encode/control-request", s.HTTPEncodeControlRequest)
	group.POST("/decode", s.HTTPDecode)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	pprof.Register(router)
	return router
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run(wg *sync.WaitGroup) error {
	wg.Add(1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				// Print stack for panic to log. Fatalf() will let program exit.
				logger.SBILog.Fatalf("panic: %v\n%s", p, string(debug.Stack()))
			}
			wg.Done()
		}()

		logger.SBILog.Infof("Start SBI server (listen on %s)", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.SBILog.Errorf("SBI server error: %+v", err)
		}
		logger.SBILog.Infof("SBI server (listen on %s) stopped", s.httpServer.Addr)
	}()
	return nil
}

func (s *Server) Shutdown(ctx context.Context) {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logger.SBILog.Errorf("Stop SBI server error: %+v", err)
	}
}
