package service

import (
	"context"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/free5gc/e2ap/internal/logger"
	"github.com/free5gc/e2ap/internal/sbi"
	"github.com/free5gc/e2ap/pkg/factory"
	"github.com/free5gc/e2ap/pkg/procedure"
)

const shutdownTimeout = 5 * time.Second

type E2apApp struct {
	cfg        *factory.Config
	procedures *procedure.Procedures
	sbiServer  *sbi.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewApp(cfg *factory.Config) (*E2apApp, error) {
	e2ap := &E2apApp{cfg: cfg}
	e2ap.SetLogEnable(cfg.GetLogEnable())
	e2ap.SetLogLevel(cfg.GetLogLevel())
	e2ap.SetReportCaller(cfg.GetLogReportCaller())

	procedures, err := procedure.New(cfg.GetLimits())
	if err != nil {
		return nil, err
	}
	e2ap.procedures = procedures
	e2ap.ctx, e2ap.cancel = context.WithCancel(context.Background())
	return e2ap, nil
}

func (a *E2apApp) Config() *factory.Config {
	return a.cfg
}

func (a *E2apApp) Procedures() *procedure.Procedures {
	return a.procedures
}

func (a *E2apApp) SetLogEnable(enable bool) {
	logger.MainLog.Infof("Log enable is set to [%v]", enable)
	if enable && logger.Log.Out == os.Stderr {
		return
	} else if !enable && logger.Log.Out == io.Discard {
		return
	}

	a.cfg.SetLogEnable(enable)
	if enable {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(io.Discard)
	}
}

func (a *E2apApp) SetLogLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.MainLog.Warnf("Log level [%s] is invalid", level)
		return
	}

	logger.MainLog.Infof("Log level is set to [%s]", level)
	if lvl == logger.Log.GetLevel() {
		return
	}

	a.cfg.SetLogLevel(level)
	logger.SetLogLevel(lvl)
}

func (a *E2apApp) SetReportCaller(reportCaller bool) {
	logger.MainLog.Infof("Report Caller is set to [%v]", reportCaller)
	if reportCaller == logger.Log.ReportCaller {
		return
	}

	a.cfg.SetLogReportCaller(reportCaller)
	logger.SetReportCaller(reportCaller)
}

// Start runs the debug API until SIGINT or SIGTERM.
func (a *E2apApp) Start() {
	logger.InitLog.Infoln("Server started")

	a.sbiServer = sbi.NewServer(a.cfg, a.procedures)
	if err := a.sbiServer.Run(&a.wg); err != nil {
		logger.InitLog.Errorf("Start SBI server failed: %+v", err)
		return
	}

	a.wg.Add(1)
	// Graceful Shutdown
	go a.listenShutdownEvent()

	logger.InitLog.Info("E2AP running...")

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	select {
	case <-signalChannel:
	case <-a.ctx.Done():
	}

	a.Terminate()
}

func (a *E2apApp) listenShutdownEvent() {
	defer func() {
		if p := recover(); p != nil {
			// Print stack for panic to log. Fatalf() will let program exit.
			logger.InitLog.Fatalf("panic: %v\n%s", p, string(debug.Stack()))
		}
		a.wg.Done()
	}()

	<-a.ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.sbiServer.Shutdown(ctx)
}

func (a *E2apApp) Terminate() {
	logger.InitLog.Info("Terminating E2AP...")
	a.cancel()
	a.wg.Wait()
	logger.InitLog.Info("E2AP terminated")
}
