package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/sales-performance-api/internal/api/handler"
	"github.com/vfg2006/sales-performance-api/internal/api/handler/router"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-performance-api/pkg/log"
	"github.com/vfg2006/sales-performance-api/pkg/metrics"
	"github.com/vfg2006/sales-performance-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reportService analyzing.ReportGenerator,
	authenticator authenticating.Authenticator,
	metricsManager *metrics.Manager,
) (*Server, error) {
	if config.Server.Port == "" {
		return nil, errors.New("api: PORT is required")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, reportService, authenticator, metricsManager),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta o router com a cadeia de middlewares da API
func NewHandler(
	config *config.Config,
	reportService analyzing.ReportGenerator,
	authenticator authenticating.Authenticator,
	metricsManager *metrics.Manager,
) http.Handler {
	var reportMiddlewares []alice.Constructor
	if config.Auth.Enabled {
		reportMiddlewares = append(reportMiddlewares, middleware.AdminOrSupervisor())
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(config.Dataset.Path != "")...),
		router.WithRoutes(handler.Metrics(metricsManager.Handler())...),
		router.WithRoutes(handler.SalesReport(reportService, reportMiddlewares...)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	if config.Auth.Enabled {
		middlewares = append(middlewares, middleware.AuthMiddleware(authenticator))
	} else {
		log.L.Warn("Autenticação desabilitada por configuração: rotas de relatório abertas")
	}

	return alice.New(middlewares...).Then(rt)
}

// Run serve a API até receber SIGINT/SIGTERM, o contexto ser cancelado ou o listener falhar
func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		log.L.Infof("Servidor iniciando em %s", s.httpServer.Addr)

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case err := <-serveErr:
		log.L.WithError(err).Error("Erro durante a execução do servidor")
		return err
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.Infof("Iniciando desligamento gracioso do servidor (timeout %s)", shutdownTimeout)

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
