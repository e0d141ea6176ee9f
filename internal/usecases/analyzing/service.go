package analyzing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/infrastructure/dataset"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
	"github.com/vfg2006/sales-performance-api/pkg/metrics"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// ReportGenerator define a interface para gerar relatórios de desempenho de vendedores
type ReportGenerator interface {
	// GenerateReport analisa o conjunto de dados informado
	GenerateReport(ctx context.Context, data *domain.Dataset) (*domain.SalesReport, error)

	// GenerateReportFromSource analisa o conjunto de dados da fonte configurada
	GenerateReportFromSource(ctx context.Context) (*domain.SalesReport, error)
}

type Service struct {
	source     dataset.Source
	metrics    *metrics.Manager
	options    Options
	now        func() time.Time
	generateID func() (string, error)
}

// ServiceOption configura o Service
type ServiceOption func(*Service)

// WithStrategies substitui as estratégias de receita e bônus usadas pelo serviço
func WithStrategies(opts Options) ServiceOption {
	return func(s *Service) {
		s.options = opts
	}
}

func NewService(source dataset.Source, metricsManager *metrics.Manager, opts ...ServiceOption) ReportGenerator {
	s := &Service{
		source:     source,
		metrics:    metricsManager,
		options:    DefaultOptions(),
		now:        time.Now,
		generateID: utils.GenerateID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) GenerateReport(ctx context.Context, data *domain.Dataset) (*domain.SalesReport, error) {
	logger := log.ForContext(ctx)

	startedAt := time.Now()
	rows, err := Analyze(data, s.options)
	if err != nil {
		code := ErrorCode(err)
		s.metrics.RecordError(code)

		logger.WithFields(log.Fields{
			"code":  code,
			"error": err.Error(),
		}).Warn("analyzing: sales analysis aborted")

		return nil, err
	}

	s.metrics.RecordReport(len(rows), len(data.PurchaseRecords), time.Since(startedAt))

	id, err := s.generateID()
	if err != nil {
		s.metrics.RecordError(apiErrors.ErrInternalServer)
		return nil, errors.Wrap(err, "analyzing: generating report id")
	}

	report := &domain.SalesReport{
		ID:          id,
		GeneratedAt: s.now(),
		Sellers:     rows,
		Summary:     summarize(rows),
	}

	logger.WithFields(log.Fields{
		"report_id":        report.ID,
		"sellers":          report.Summary.Sellers,
		"purchase_records": len(data.PurchaseRecords),
		"duration_ms":      time.Since(startedAt).Milliseconds(),
	}).Info("analyzing: sales report generated")

	return report, nil
}

func (s *Service) GenerateReportFromSource(ctx context.Context) (*domain.SalesReport, error) {
	if s.source == nil {
		s.metrics.RecordError(apiErrors.ErrDatasetUnavailable)
		return nil, dataset.ErrSourceNotConfigured
	}

	data, err := s.source.Load(ctx)
	if err != nil {
		s.metrics.RecordError(apiErrors.ErrDatasetUnavailable)

		log.ForContext(ctx).WithError(err).Error("analyzing: failed to load sales dataset")
		return nil, err
	}

	return s.GenerateReport(ctx, data)
}

func summarize(rows []domain.ReportRow) domain.SalesReportSummary {
	summary := domain.SalesReportSummary{Sellers: len(rows)}
	for _, row := range rows {
		summary.SalesCount += row.SalesCount
		summary.Revenue = utils.RoundWithTwoDecimalPlace(summary.Revenue + row.Revenue)
		summary.Profit = utils.RoundWithTwoDecimalPlace(summary.Profit + row.Profit)
		summary.Bonus = utils.RoundWithTwoDecimalPlace(summary.Bonus + row.Bonus)
	}
	return summary
}
