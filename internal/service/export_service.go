package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/usm-portal/event-portal-api/internal/models"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
	"github.com/usm-portal/event-portal-api/pkg/export"
)

// ExportFormat names a supported export encoding.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ExportResult carries rendered bytes together with response metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the approved catalog as downloadable documents for
// administrative reporting.
type ExportService struct {
	repo    eventRepository
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	enabled bool
	logger  *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(repo eventRepository, enabled bool, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		repo:    repo,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		enabled: enabled,
		logger:  logger,
	}
}

// Export renders the approved event catalog in the requested format.
func (s *ExportService) Export(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	if !s.enabled {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "exports are disabled")
	}

	events, err := s.repo.ListByApproval(ctx, models.ApprovalApproved)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	dataset := eventDataset(events)

	switch format {
	case ExportCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: "eventos-aprobados.csv"}, nil
	case ExportPDF:
		content, err := s.pdf.Render(dataset, "Eventos Aprobados")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: "eventos-aprobados.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format: %s", format))
	}
}

func eventDataset(events []models.Event) export.Dataset {
	headers := []string{"ID", "Título", "Categoría", "Fecha", "Horario", "Ubicación", "Público", "Costo", "Organizador"}
	rows := make([]map[string]string, 0, len(events))
	for _, e := range events {
		cost := "Gratuito"
		if e.Cost > 0 {
			cost = fmt.Sprintf("$%d", e.Cost)
		}
		rows = append(rows, map[string]string{
			"ID":          e.ID,
			"Título":      e.Title,
			"Categoría":   models.CategoryLabels[e.Category],
			"Fecha":       e.Date,
			"Horario":     e.Time,
			"Ubicación":   e.Location,
			"Público":     models.AudienceLabels[e.Audience],
			"Costo":       cost,
			"Organizador": e.Organizer,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
