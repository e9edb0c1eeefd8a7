package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/pricewise/internal/engine"
	"github.com/mmynk/pricewise/internal/export"
	"github.com/mmynk/pricewise/pkg/api"
	"github.com/mmynk/pricewise/pkg/api/apiconnect"
)

// ExportService implements the Connect ExportService.
type ExportService struct {
	apiconnect.UnimplementedExportServiceHandler
	engine   *engine.Engine
	exporter *export.Exporter
}

// NewExportService creates an ExportService that snapshots products from eng.
func NewExportService(eng *engine.Engine, exporter *export.Exporter) *ExportService {
	return &ExportService{engine: eng, exporter: exporter}
}

// ExportProduct renders a product card or its chart as PNG.
func (s *ExportService) ExportProduct(ctx context.Context, req *connect.Request[api.ExportProductRequest]) (*connect.Response[api.ExportProductResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	mode, err := export.ParseMode(req.Msg.Mode)
	if err != nil {
		return nil, toConnectError("ExportProduct", err)
	}

	b, err := s.engine.Product(ctx, req.Msg.ProductID)
	if err != nil {
		return nil, toConnectError("ExportProduct", err)
	}

	img, err := s.exporter.Export(ctx, b, mode)
	if err != nil {
		return nil, toConnectError("ExportProduct", err)
	}
	return connect.NewResponse(&api.ExportProductResponse{
		FileName:    img.FileName,
		ContentType: img.ContentType,
		Width:       img.Width,
		Height:      img.Height,
		Data:        img.Data,
	}), nil
}
