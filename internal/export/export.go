// Package export rasterizes a product card or its allocation chart to PNG.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/mmynk/pricewise/internal/chart"
	"github.com/mmynk/pricewise/internal/models"
)

// Mode selects what gets rendered.
type Mode string

const (
	// ModeCard renders the whole product card including the chart.
	ModeCard Mode = "card"
	// ModeChart renders only the chart panel at ChartHeight.
	ModeChart Mode = "chart"
)

const (
	// Width is the width of every exported image.
	Width = 640
	// ChartHeight is the fixed height of the chart panel.
	ChartHeight = 400

	contentType = "image/png"
)

var (
	ErrUnknownMode   = errors.New("unknown export mode")
	ErrChartNotFound = errors.New("chart not found")
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCard, ModeChart:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// FileName returns the download name: product-card-<id>.png or
// product-chart-<id>.png.
func FileName(mode Mode, productID string) string {
	return fmt.Sprintf("product-%s-%s.png", mode, productID)
}

// ChartSource provides the current chart dataset of a product.
type ChartSource interface {
	Lookup(productID string) (chart.Handle, bool)
}

// Image is an encoded export.
type Image struct {
	FileName    string
	ContentType string
	Data        []byte
	Width       int
	Height      int
}

// Exporter renders breakdowns to PNG. It only reads the snapshot it is
// given and the chart source; it never changes product state.
type Exporter struct {
	charts ChartSource
}

// NewExporter creates an exporter that draws charts from charts.
func NewExporter(charts ChartSource) *Exporter {
	return &Exporter{charts: charts}
}

// Export renders b in the given mode. The product must have a live chart.
func (x *Exporter) Export(ctx context.Context, b *models.Breakdown, mode Mode) (*Image, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	productID := b.Product.ID
	handle, ok := x.charts.Lookup(productID)
	if !ok {
		slog.Error("Export failed: chart not found", "product_id", productID, "mode", mode)
		return nil, fmt.Errorf("%w: %s", ErrChartNotFound, productID)
	}

	panel := renderChart(handle.Series, Width, ChartHeight)
	img := panel
	if mode == ModeCard {
		img = renderCard(b, panel)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		slog.Error("Export failed: encode", "product_id", productID, "mode", mode, "error", err)
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}

	bounds := img.Bounds()
	slog.Info("Product exported",
		"product_id", productID,
		"mode", mode,
		"bytes", buf.Len(),
	)
	return &Image{
		FileName:    FileName(mode, productID),
		ContentType: contentType,
		Data:        buf.Bytes(),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}
