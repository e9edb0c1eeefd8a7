package service

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pricewise/pkg/api"
)

func TestExportProduct(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	p := createProduct(t, c.pricing, &api.CreateProductRequest{Name: "Poster", Price: 300, Discount: 5})

	_, err := c.pricing.SetRolePercent(ctx, connect.NewRequest(&api.SetRolePercentRequest{ProductID: p.ID, RoleID: "studio", Percent: 50}))
	require.NoError(t, err)

	tests := []struct {
		mode     string
		fileName string
	}{
		{mode: "card", fileName: "product-card-" + p.ID + ".png"},
		{mode: "chart", fileName: "product-chart-" + p.ID + ".png"},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			resp, err := c.export.ExportProduct(ctx, connect.NewRequest(&api.ExportProductRequest{ProductID: p.ID, Mode: tt.mode}))
			require.NoError(t, err)
			assert.Equal(t, tt.fileName, resp.Msg.FileName)
			assert.Equal(t, "image/png", resp.Msg.ContentType)

			cfg, err := png.DecodeConfig(bytes.NewReader(resp.Msg.Data))
			require.NoError(t, err)
			assert.Equal(t, resp.Msg.Width, cfg.Width)
			assert.Equal(t, resp.Msg.Height, cfg.Height)
			if tt.mode == "chart" {
				assert.Equal(t, 400, cfg.Height)
			}
		})
	}
}

func TestExportProduct_Errors(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	p := createProduct(t, c.pricing, &api.CreateProductRequest{Name: "Poster", Price: 300})

	_, err := c.export.ExportProduct(ctx, connect.NewRequest(&api.ExportProductRequest{ProductID: p.ID, Mode: "pdf"}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = c.export.ExportProduct(ctx, connect.NewRequest(&api.ExportProductRequest{ProductID: "missing", Mode: "card"}))
	assertCode(t, err, connect.CodeNotFound)

	// A product whose chart was released can't be exported.
	c.charts.Destroy(p.ID)
	_, err = c.export.ExportProduct(ctx, connect.NewRequest(&api.ExportProductRequest{ProductID: p.ID, Mode: "chart"}))
	assertCode(t, err, connect.CodeNotFound)
}
