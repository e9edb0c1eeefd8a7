package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mmynk/pricewise/internal/chart"
	"github.com/mmynk/pricewise/internal/models"
)

// Bar colors cycle through this palette.
var palette = []color.NRGBA{
	{R: 0x36, G: 0xA2, B: 0xEB, A: 0xFF},
	{R: 0xFF, G: 0xCE, B: 0x56, A: 0xFF},
	{R: 0x4B, G: 0xC0, B: 0xC0, A: 0xFF},
	{R: 0x99, G: 0x66, B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0x9F, B: 0x40, A: 0xFF},
}

var (
	white     = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	panelBg   = color.NRGBA{R: 0xF9, G: 0xFA, B: 0xFB, A: 0xFF}
	textColor = color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF}
	gridColor = color.NRGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF}
	red       = color.NRGBA{R: 0xDC, G: 0x26, B: 0x26, A: 0xFF}
)

const (
	padding    = 16
	labelWidth = 140
	lineHeight = 20
	axisHeight = 40
	maxBar     = 32

	glyphWidth = 7 // basicfont.Face7x13
	axisTitle  = "Distribution, %"
)

func drawText(dst draw.Image, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func truncate(s string, width int) string {
	n := width / glyphWidth
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "~"
}

// renderChart draws horizontal bars on a 0–100 axis.
func renderChart(series []chart.Point, width, height int) *image.NRGBA {
	img := imaging.New(width, height, panelBg)

	plotLeft := padding + labelWidth
	plotRight := width - padding
	plotTop := padding
	plotBottom := height - axisHeight
	plotWidth := plotRight - plotLeft

	// Grid lines and tick labels every 20%.
	for tick := 0; tick <= chart.AxisMax; tick += 20 {
		x := plotLeft + plotWidth*tick/chart.AxisMax
		fillRect(img, image.Rect(x, plotTop, x+1, plotBottom), gridColor)
		label := fmt.Sprintf("%d", tick)
		drawText(img, x-len(label)*glyphWidth/2, plotBottom+16, label, textColor)
	}
	drawText(img, plotLeft+(plotWidth-len(axisTitle)*glyphWidth)/2, plotBottom+32, axisTitle, textColor)

	if len(series) == 0 {
		return img
	}

	slot := (plotBottom - plotTop) / len(series)
	bar := slot * 7 / 10
	if bar > maxBar {
		bar = maxBar
	}
	if bar < 1 {
		bar = 1
	}

	for i, p := range series {
		top := plotTop + i*slot + (slot-bar)/2
		drawText(img, padding, top+bar/2+5, truncate(p.Label, labelWidth-8), textColor)

		percent := p.Percent
		if percent < 0 {
			percent = 0
		}
		if percent > chart.AxisMax {
			percent = chart.AxisMax
		}
		w := int(float64(plotWidth) * percent / chart.AxisMax)
		if w > 0 {
			fillRect(img, image.Rect(plotLeft, top, plotLeft+w, top+bar), palette[i%len(palette)])
		}
	}
	return img
}

type textLine struct {
	text  string
	color color.Color
}

func cardLines(b *models.Breakdown) []textLine {
	p := b.Product
	lines := []textLine{
		{text: p.Name, color: textColor},
		{text: fmt.Sprintf("Base price (100%%): %.2f", p.Price), color: textColor},
	}
	if b.ShowDiscount {
		lines = append(lines, textLine{text: fmt.Sprintf("Discount (-%.2f%%)", p.Discount), color: textColor})
	}
	if b.ShowCommission {
		lines = append(lines, textLine{text: fmt.Sprintf("Commission (-%.2f%%)", p.Commission), color: textColor})
	}
	lines = append(lines,
		textLine{text: fmt.Sprintf("Available for distribution: %.2f%%", b.AvailablePercent), color: textColor},
		textLine{text: fmt.Sprintf("Final price: %.2f", b.FinalPrice), color: textColor},
	)

	remaining := textLine{
		text:  fmt.Sprintf("Unallocated: %.2f%% of %.2f%%", b.RemainingPercent, b.AvailablePercent),
		color: textColor,
	}
	if b.OverAllocated {
		remaining.color = red
	}
	lines = append(lines, remaining)

	for _, a := range b.Allocations {
		lines = append(lines, textLine{
			text:  fmt.Sprintf("%-24s %7.2f%% %12.2f", truncate(a.Role.Name, 24*glyphWidth), a.Role.Percent, a.Amount),
			color: textColor,
		})
	}
	return lines
}

// renderCard stacks the text summary above the chart panel.
func renderCard(b *models.Breakdown, panel *image.NRGBA) *image.NRGBA {
	lines := cardLines(b)
	header := padding + len(lines)*lineHeight + padding
	height := header + panel.Bounds().Dy() + padding

	img := imaging.New(Width, height, white)
	for i, l := range lines {
		drawText(img, padding, padding+(i+1)*lineHeight-6, l.text, l.color)
	}
	return imaging.Paste(img, panel, image.Pt(0, header))
}
