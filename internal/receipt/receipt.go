package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Line is one printed invoice row.
type Line struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Invoice is everything the receipt layout needs. It is rendered purely from
// this data plus the current date.
type Invoice struct {
	Number        string
	CustomerName  string
	CustomerPhone string
	Lines         []Line
	Total         decimal.Decimal
	Notes         string
}

// Generator renders a fixed single-page receipt layout and saves it under
// the configured directory as invoice_<number>.pdf.
type Generator struct {
	dir    string
	logger *zap.Logger
}

func NewGenerator(dir string, logger *zap.Logger) *Generator {
	return &Generator{dir: dir, logger: logger}
}

func (g *Generator) Generate(inv Invoice) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 12, "INVOICE", "", 1, "C", false, 0, "")

	// Metadata block
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(20)
	pdf.CellFormat(0, 5, fmt.Sprintf("Invoice #: %s", inv.Number), "", 1, "L", false, 0, "")
	pdf.SetX(20)
	pdf.CellFormat(0, 5, fmt.Sprintf("Date: %s", time.Now().Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.SetX(20)
	pdf.CellFormat(0, 5, fmt.Sprintf("Customer: %s", inv.CustomerName), "", 1, "L", false, 0, "")
	pdf.SetX(20)
	pdf.CellFormat(0, 5, fmt.Sprintf("Phone: %s", inv.CustomerPhone), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Line-item table
	widths := []float64{80, 25, 35, 35}
	headers := []string{"Item", "Quantity", "Unit Price", "Total"}

	pdf.SetX(20)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)
	for i, line := range inv.Lines {
		fill := i%2 == 1
		pdf.SetFillColor(235, 235, 235)
		lineTotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		pdf.SetX(20)
		pdf.CellFormat(widths[0], 7, line.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[2], 7, "Rs. "+line.UnitPrice.StringFixed(2), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(widths[3], 7, "Rs. "+lineTotal.StringFixed(2), "1", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	// Grand total
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(20)
	pdf.CellFormat(175, 8, fmt.Sprintf("Total Amount: Rs. %s", inv.Total.StringFixed(2)), "", 1, "R", false, 0, "")

	// Notes
	if inv.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetX(20)
		pdf.CellFormat(0, 5, "Notes:", "", 1, "L", false, 0, "")
		pdf.SetX(20)
		pdf.MultiCell(170, 5, inv.Notes, "", "L", false)
	}

	// Footer
	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, "Thank you for your business!", "", 1, "C", false, 0, "")

	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("create receipt directory: %w", err)
	}

	path := filepath.Join(g.dir, fmt.Sprintf("invoice_%s.pdf", inv.Number))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write receipt: %w", err)
	}

	g.logger.Info("receipt generated",
		zap.String("invoice_number", inv.Number),
		zap.String("path", path))
	return path, nil
}
