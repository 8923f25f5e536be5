// Package pdf renders manifests and labels locally as PDF files. It is the
// fallback implementation of the generation ports for deployments that run
// without the remote document service.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"fulfillment/internal/core/domain/model/manifest"
)

const fontName = "Helvetica"

// Generator renders manifest and label PDFs into an output directory. File
// names carry the group key, so regenerating a group overwrites its previous
// documents instead of piling up copies.
type Generator struct {
	outputDir string
}

// NewGenerator creates a PDF generator writing into outputDir. The directory
// is created when missing.
func NewGenerator(outputDir string) (*Generator, error) {
	if outputDir == "" {
		return nil, fmt.Errorf("pdf output directory is required")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create pdf output directory: %w", err)
	}

	return &Generator{outputDir: outputDir}, nil
}

// GenerateManifest renders the shipping manifest for one group.
func (g *Generator) GenerateManifest(_ context.Context, req manifest.Request) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(fontName, "B", 14)
	pdf.CellFormat(0, 10, "Shipping Manifest", "", 1, "C", false, 0, "")

	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addPartyBlock(pdf, "Supplier", []string{
		safeValue(req.SupplierName),
		fmt.Sprintf("ID: %s", req.SupplierID),
		fmt.Sprintf("Address: %s", safeValue(req.SupplierAddress)),
		fmt.Sprintf("Phone: %s", safeValue(req.SupplierPhone)),
	})
	pdf.Ln(2)

	addPartyBlock(pdf, "Courier", []string{
		safeValue(req.CourierName),
		fmt.Sprintf("ID: %s", req.CourierID),
	})
	pdf.Ln(2)

	addPartyBlock(pdf, "Deliver To", customerLines(req))
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Items", "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)

	headers := []string{"Line", "Product", "SKU", "Qty", "Unit Price", "Amount"}
	widths := []float64{25, 60, 30, 15, 25, 25}
	drawTableRow(pdf, headers, widths, true)

	for _, li := range req.Items {
		drawTableRow(pdf, []string{
			li.ID(),
			li.Product(),
			li.SKU(),
			fmt.Sprintf("%d", li.Quantity()),
			fmt.Sprintf("%.2f", li.UnitPrice()),
			fmt.Sprintf("%.2f", li.Amount()),
		}, widths, false)
	}

	return g.write(pdf, fmt.Sprintf("manifest_%s.pdf", req.SupplierID+"_"+req.CourierID))
}

// GenerateLabel renders the shipping label for one group. Labels carry only
// the routing identities, not the item table.
func (g *Generator) GenerateLabel(_ context.Context, req manifest.Request) error {
	pdf := gofpdf.New("L", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont(fontName, "B", 16)
	pdf.CellFormat(0, 12, "Shipping Label", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	addPartyBlock(pdf, "From", []string{
		safeValue(req.SupplierName),
		safeValue(req.SupplierAddress),
	})
	pdf.Ln(2)

	addPartyBlock(pdf, "To", customerLines(req))
	pdf.Ln(2)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Carrier: %s", safeValue(req.CourierName)), "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Packages: %d", len(req.Items)), "", 1, "L", false, 0, "")

	return g.write(pdf, fmt.Sprintf("label_%s.pdf", req.SupplierID+"_"+req.CourierID))
}

func (g *Generator) write(pdf *gofpdf.Fpdf, filename string) error {
	path := filepath.Join(g.outputDir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func customerLines(req manifest.Request) []string {
	return []string{
		safeValue(req.Customer.Name()),
		fmt.Sprintf("Address: %s", safeValue(req.Customer.Address())),
		fmt.Sprintf("Postal code: %s", safeValue(req.Customer.PostalCode())),
		fmt.Sprintf("Phone: %s", safeValue(req.Customer.Phone())),
	}
}

func addPartyBlock(pdf *gofpdf.Fpdf, title string, lines []string) {
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
