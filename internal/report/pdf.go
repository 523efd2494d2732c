package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

// PDFConfig holds the PDF exporter settings. Arabic output needs a Unicode
// TTF; the core PDF fonts only cover Latin text.
type PDFConfig struct {
	FontPath string // TTF with Arabic glyph coverage
	FontName string // family name registered for the font
}

// PDFGenerator writes the rendered report as a single-page A4 PDF, the
// server-side replacement for the browser's print-to-PDF.
type PDFGenerator struct {
	cfg PDFConfig
	hdr Config
}

// NewPDFGenerator creates a PDF generator sharing the renderer's header
// boilerplate.
func NewPDFGenerator(cfg PDFConfig, hdr Config) *PDFGenerator {
	if cfg.FontName == "" {
		cfg.FontName = "Report"
	}
	return &PDFGenerator{cfg: cfg, hdr: hdr}
}

// Generate writes the PDF for one rendered document to w.
func (g *PDFGenerator) Generate(record models.InspectionRecord, doc models.ReportDocument, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)

	font := "Helvetica"
	if g.cfg.FontPath != "" {
		pdf.AddUTF8Font(g.cfg.FontName, "", g.cfg.FontPath)
		pdf.AddUTF8Font(g.cfg.FontName, "B", g.cfg.FontPath)
		font = g.cfg.FontName
	}
	pdf.RTL()
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// Header block
	pdf.SetFont(font, "B", 14)
	pdf.CellFormat(contentW, 8, g.hdr.MinistryName, "", 1, "C", false, 0, "")
	pdf.SetFont(font, "", 12)
	pdf.CellFormat(contentW, 7, g.hdr.DepartmentName, "", 1, "C", false, 0, "")
	pdf.SetFont(font, "B", 16)
	pdf.CellFormat(contentW, 10, g.hdr.ReportTitle, "", 1, "C", false, 0, "")
	pdf.SetFont(font, "", 11)
	pdf.CellFormat(contentW, 7, g.hdr.ReportSubtitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Inspection metadata
	half := contentW / 2
	pdf.SetFont(font, "", 11)
	pdf.CellFormat(half, 8, "اسم القائم بالمرور: "+record.InspectorName, "1", 0, "R", false, 0, "")
	pdf.CellFormat(half, 8, "الجهة: "+record.Location, "1", 1, "R", false, 0, "")
	pdf.CellFormat(half, 8, "الساعة: "+doc.FormattedTime, "1", 0, "R", false, 0, "")
	pdf.CellFormat(half, 8, "تاريخ المرور: "+doc.FormattedDate, "1", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Result line and count
	pdf.SetFont(font, "B", 11)
	pdf.CellFormat(contentW, 7, "نتيجة المرور:", "", 1, "R", false, 0, "")
	pdf.SetFont(font, "", 11)
	result := resultNoAbsences
	count := countNone
	if doc.HasAbsences {
		result = resultWithAbsences
		count = fmt.Sprintf("%d", doc.AbsenceCount)
	}
	pdf.CellFormat(contentW, 7, "بالمرور علي "+record.Location+" لعمل انضباط إداري للعاملين تبين لنا:", "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW, 7, result, "", 1, "R", false, 0, "")
	pdf.SetFont(font, "B", 11)
	pdf.CellFormat(contentW, 7, "عدد الحالات:- "+count, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	g.drawTable(pdf, font, contentW, doc.Rows)

	// Opinion
	pdf.Ln(4)
	pdf.SetFont(font, "B", 11)
	pdf.CellFormat(contentW, 7, "الرأي:", "", 1, "R", false, 0, "")
	pdf.SetFont(font, "", 11)
	opinion := opinionFiled
	if doc.HasAbsences {
		opinion = opinionReferral
	}
	pdf.MultiCell(contentW, 6, opinion, "1", "R", false)
	pdf.Ln(2)
	pdf.CellFormat(contentW, 6, "والأمر معروض ومفوض لسيادتكم،،", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, "وتفضلوا سيادتكم بقبول وافر التقدير والاحترام،", "", 1, "C", false, 0, "")

	// Signatures
	pdf.Ln(8)
	pdf.SetFont(font, "B", 11)
	pdf.CellFormat(half, 7, "مدير الإدارة", "", 0, "C", false, 0, "")
	pdf.CellFormat(half, 7, "مفتش مالي وإداري", "", 1, "C", false, 0, "")
	pdf.SetFont(font, "", 11)
	pdf.CellFormat(half, 7, g.hdr.ManagerName, "", 0, "C", false, 0, "")
	pdf.CellFormat(half, 7, record.InspectorName, "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

// Column widths mirror the printed form: 10/23/30/12/25 percent.
func (g *PDFGenerator) drawTable(pdf *fpdf.Fpdf, font string, contentW float64, rows []models.TableRow) {
	widths := [5]float64{
		contentW * 0.10, contentW * 0.23, contentW * 0.30, contentW * 0.12, contentW * 0.25,
	}
	headers := [5]string{"م", "الوظيفة", "الاسم", "عدد الحالات", "ملاحظات"}

	pdf.SetFont(font, "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(font, "", 10)
	for _, row := range rows {
		caseCount := row.CaseCount
		if row.Empty {
			caseCount = ""
		}
		pdf.CellFormat(widths[0], 8, fmt.Sprintf("%d", row.Index), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 8, row.Position, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 8, row.Name, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 8, caseCount, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 8, row.Annotation, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
}
