package billing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hostiva/models"
	"hostiva/utils"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// Page geometry. The invoice is a single fixed-size landscape page; every
// element position below is computed from these constants so the same
// invoice always yields the same layout.
const (
	pageW    = 210.0
	pageH    = 148.0
	margin   = 15.0
	contentW = pageW - 2*margin

	headerH  = 40.0 // top band
	bannerH  = 17.0 // verification codes box, fixed even when codes are missing
	panelH   = 30.0 // customer and service panels
	credsH   = 20.0 // control-panel credentials box
	rowPitch = 3.8
	gap      = 3.0

	logoW = 80.0
	logoH = logoW / 2.616
)

// ComposeByID renders the invoice with the given id as a PDF document.
func (s *DefaultInvoiceDocumentService) ComposeByID(id string) ([]byte, string, error) {
	bundle, err := s.Repo.GetInvoiceBundleByID(id)
	if err != nil {
		return nil, "", &CompositionError{InvoiceID: id, Err: err}
	}
	if bundle == nil {
		return nil, "", ErrInvoiceNotFound
	}

	doc, err := s.render(bundle)
	if err != nil {
		return nil, "", &CompositionError{InvoiceID: id, Err: err}
	}

	fileName := fmt.Sprintf("%s_%s.pdf", s.Company.Name, bundle.Invoice.InvoiceNumber)
	return doc, fileName, nil
}

func (s *DefaultInvoiceDocumentService) render(bundle *models.InvoiceBundle) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(margin, margin, margin)
	pdf.AddPage()

	s.drawHeader(pdf)
	if bundle.Invoice.IsPaidForDisplay() {
		s.drawPaidBadge(pdf)
	}

	y := headerH + gap
	if bundle.Invoice.HasVerificationCodes() {
		s.drawVerificationBanner(pdf, &bundle.Invoice, y)
		y += bannerH + gap
	}

	y = s.drawTitleRow(pdf, &bundle.Invoice, y)
	s.drawCustomerPanel(pdf, &bundle.User, margin, y)
	s.drawServicePanel(pdf, bundle, margin+contentW-panelW, y)
	y += panelH + gap

	if bundle.Service != nil {
		s.drawCredentialsPanel(pdf, bundle.Service, y)
		y += credsH + gap
	}

	s.drawFooter(pdf, y)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const panelW = contentW * 0.48

// drawHeader paints the top band, its decorative circles, the logo (or the
// company name when no usable logo asset exists) and the tagline.
func (s *DefaultInvoiceDocumentService) drawHeader(pdf *fpdf.Fpdf) {
	pdf.SetFillColor(16, 62, 110)
	pdf.Rect(0, 0, pageW, headerH, "F")

	// Semi-transparent accents. Purely cosmetic, order-independent.
	pdf.SetAlpha(0.20, "Normal")
	pdf.SetFillColor(255, 255, 255)
	pdf.Circle(24, 8, 12, "F")
	pdf.Circle(186, 32, 16, "F")
	pdf.Circle(158, 4, 8, "F")
	pdf.Circle(58, 38, 10, "F")
	pdf.SetAlpha(1.0, "Normal")

	if !s.drawLogo(pdf) {
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 26)
		pdf.SetXY(0, 10)
		pdf.CellFormat(pageW, 14, s.Company.Name, "", 0, "C", false, 0, "")
	}

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetXY(0, 32)
	pdf.CellFormat(pageW, 5, s.Company.Tagline, "", 0, "C", false, 0, "")
}

// drawLogo embeds the configured logo image centered in the header band.
// Any read or decode problem falls back to text; composition never fails
// because of the logo.
func (s *DefaultInvoiceDocumentService) drawLogo(pdf *fpdf.Fpdf) bool {
	if s.Company.LogoPath == "" {
		return false
	}
	data, err := os.ReadFile(s.Company.LogoPath)
	if err != nil {
		utils.GetLogger().Warn("invoice logo unavailable, using text fallback",
			zap.String("path", s.Company.LogoPath), zap.Error(err))
		return false
	}

	imgType := strings.ToUpper(strings.TrimPrefix(filepath.Ext(s.Company.LogoPath), "."))
	if imgType == "JPEG" {
		imgType = "JPG"
	}
	if imgType != "PNG" && imgType != "JPG" {
		return false
	}

	opts := fpdf.ImageOptions{ImageType: imgType}
	pdf.RegisterImageOptionsReader("companyLogo", opts, bytes.NewReader(data))
	if pdf.Err() {
		utils.GetLogger().Warn("invoice logo could not be decoded, using text fallback",
			zap.String("path", s.Company.LogoPath))
		pdf.ClearError()
		return false
	}
	pdf.ImageOptions("companyLogo", (pageW-logoW)/2, 2, logoW, logoH, false, opts, 0, "")
	return true
}

// drawPaidBadge renders the settled indicator in the top-right corner.
func (s *DefaultInvoiceDocumentService) drawPaidBadge(pdf *fpdf.Fpdf) {
	const cx, cy, r = pageW - 22.0, 20.0, 11.0
	pdf.SetFillColor(46, 164, 79)
	pdf.Circle(cx, cy, r, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(cx-pdf.GetStringWidth("PAID")/2, cy+1.5, "PAID")
}

// drawVerificationBanner lists the codes embossed on the document. Absent
// codes are omitted, but the box keeps its full height so printed invoices
// always look the same to support staff.
func (s *DefaultInvoiceDocumentService) drawVerificationBanner(pdf *fpdf.Fpdf, inv *models.Invoice, y float64) {
	pdf.SetDrawColor(76, 175, 80)
	pdf.SetFillColor(241, 250, 242)
	pdf.SetLineWidth(0.4)
	pdf.RoundedRect(margin, y, contentW, bannerH, 1.5, "1234", "FD")

	pdf.SetTextColor(27, 94, 32)
	pdf.SetFont("Helvetica", "B", 7.5)
	pdf.Text(margin+4, y+5, "DOCUMENT AUTHENTICITY CODES")

	pdf.SetFont("Helvetica", "", 7)
	lineY := y + 8.8
	for _, code := range []struct{ label, value string }{
		{"VERIFICATION KEY", inv.VerificationKey},
		{"PIN", inv.PinHash},
		{"SIGNATURE", inv.Signature},
	} {
		if code.value == "" {
			continue
		}
		pdf.Text(margin+4, lineY, fmt.Sprintf("%s: %s", code.label, strings.ToUpper(code.value)))
		lineY += 3.6
	}
}

// drawTitleRow renders the document caption on the left and the invoice
// identity on the right. Returns the y where the panels start.
func (s *DefaultInvoiceDocumentService) drawTitleRow(pdf *fpdf.Fpdf, inv *models.Invoice, y float64) float64 {
	pdf.SetTextColor(16, 62, 110)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(margin, y+6, "INVOICE")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(33, 33, 33)
	num := inv.InvoiceNumber
	pdf.Text(pageW-margin-pdf.GetStringWidth(num), y+4, num)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(95, 99, 104)
	date := FormatDate(inv.CreatedAt)
	pdf.Text(pageW-margin-pdf.GetStringWidth(date), y+8.2, date)

	return y + 10
}

// drawCustomerPanel renders the left rounded box with the customer details.
func (s *DefaultInvoiceDocumentService) drawCustomerPanel(pdf *fpdf.Fpdf, user *models.User, x, y float64) {
	rows := [][2]string{
		{"Client", user.DisplayName()},
		{"Email", user.Email},
		{"Phone", orPlaceholder(user.Phone, "—")},
	}
	if user.Address != "" {
		rows = append(rows, [2]string{"Address", user.Address})
	}
	if loc := joinLocation(user.City, user.Country); loc != "" {
		rows = append(rows, [2]string{"Location", loc})
	}
	if user.CompanyName != "" {
		rows = append(rows, [2]string{"Company", user.CompanyName})
	}
	s.drawPanel(pdf, x, y, "BILLED TO", rows)
}

// drawServicePanel renders the right rounded box with the service details
// and the formatted price.
func (s *DefaultInvoiceDocumentService) drawServicePanel(pdf *fpdf.Fpdf, bundle *models.InvoiceBundle, x, y float64) {
	var rows [][2]string
	if svc := bundle.Service; svc != nil {
		rows = append(rows,
			[2]string{"Service", svc.Name},
			[2]string{"Duration", FormatDuration(svc.DurationYears())},
			[2]string{"Period", formatPeriod(svc)},
		)
	}
	if bundle.Domain != nil {
		rows = append(rows, [2]string{"Domain", bundle.Domain.Name})
	}
	rows = append(rows, [2]string{"Price", FormatAmount(bundle.Invoice.Amount)})
	s.drawPanel(pdf, x, y, "SERVICE DETAILS", rows)
}

func formatPeriod(svc *models.Service) string {
	start, end := "—", "—"
	if svc.StartDate != nil {
		start = FormatDate(*svc.StartDate)
	}
	if svc.EndDate != nil {
		end = FormatDate(*svc.EndDate)
	}
	return start + " - " + end
}

func joinLocation(city, country string) string {
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	default:
		return country
	}
}

// drawPanel renders a rounded rectangle with a header caption and a compact
// two-column key/value listing.
func (s *DefaultInvoiceDocumentService) drawPanel(pdf *fpdf.Fpdf, x, y float64, title string, rows [][2]string) {
	pdf.SetDrawColor(210, 214, 220)
	pdf.SetFillColor(250, 250, 251)
	pdf.SetLineWidth(0.3)
	pdf.RoundedRect(x, y, panelW, panelH, 2, "1234", "FD")

	pdf.SetTextColor(16, 62, 110)
	pdf.SetFont("Helvetica", "B", 7.5)
	pdf.Text(x+4, y+5, title)

	lineY := y + 9
	for _, row := range rows {
		pdf.SetTextColor(95, 99, 104)
		pdf.SetFont("Helvetica", "", 7)
		pdf.Text(x+4, lineY, row[0])
		pdf.SetTextColor(33, 33, 33)
		pdf.SetFont("Helvetica", "B", 7)
		pdf.Text(x+26, lineY, row[1])
		lineY += rowPitch
	}
}

// drawCredentialsPanel renders the warning-colored control-panel access box.
// Each credential independently falls back to "N/A".
func (s *DefaultInvoiceDocumentService) drawCredentialsPanel(pdf *fpdf.Fpdf, svc *models.Service, y float64) {
	pdf.SetDrawColor(217, 119, 6)
	pdf.SetFillColor(254, 243, 199)
	pdf.SetLineWidth(0.4)
	pdf.RoundedRect(margin, y, contentW, credsH, 1.5, "1234", "FD")

	pdf.SetTextColor(146, 64, 14)
	pdf.SetFont("Helvetica", "B", 7.5)
	pdf.Text(margin+4, y+5, "CONTROL PANEL ACCESS")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(68, 64, 60)
	pdf.Text(margin+4, y+10, "URL: "+orPlaceholder(svc.URL, "N/A"))
	pdf.Text(margin+4, y+14, "Username: "+orPlaceholder(svc.Username, "N/A"))
	pdf.Text(margin+62, y+10, "Password: "+orPlaceholder(svc.Password, "N/A"))
	pdf.Text(margin+62, y+14, "Server IP: "+orPlaceholder(svc.ServerIP, "N/A"))

	// Decorative rule before the caution lines.
	ruleX := margin + 118.0
	pdf.SetDrawColor(217, 119, 6)
	pdf.Line(ruleX, y+4, ruleX, y+credsH-4)

	pdf.SetFont("Helvetica", "I", 6.5)
	pdf.Text(ruleX+4, y+9, "Keep these credentials strictly confidential.")
	pdf.Text(ruleX+4, y+13, "Change the password after your first sign-in.")
}

// drawFooter renders the thank-you line, divider, support block and the
// copyright line. The year comes from the injected clock at render time.
func (s *DefaultInvoiceDocumentService) drawFooter(pdf *fpdf.Fpdf, y float64) {
	pdf.SetTextColor(16, 62, 110)
	pdf.SetFont("Helvetica", "I", 8)
	thanks := fmt.Sprintf("Thank you for trusting %s!", s.Company.Name)
	pdf.Text((pageW-pdf.GetStringWidth(thanks))/2, y+3, thanks)

	pdf.SetDrawColor(210, 214, 220)
	pdf.SetLineWidth(0.2)
	pdf.Line(margin, y+5.5, pageW-margin, y+5.5)

	pdf.SetTextColor(95, 99, 104)
	pdf.SetFont("Helvetica", "", 6.5)
	lines := []string{
		fmt.Sprintf("Support: %s | %s", s.Company.SupportEmail, s.Company.SupportPhone),
		s.Company.Address,
		"Customer support available 7 days a week, 8am-8pm",
		fmt.Sprintf("© %d %s. All rights reserved.", s.now().Year(), s.Company.Name),
	}
	lineY := y + 9
	for _, line := range lines {
		pdf.Text((pageW-pdf.GetStringWidth(line))/2, lineY, line)
		lineY += 3.2
	}
}
