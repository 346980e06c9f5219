package reports

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

const clubTitle = "SMC SPORTS CLUB - Payment Receipt"

// RenderReceipt формирует PDF-чек по платежу. booking может быть nil
func RenderReceipt(p *domain.Payment, booking *domain.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Receipt #%d", p.ID), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, clubTitle)
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Receipt #%d for booking #%d", p.ID, p.BookingID))
	pdf.Ln(6)
	pdf.Cell(0, 7, "Customer: "+p.UserEmail)
	pdf.Ln(6)
	pdf.Cell(0, 7, "Paid at: "+p.PaymentDate.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	if booking != nil {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Booking")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		receiptRow(pdf, "Court", booking.CourtType)
		receiptRow(pdf, "Date", booking.Date.Format(domain.DateFormat))
		receiptRow(pdf, "Slots", strings.Join(booking.Slots, ", "))
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Payment")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	receiptRow(pdf, "Original amount", fmt.Sprintf("%.2f", p.OriginalAmount))
	receiptRow(pdf, "Discount", fmt.Sprintf("%.2f", p.Discount))
	if p.CouponUsed != nil {
		receiptRow(pdf, "Coupon", *p.CouponUsed)
	}
	pdf.SetFont("Arial", "B", 11)
	receiptRow(pdf, "Amount paid", fmt.Sprintf("%.2f", p.Amount))
	pdf.SetFont("Arial", "", 11)
	method := p.PaymentMethod
	if p.CardLastFour != nil {
		method += " **** " + *p.CardLastFour
	}
	receiptRow(pdf, "Method", method)
	receiptRow(pdf, "Transaction", p.TransactionID)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: receipt: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func receiptRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(60, 8, label, "1", 0, "L", true, 0, "")
	pdf.CellFormat(110, 8, value, "1", 0, "L", false, 0, "")
	pdf.Ln(-1)
}
