package reports

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tealeg/xlsx"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

const exportSheet = "Bookings"

var exportHeaders = []string{
	"Booking ID", "User", "Court", "Date", "Slots", "Price",
	"Status", "Payment", "Coupon", "Paid Amount", "Created At",
}

// RenderBookings формирует XLSX со списком бронирований
func RenderBookings(bookings []*domain.Booking) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("%w: add sheet: %v", ErrRender, err)
	}

	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font

	headerRow := sheet.AddRow()
	for _, h := range exportHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		cell.SetStyle(style)
	}

	var total float64
	for _, b := range bookings {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(b.ID))
		row.AddCell().SetString(b.UserEmail)
		row.AddCell().SetString(b.CourtType)
		row.AddCell().SetString(b.Date.Format(domain.DateFormat))
		row.AddCell().SetString(strings.Join(b.Slots, ", "))
		row.AddCell().SetFloat(b.BasePrice)
		row.AddCell().SetString(string(b.Status))
		row.AddCell().SetString(string(b.PaymentStatus))
		coupon := ""
		if b.CouponUsed != nil {
			coupon = *b.CouponUsed
		}
		row.AddCell().SetString(coupon)
		if b.PaidAmount != nil {
			row.AddCell().SetFloat(*b.PaidAmount)
			total += *b.PaidAmount
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetString(b.CreatedAt.Format("2006-01-02 15:04"))
	}

	sheet.AddRow()
	summary := sheet.AddRow()
	summary.AddCell().SetString("Total paid")
	summary.Cells[0].SetStyle(style)
	summary.AddCell().SetString(fmt.Sprintf("%.2f", total))

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: write xlsx: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
