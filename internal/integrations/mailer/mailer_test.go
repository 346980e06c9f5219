package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/gomail.v2"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func testReceipt() Receipt {
	return Receipt{
		Booking: &domain.Booking{ID: 42, CourtType: "Badminton", Date: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), Slots: []string{"09:00-10:00", "10:00-11:00"}},
		Payment: &domain.Payment{ID: 5, BookingID: 42, UserEmail: "player@club.test", Amount: 400, OriginalAmount: 500, Discount: 100, TransactionID: "pay_1", PaymentDate: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)},
		PDF:     []byte("%PDF-1.3"),
	}
}

func TestSendReceipt(t *testing.T) {
	sender := &fakeSender{}
	m := NewWithSender(sender, "club@club.test")

	require.NoError(t, m.SendReceipt(context.Background(), testReceipt()))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"player@club.test"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"club@club.test"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"Payment receipt for booking #42"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "receipt-5.pdf")
	assert.Contains(t, buf.String(), "09:00-10:00, 10:00-11:00")
}

func TestSendReceipt_Errors(t *testing.T) {
	m := NewWithSender(&fakeSender{err: errors.New("smtp down")}, "club@club.test")
	assert.ErrorIs(t, m.SendReceipt(context.Background(), testReceipt()), ErrSend)

	assert.ErrorIs(t, m.SendReceipt(context.Background(), Receipt{}), ErrNoRecipient)
}
