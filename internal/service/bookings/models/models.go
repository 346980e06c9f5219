package models

import (
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Email  *string `json:"email,omitempty"`  // Учитывается только для администратора
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
	Limit  uint64  `json:"limit,omitempty"`
}

// UpdateStatusRequest запрос на решение администратора
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64    `json:"id"`
	UserEmail     string   `json:"userEmail"`
	CourtID       int64    `json:"courtId"`
	CourtType     string   `json:"courtType"`
	Date          string   `json:"date"` // "2025-10-15"
	Slots         []string `json:"slots"`
	Price         float64  `json:"price"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"paymentStatus"`

	CouponUsed  *string    `json:"couponUsed,omitempty"`
	PaidAmount  *float64   `json:"paidAmount,omitempty"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	paymentStatus := b.PaymentStatus
	// Устаревшее значение отдаем в каноническом виде
	if paymentStatus == domain.PaymentUnpaid {
		paymentStatus = domain.PaymentNotPaid
	}

	return &BookingResponse{
		ID:            b.ID,
		UserEmail:     b.UserEmail,
		CourtID:       b.CourtID,
		CourtType:     b.CourtType,
		Date:          b.Date.Format(domain.DateFormat),
		Slots:         b.Slots,
		Price:         b.BasePrice,
		Status:        string(b.Status),
		PaymentStatus: string(paymentStatus),
		CouponUsed:    b.CouponUsed,
		PaidAmount:    b.PaidAmount,
		PaymentDate:   b.PaymentDate,
		ApprovedAt:    b.ApprovedAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
