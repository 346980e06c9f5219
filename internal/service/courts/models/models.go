package models

import "github.com/m04kA/SMC-ClubBookingService/internal/domain"

// CourtRequest запрос на создание или полное обновление корта
type CourtRequest struct {
	Name     string   `json:"name" validate:"required,max=255"`
	Type     string   `json:"type" validate:"required,max=100"`
	Price    float64  `json:"price" validate:"gte=0"`
	Slots    []string `json:"slots" validate:"max=48,dive,max=32"`
	ImageURL string   `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// ToDomain собирает корт из запроса
func (r *CourtRequest) ToDomain() *domain.Court {
	return &domain.Court{
		Name:     r.Name,
		Type:     r.Type,
		Price:    r.Price,
		Slots:    r.Slots,
		ImageURL: r.ImageURL,
	}
}

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Price    float64  `json:"price"`
	Slots    []string `json:"slots"`
	ImageURL string   `json:"imageUrl,omitempty"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}

	slots := c.Slots
	if slots == nil {
		slots = []string{}
	}

	return &CourtResponse{
		ID:       c.ID,
		Name:     c.Name,
		Type:     c.Type,
		Price:    c.Price,
		Slots:    slots,
		ImageURL: c.ImageURL,
	}
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	resp := &CourtListResponse{Courts: make([]CourtResponse, 0, len(courts))}
	for _, c := range courts {
		if court := FromDomainCourt(c); court != nil {
			resp.Courts = append(resp.Courts, *court)
		}
	}
	return resp
}
