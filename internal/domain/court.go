package domain

import (
	"fmt"
	"math"
	"strings"
)

// Court корт клуба
type Court struct {
	ID       int64
	Name     string
	Type     string
	Price    float64 // Цена за один слот (час)
	Slots    []string
	ImageURL string
}

// HasSlot проверяет, что корт предлагает слот label.
// Корт без списка слотов принимает любые метки
func (c *Court) HasSlot(label string) bool {
	if len(c.Slots) == 0 {
		return true
	}
	for _, s := range c.Slots {
		if s == label {
			return true
		}
	}
	return false
}

// DisplayName название корта для денормализации в бронировании
func (c *Court) DisplayName() string {
	if c.Type != "" {
		return c.Type
	}
	return c.Name
}

// Normalize проверяет корт перед записью в каталог и очищает список слотов
func (c *Court) Normalize() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Type = strings.TrimSpace(c.Type)
	c.ImageURL = strings.TrimSpace(c.ImageURL)

	if c.Name == "" {
		return fmt.Errorf("%w: court name is required", ErrValidation)
	}
	if c.Type == "" {
		return fmt.Errorf("%w: court type is required", ErrValidation)
	}
	if math.IsNaN(c.Price) || math.IsInf(c.Price, 0) || c.Price < 0 {
		return fmt.Errorf("%w: court price must be a non-negative number", ErrValidation)
	}

	c.Slots = NormalizeSlots(c.Slots)
	return nil
}
