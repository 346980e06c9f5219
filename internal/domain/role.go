package domain

import (
	"fmt"
	"strings"
)

// Role роль пользователя клуба. Закрытое перечисление: значения вне списка не парсятся
type Role uint8

const (
	RoleUser Role = iota + 1
	RoleMember
	RoleAdmin
)

// ParseRole разбирает роль из claim токена
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return RoleUser, nil
	case "member":
		return RoleMember, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleMember:
		return "member"
	case RoleAdmin:
		return "admin"
	default:
		return "invalid"
	}
}

// CanApprove может ли роль одобрять и отклонять бронирования
func (r Role) CanApprove() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleUser, RoleMember:
		return false
	default:
		return false
	}
}

// CanManageCoupons может ли роль управлять купонами
func (r Role) CanManageCoupons() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleUser, RoleMember:
		return false
	default:
		return false
	}
}

// CanManageCourts может ли роль изменять каталог кортов
func (r Role) CanManageCourts() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleUser, RoleMember:
		return false
	default:
		return false
	}
}

// CanBook может ли роль создавать бронирования
func (r Role) CanBook() bool {
	switch r {
	case RoleUser, RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanViewAllBookings может ли роль видеть чужие бронирования и платежи
func (r Role) CanViewAllBookings() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleUser, RoleMember:
		return false
	default:
		return false
	}
}

// Identity аутентифицированный пользователь, выданный провайдером идентификации
type Identity struct {
	Subject string
	Email   string
	Role    Role
}

// Owns проверяет, что бронирование (или платеж) с email принадлежит пользователю
func (i Identity) Owns(email string) bool {
	return i.Email != "" && strings.EqualFold(i.Email, email)
}
