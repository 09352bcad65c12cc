package dto

import (
	"time"

	"github.com/BruksfildServices01/home-services/internal/domain/booking"
	"github.com/BruksfildServices01/home-services/internal/models"
	"github.com/BruksfildServices01/home-services/internal/timezone"
)

type CustomerDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BookingDTO struct {
	ID          string      `json:"id"`
	Service     string      `json:"service"`
	Price       string      `json:"price"`
	Address     string      `json:"address"`
	Date        string      `json:"date"`
	DisplayDate string      `json:"display_date"`
	Time        string      `json:"time"`
	Status      string      `json:"status"`
	CanCancel   bool        `json:"can_cancel"`
	Customer    CustomerDTO `json:"customer"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewBookingDTO resolves the customer fields from owner at render time.
func NewBookingDTO(b models.Booking, owner *models.User) BookingDTO {
	out := BookingDTO{
		ID:          b.ID,
		Service:     b.Service,
		Price:       b.Price,
		Address:     b.Address,
		Date:        b.Date,
		DisplayDate: timezone.DisplayDate(b.Date),
		Time:        b.Time,
		Status:      b.Status,
		CanCancel:   booking.Status(b.Status) == booking.StatusConfirmed,
		CreatedAt:   b.CreatedAt,
	}
	if owner != nil {
		out.Customer = CustomerDTO{Name: owner.Name, Email: owner.Email, Phone: owner.Phone}
	}
	return out
}

func NewBookingDTOs(bookings []models.Booking, owner *models.User) []BookingDTO {
	out := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingDTO(b, owner))
	}
	return out
}

type BookingListDTO struct {
	Filter   string       `json:"filter"`
	Bookings []BookingDTO `json:"bookings"`
	Total    string       `json:"total"`
	Message  string       `json:"message,omitempty"`
}

type DraftDTO struct {
	Service string `json:"service"`
	Price   string `json:"price"`
	MinDate string `json:"min_date"`
}

type ActivityDTO struct {
	ID          string    `json:"id"`
	Service     string    `json:"service"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
	DisplayDate string    `json:"display_date"`
	Time        string    `json:"time"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewActivityDTOs(bookings []models.Booking) []ActivityDTO {
	out := make([]ActivityDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ActivityDTO{
			ID:          b.ID,
			Service:     b.Service,
			Status:      b.Status,
			Date:        b.Date,
			DisplayDate: timezone.DisplayDate(b.Date),
			Time:        b.Time,
			CreatedAt:   b.CreatedAt,
		})
	}
	return out
}
