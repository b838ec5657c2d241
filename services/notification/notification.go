package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingMessageBuilder dựng thông báo cho các sự kiện booking
type BookingMessageBuilder struct {
	bookingID  uint
	roomNumber string
	status     string
}

func NewBookingMessageBuilder(bookingID uint, roomNumber, status string) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		bookingID:  bookingID,
		roomNumber: roomNumber,
		status:     status,
	}
}

func (b *BookingMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Booking %d - phòng %s: %s", b.bookingID, b.roomNumber, b.status)
}
