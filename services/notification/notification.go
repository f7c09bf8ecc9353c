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

// OrderMessageBuilder dựng thông điệp sự kiện order đẩy lên console vận hành
type OrderMessageBuilder struct {
	orderNumber string
	event       string
}

func NewOrderMessageBuilder(orderNumber, event string) *OrderMessageBuilder {
	return &OrderMessageBuilder{
		orderNumber: orderNumber,
		event:       event,
	}
}

func (b *OrderMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Order %s: %s", b.orderNumber, b.event)
}
