package services

import (
	"encoding/json"
	"fmt"

	"lesnoy/dto"
	"lesnoy/models"
	"lesnoy/services/logger"

	"github.com/olahol/melody"
)

// Notifier fans events out to connected staff dashboards. Delivery is
// best-effort; a failed broadcast never fails the originating request.
type Notifier struct {
	m   *melody.Melody
	log logger.Logger
}

func NewNotifier(m *melody.Melody, log logger.Logger) *Notifier {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &Notifier{m: m, log: log}
}

func (n *Notifier) broadcast(event string, payload interface{}) {
	if n == nil || n.m == nil {
		return
	}
	data, err := json.Marshal(map[string]interface{}{
		"event":   event,
		"payload": payload,
	})
	if err != nil {
		n.log.Error("Failed to marshal %s notification: %v", event, err)
		return
	}
	if err := n.m.Broadcast(data); err != nil {
		n.log.Error("Failed to broadcast %s notification: %v", event, err)
	}
}

// NotifyNewBooking announces a fresh guest submission.
func (n *Notifier) NotifyNewBooking(booking *models.Booking) {
	n.broadcast("booking.created", map[string]interface{}{
		"id":           booking.ID,
		"code":         booking.Code,
		"houseId":      booking.HouseID,
		"guestName":    booking.GuestName,
		"checkInDate":  booking.CheckInDate.Format("2006-01-02"),
		"checkOutDate": booking.CheckOutDate.Format("2006-01-02"),
	})
	if n != nil && n.log != nil {
		n.log.Info("New booking %s for house %d (%s)", booking.Code, booking.HouseID, booking.GuestName)
	}
}

// NotifyContactMessage forwards a guest feedback message to staff.
// Messages are not persisted; the broadcast and the log line are the
// delivery.
func (n *Notifier) NotifyContactMessage(msg *dto.ContactMessageRequest) {
	n.broadcast("contact.message", msg)
	if n != nil && n.log != nil {
		n.log.Info("Contact message from %s <%s> %s: %s",
			msg.Name, msg.Email, msg.Phone, truncate(msg.Message, 200))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return fmt.Sprintf("%s...", s[:max])
}
