package service

import (
	"fmt"
	"log"

	"carrental/internal/model"
)

const (
	statusConfirmed = "confirmed"
	statusCancelled = "cancelled"

	periodTimeFormat = "02 Jan 2006 15:04 MST"
)

// SenderService builds and sends reservation notifications. Delivery runs in
// the background; a failed send is logged, never surfaced to the booking
// caller.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendReservationEmail(customer model.Customer, reservation model.Reservation, status string) {
	subject := fmt.Sprintf("Your car rental reservation is %s - ID: %d", status, reservation.ReservationID)
	plainTextBody := fmt.Sprintf(
		"Hello %s %s,\n\nYour reservation is %s.\n\n"+
			"Reservation Details:\n"+
			"Reservation ID: %d\n"+
			"Vehicle Type: %s\n"+
			"Pickup Zip: %d\n"+
			"Pickup: %s\n"+
			"Return: %s\n\n"+
			"Thank you for choosing CarRental.",
		customer.FirstName, customer.LastName, status,
		reservation.ReservationID, reservation.VehicleType, reservation.PickupZip,
		reservation.Period.StartTime.Format(periodTimeFormat),
		reservation.Period.EndTime.Format(periodTimeFormat),
	)
	htmlBody := fmt.Sprintf("<p>%s</p>", plainTextBody)

	go func() {
		if err := SendEmailWithSendGrid(customer.Email, customer.FirstName, subject, plainTextBody, htmlBody); err != nil {
			log.Printf("Failed to send email for reservation %d: %v", reservation.ReservationID, err)
		}
	}()
}

func (s *SenderService) SendReservationSMS(customer model.Customer, reservation model.Reservation, status string) {
	message := fmt.Sprintf("CarRental: reservation %d has been %s!\nPickup: %s.\nMore details in your email.",
		reservation.ReservationID, status,
		reservation.Period.StartTime.Format("02/01 15:04"),
	)

	go func() {
		if err := SendSMS(customer.PhoneNumber, message); err != nil {
			log.Printf("Reservation %d: failed to send SMS to %s: %v", reservation.ReservationID, customer.PhoneNumber, err)
		}
	}()
}
