package service

import (
	"log"
	"time"

	"carrental/internal/repository"
)

// JobService runs the scheduled maintenance passes. The booking workflow
// already sweeps on every call; the cron job only keeps the store fresh while
// the API is idle.
type JobService struct {
	Store *repository.ReservationStore
}

func NewJobService(store *repository.ReservationStore) *JobService {
	return &JobService{Store: store}
}

// MarkExpiredReservations deactivates every active reservation whose end time
// has passed.
func (s *JobService) MarkExpiredReservations() {
	swept := s.Store.SweepExpired(time.Now().UTC())
	if swept == 0 {
		return
	}
	log.Printf("Cron Job: marked %d reservations as expired", swept)
}
