package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"carrental/internal/api"
	"carrental/internal/repository"
	"carrental/internal/service"
)

func main() {
	godotenv.Load()

	inventory := repository.NewInventoryCatalog(repository.DefaultInventory())
	customers := repository.NewCustomerDirectory()
	store := repository.NewReservationStore(customers, inventory)

	sender := service.NewSenderService()
	svc := service.NewBookingService(store, customers, sender)
	jobSvc := service.NewJobService(store)

	c := cron.New()
	if _, err := c.AddFunc("@every 15m", jobSvc.MarkExpiredReservations); err != nil {
		log.Fatalf("Failed to schedule expiry job: %v", err)
	}
	c.Start()

	reservationHandler := api.NewReservationHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/api/availability", reservationHandler.CheckAvailability).Methods("POST")
	r.HandleFunc("/api/reservations", reservationHandler.CreateReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.GetReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.UpdateReservation).Methods("PUT")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.CancelReservation).Methods("DELETE")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	loggedRouter := handlers.CombinedLoggingHandler(os.Stdout, r)
	corsRouter := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(loggedRouter)

	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, corsRouter))
}
