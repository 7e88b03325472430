package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/savoria/savoria/handlers"
	"github.com/savoria/savoria/middlewares"
	"github.com/savoria/savoria/models"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes() *Server {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	router.HandleFunc("/register", handlers.Register).Methods("POST")
	router.HandleFunc("/login", handlers.Login).Methods("POST")
	router.HandleFunc("/refresh", handlers.RefreshToken).Methods("POST")

	// public site
	router.HandleFunc("/menu", handlers.ListMenu).Methods("GET")
	router.HandleFunc("/orders", handlers.CreateOrder).Methods("POST")
	router.HandleFunc("/reservations", handlers.CreateReservation).Methods("POST")
	router.HandleFunc("/reviews", handlers.ListApprovedReviews).Methods("GET")
	router.HandleFunc("/reviews", handlers.CreateReview).Methods("POST")
	router.HandleFunc("/contact", handlers.CreateContactMessage).Methods("POST")

	authRoutes := router.PathPrefix("/api").Subrouter()
	authRoutes.Use(middlewares.AuthMiddleware)
	authRoutes.HandleFunc("/logout", handlers.Logout).Methods("POST")
	authRoutes.HandleFunc("/me", handlers.Me).Methods("GET")

	// admin dashboard
	admin := authRoutes.PathPrefix("/admin").Subrouter()
	admin.Use(middlewares.RoleBasedMiddleware(models.RoleAdmin))

	admin.HandleFunc("/menu", handlers.ListAllMenuItems).Methods("GET")
	admin.HandleFunc("/menu", handlers.CreateMenuItem).Methods("POST")
	admin.HandleFunc("/menu/{id}", handlers.UpdateMenuItem).Methods("PUT")
	admin.HandleFunc("/menu/{id}", handlers.DeleteMenuItem).Methods("DELETE")

	admin.HandleFunc("/orders", handlers.ListOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", handlers.UpdateOrderStatus).Methods("PATCH")

	admin.HandleFunc("/reservations", handlers.ListReservations).Methods("GET")
	admin.HandleFunc("/reservations/{id}/status", handlers.UpdateReservationStatus).Methods("PATCH")

	admin.HandleFunc("/reviews", handlers.ListReviews).Methods("GET")
	admin.HandleFunc("/reviews/{id}/status", handlers.UpdateReviewStatus).Methods("PATCH")
	admin.HandleFunc("/reviews/{id}", handlers.DeleteReview).Methods("DELETE")

	admin.HandleFunc("/contact", handlers.ListContactMessages).Methods("GET")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
