package routes

import (
	"net/http"
	"time"

	"github.com/Rajneesh001-hub/GiveEasy/controllers"
	"github.com/Rajneesh001-hub/GiveEasy/controllers/auth"
	"github.com/Rajneesh001-hub/GiveEasy/controllers/users"
	"github.com/Rajneesh001-hub/GiveEasy/middleware"

	"github.com/gorilla/mux"
)

// UsersRoutes registers the public and donor-facing routes on the given subrouter.
func UsersRoutes(api *mux.Router) {
	// Rate limiter login/register: 60 per IP per 5 minutes
	loginLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	// Rate limiter session: 120 reads, 60 writes per user per minute
	userLimiter := middleware.NewUserRateLimiter(120, 60, 60)

	// Register & Login
	api.Handle("/auth/register", loginLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/auth/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/auth/logout", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutHandler)))).Methods(http.MethodPost)

	// Campaigns: public reads, authenticated writes
	api.Handle("/campaigns", http.HandlerFunc(controllers.ListCampaignsHandler)).Methods(http.MethodGet)
	api.Handle("/campaigns", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.CreateCampaignHandler)))).Methods(http.MethodPost)
	api.Handle("/campaigns/{id:[0-9]+}", http.HandlerFunc(controllers.GetCampaignHandler)).Methods(http.MethodGet)
	api.Handle("/campaigns/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UpdateCampaignHandler)))).Methods(http.MethodPut)
	api.Handle("/campaigns/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.DeleteCampaignHandler)))).Methods(http.MethodDelete)
	api.Handle("/campaigns/{id:[0-9]+}/image", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UploadCampaignImageHandler)))).Methods(http.MethodPost)

	// Donations: the public campaign feed plus donor endpoints
	api.Handle("/donations", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.SubmitDonationHandler)))).Methods(http.MethodPost)
	api.Handle("/donations/user", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.MyDonationsHandler)))).Methods(http.MethodGet)
	api.Handle("/donations/stats", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.MyStatsHandler)))).Methods(http.MethodGet)
	api.Handle("/donations/campaign/{id:[0-9]+}", http.HandlerFunc(controllers.CampaignDonationsHandler)).Methods(http.MethodGet)
	api.Handle("/donations/{id:[0-9]+}", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.GetDonationHandler)))).Methods(http.MethodGet)
}
