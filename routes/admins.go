package routes

import (
	"net/http"

	"github.com/Rajneesh001-hub/GiveEasy/controllers/admins"
	"github.com/Rajneesh001-hub/GiveEasy/middleware"

	"github.com/gorilla/mux"
)

// SetAdminRoutes registers admin-only routes. Campaign verification lives
// here; the moderation surface hangs off the same PATCH path the public API
// documents.
func SetAdminRoutes(api *mux.Router) {
	api.Handle("/campaigns/{id:[0-9]+}/verify",
		middleware.AdminAuthMiddleware(http.HandlerFunc(admins.VerifyCampaignHandler))).Methods(http.MethodPatch)
}
