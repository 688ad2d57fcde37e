package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Rajneesh001-hub/GiveEasy/database"
	"github.com/Rajneesh001-hub/GiveEasy/ledger"
	"github.com/Rajneesh001-hub/GiveEasy/utils"

	"github.com/gorilla/mux"
)

// CampaignDonationsHandler GET /donations/campaign/{id}?limit=
// Public feed of recent completed donations, donor names only. Pending and
// failed rows are never exposed here.
func CampaignDonationsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	limit := 10
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	agg := ledger.NewAggregator(database.DB)
	feed, err := agg.CampaignFeed(uint(id), limit)
	if err != nil {
		log.Printf("[donations] campaign feed %d error: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: feed})
}
