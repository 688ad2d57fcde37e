package users

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Rajneesh001-hub/GiveEasy/database"
	"github.com/Rajneesh001-hub/GiveEasy/ledger"
	"github.com/Rajneesh001-hub/GiveEasy/middleware"
	"github.com/Rajneesh001-hub/GiveEasy/policy"
	"github.com/Rajneesh001-hub/GiveEasy/utils"

	"github.com/gorilla/mux"
)

type DonationRequest struct {
	CampaignID uint    `json:"campaign_id"`
	Amount     float64 `json:"amount"`
	Message    string  `json:"message"`
}

// SubmitDonationHandler POST /donations
// Body: { "campaign_id": 1, "amount": 2500, "message": "good luck" }
func SubmitDonationHandler(w http.ResponseWriter, r *http.Request) {
	var req DonationRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	uid, ok := utils.GetUserID(r)
	if !ok || !policy.CanCreateDonation(uid) {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if req.CampaignID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "campaign_id is required")
		return
	}

	coordinator := ledger.NewCoordinator(database.DB)
	receipt, err := coordinator.RecordDonation(uid, req.CampaignID, req.Amount, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidAmount):
			utils.WriteError(w, http.StatusBadRequest, "Donation amount must be at least 1")
		case errors.Is(err, ledger.ErrCampaignNotFound):
			utils.WriteError(w, http.StatusNotFound, "Campaign not found")
		default:
			log.Printf("[donations] record for user %d campaign %d failed: %v", uid, req.CampaignID, err)
			utils.WriteError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Thank you for your donation!",
		Data:    receipt,
	})
}

// MyDonationsHandler GET /donations/user
// Returns the caller's donations newest first with campaign summaries.
func MyDonationsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	donations, err := ledger.NewDonationLedger(database.DB).ListByUser(uid)
	if err != nil {
		log.Printf("[donations] list for user %d failed: %v", uid, err)
		utils.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: donations})
}

// MyStatsHandler GET /donations/stats
func MyStatsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := ledger.NewAggregator(database.DB).UserStats(uid)
	if err != nil {
		log.Printf("[donations] stats for user %d failed: %v", uid, err)
		utils.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: stats})
}

// GetDonationHandler GET /donations/{id}
// Visible to the donor who made it or an admin.
func GetDonationHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid donation id")
		return
	}

	donation, err := ledger.NewDonationLedger(database.DB).Get(uint(id))
	if err != nil {
		if errors.Is(err, ledger.ErrDonationNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Donation not found")
			return
		}
		log.Printf("[donations] get %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if !policy.CanViewDonation(uid, utils.GetUserRole(r), donation) {
		utils.WriteError(w, http.StatusForbidden, "Not authorized to view this donation")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: donation})
}
