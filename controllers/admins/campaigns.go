package admins

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Rajneesh001-hub/GiveEasy/controllers"
	"github.com/Rajneesh001-hub/GiveEasy/database"
	"github.com/Rajneesh001-hub/GiveEasy/ledger"
	"github.com/Rajneesh001-hub/GiveEasy/policy"
	"github.com/Rajneesh001-hub/GiveEasy/utils"

	"github.com/gorilla/mux"
)

// VerifyCampaignHandler PATCH /campaigns/{id}/verify
// Admin only: marks the campaign verified and flips it to active.
func VerifyCampaignHandler(w http.ResponseWriter, r *http.Request) {
	if !policy.CanVerifyCampaign(utils.GetUserRole(r)) {
		utils.WriteError(w, http.StatusForbidden, "Forbidden: Admin access required")
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	store := ledger.NewCampaignStore(database.DB)
	campaign, err := store.Verify(uint(id))
	if err != nil {
		if errors.Is(err, ledger.ErrCampaignNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Campaign not found")
			return
		}
		log.Printf("[admin] verify campaign %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Campaign verified",
		Data:    controllers.CampaignResponse(campaign),
	})
}
