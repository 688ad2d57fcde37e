package users

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Rajneesh001-hub/GiveEasy/controllers"
	"github.com/Rajneesh001-hub/GiveEasy/database"
	"github.com/Rajneesh001-hub/GiveEasy/ledger"
	"github.com/Rajneesh001-hub/GiveEasy/middleware"
	"github.com/Rajneesh001-hub/GiveEasy/models"
	"github.com/Rajneesh001-hub/GiveEasy/policy"
	"github.com/Rajneesh001-hub/GiveEasy/utils"

	"github.com/gorilla/mux"
)

type CreateCampaignRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	NGO         string  `json:"ngo" validate:"required"`
	UPIID       string  `json:"upi_id" validate:"required,upi"`
	GoalAmount  float64 `json:"goal_amount"`
	Image       string  `json:"image"`
	Category    string  `json:"category" validate:"required,category"`
}

// CreateCampaignHandler POST /campaigns
// New campaigns start pending and unverified until an admin verifies them.
func CreateCampaignHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCampaignRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if req.GoalAmount < 0 {
		utils.WriteError(w, http.StatusBadRequest, "Goal amount cannot be negative")
		return
	}

	campaign := models.Campaign{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		NGO:         strings.TrimSpace(req.NGO),
		UPIID:       strings.TrimSpace(req.UPIID),
		GoalAmount:  utils.Round2(req.GoalAmount),
		Image:       req.Image,
		Category:    req.Category,
		CreatedBy:   uid,
	}

	store := ledger.NewCampaignStore(database.DB)
	if err := store.Create(&campaign); err != nil {
		log.Printf("[campaigns] create by user %d failed: %v", uid, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create campaign")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Campaign created, pending verification",
		Data:    controllers.CampaignResponse(&campaign),
	})
}

type UpdateCampaignRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	NGO         *string  `json:"ngo"`
	UPIID       *string  `json:"upi_id" validate:"upi"`
	GoalAmount  *float64 `json:"goal_amount"`
	Category    *string  `json:"category" validate:"category"`
}

// UpdateCampaignHandler PUT /campaigns/{id}
// Owner or admin. Only metadata columns can change; the funding total and
// verification flags are untouchable from here.
func UpdateCampaignHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	store := ledger.NewCampaignStore(database.DB)
	campaign, err := store.Get(uint(id))
	if err != nil {
		if errors.Is(err, ledger.ErrCampaignNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Campaign not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if !policy.CanManageCampaign(uid, utils.GetUserRole(r), campaign) {
		utils.WriteError(w, http.StatusForbidden, "Not authorized to update this campaign")
		return
	}

	var req UpdateCampaignRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.NGO != nil {
		fields["ngo"] = strings.TrimSpace(*req.NGO)
	}
	if req.UPIID != nil {
		fields["upi_id"] = strings.TrimSpace(*req.UPIID)
	}
	if req.GoalAmount != nil {
		if *req.GoalAmount < 0 {
			utils.WriteError(w, http.StatusBadRequest, "Goal amount cannot be negative")
			return
		}
		fields["goal_amount"] = utils.Round2(*req.GoalAmount)
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}

	updated, err := store.UpdateMetadata(uint(id), fields)
	if err != nil {
		if errors.Is(err, ledger.ErrCampaignNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Campaign not found")
			return
		}
		log.Printf("[campaigns] update %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update campaign")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Campaign updated",
		Data:    controllers.CampaignResponse(updated),
	})
}

// DeleteCampaignHandler DELETE /campaigns/{id}
// Owner or admin. Donation history stays in the ledger.
func DeleteCampaignHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	store := ledger.NewCampaignStore(database.DB)
	campaign, err := store.Get(uint(id))
	if err != nil {
		if errors.Is(err, ledger.ErrCampaignNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Campaign not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if !policy.CanManageCampaign(uid, utils.GetUserRole(r), campaign) {
		utils.WriteError(w, http.StatusForbidden, "Not authorized to delete this campaign")
		return
	}

	if err := store.Remove(uint(id)); err != nil && !errors.Is(err, ledger.ErrCampaignNotFound) {
		log.Printf("[campaigns] delete %d failed: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete campaign")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Campaign removed"})
}
