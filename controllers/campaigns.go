package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Rajneesh001-hub/GiveEasy/database"
	"github.com/Rajneesh001-hub/GiveEasy/ledger"
	"github.com/Rajneesh001-hub/GiveEasy/models"
	"github.com/Rajneesh001-hub/GiveEasy/utils"

	"github.com/gorilla/mux"
)

// CampaignResponse serializes a campaign together with its derived progress.
func CampaignResponse(c *models.Campaign) map[string]interface{} {
	return map[string]interface{}{
		"id":                  c.ID,
		"title":               c.Title,
		"description":         c.Description,
		"ngo":                 c.NGO,
		"upi_id":              c.UPIID,
		"goal_amount":         c.GoalAmount,
		"current_amount":      c.CurrentAmount,
		"progress_percentage": c.ProgressPercentage(),
		"image":               c.Image,
		"category":            c.Category,
		"verified":            c.Verified,
		"status":              c.Status,
		"created_by":          c.CreatedBy,
		"created_at":          c.CreatedAt,
	}
}

// ListCampaignsHandler GET /campaigns?verified=&category=&status=
// Public. Filters apply server-side so admin dashboards don't have to fetch
// everything and filter client-side.
func ListCampaignsHandler(w http.ResponseWriter, r *http.Request) {
	filter := ledger.CampaignFilter{
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
	}
	if v := r.URL.Query().Get("verified"); v != "" {
		verified := v == "true"
		filter.Verified = &verified
	}

	store := ledger.NewCampaignStore(database.DB)
	campaigns, err := store.List(filter)
	if err != nil {
		log.Printf("[campaigns] list error: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	// Attach creator names, one query for all rows
	creatorIDs := make([]uint, 0, len(campaigns))
	seen := make(map[uint]struct{})
	for _, c := range campaigns {
		if _, ok := seen[c.CreatedBy]; !ok {
			seen[c.CreatedBy] = struct{}{}
			creatorIDs = append(creatorIDs, c.CreatedBy)
		}
	}
	nameByID := make(map[uint]string)
	if len(creatorIDs) > 0 {
		var users []models.User
		database.DB.Select("id, name").Where("id IN ?", creatorIDs).Find(&users)
		for _, u := range users {
			nameByID[u.ID] = u.Name
		}
	}

	resp := make([]map[string]interface{}, 0, len(campaigns))
	for i := range campaigns {
		entry := CampaignResponse(&campaigns[i])
		entry["created_by_name"] = nameByID[campaigns[i].CreatedBy]
		resp = append(resp, entry)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: resp})
}

// GetCampaignHandler GET /campaigns/{id}
// Public.
func GetCampaignHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	store := ledger.NewCampaignStore(database.DB)
	campaign, err := store.Get(uint(id))
	if err != nil {
		if errors.Is(err, ledger.ErrCampaignNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Campaign not found")
			return
		}
		log.Printf("[campaigns] get %d error: %v", id, err)
		utils.WriteError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	resp := CampaignResponse(campaign)
	var creator models.User
	if err := database.DB.Select("id, name, email").First(&creator, campaign.CreatedBy).Error; err == nil {
		resp["created_by_name"] = creator.Name
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: resp})
}
