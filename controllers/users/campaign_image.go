package users

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/Rajneesh001-hub/GiveEasy/database"
	"github.com/Rajneesh001-hub/GiveEasy/ledger"
	"github.com/Rajneesh001-hub/GiveEasy/policy"
	"github.com/Rajneesh001-hub/GiveEasy/utils"

	"github.com/gorilla/mux"
)

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// UploadCampaignImageHandler POST /campaigns/{id}/image
// Multipart form field "image". Owner or admin. The previous object is
// deleted best-effort after a successful replacement.
func UploadCampaignImageHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Image too large or malformed form")
		return
	}
	file, handler, err := r.FormFile("image")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	ext := strings.ToLower(path.Ext(handler.Filename))
	if !allowedImageExts[ext] {
		utils.WriteError(w, http.StatusBadRequest, "Image must be jpg, png or webp")
		return
	}

	objectName := fmt.Sprintf("campaigns/%d/%d%s", campaign.ID, time.Now().UnixNano(), ext)
	if err := utils.UploadToS3(objectName, file, handler.Size); err != nil {
		log.Printf("[campaigns] image upload for %d failed: %v", campaign.ID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	url := utils.PublicObjectURL(objectName)
	if err := store.UpdateImage(campaign.ID, url); err != nil {
		_ = utils.DeleteFromS3(objectName)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to save image")
		return
	}

	// Best-effort cleanup of a previously uploaded object. External image
	// URLs (seeded placeholders) are left alone.
	if old := utils.ObjectNameFromURL(campaign.Image); strings.HasPrefix(old, "campaigns/") {
		_ = utils.DeleteFromS3(old)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Image uploaded",
		Data:    map[string]interface{}{"image": url},
	})
}
