package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/Rajneesh001-hub/GiveEasy/utils"
)

// LogoutHandler revokes the presented token's jti so it stops validating
// before its natural expiry.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

	_, claims, err := utils.ValidateAccessToken(tokenStr)
	if err != nil {
		utils.WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	jti, _ := claims["jti"].(string)
	ttl := 24 * time.Hour
	if expRaw, ok := claims["exp"].(float64); ok {
		if left := time.Until(time.Unix(int64(expRaw), 0)); left > 0 {
			ttl = left
		}
	}
	if err := utils.RevokeJTI(jti, ttl); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Logged out"})
}
