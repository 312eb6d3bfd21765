package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/daygrid/calendar-backend/internal/model"
)

var errCantRetrieveUser = errors.New("can't retrieve user from context")

func (a *Api) getUserHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	resp := &struct {
		ID          int64  `json:"id"`
		Email       string `json:"email"`
		DisplayName string `json:"display_name,omitempty"`
		Photo       string `json:"photo,omitempty"`
		CreatedAt   string `json:"created_at"`
		LastLoginAt string `json:"last_login_at"`
	}{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Photo:       user.Photo,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		LastLoginAt: user.LastLoginAt.Format(time.RFC3339),
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
