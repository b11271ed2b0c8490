package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cole-dav/sleeper-draft-tool/controller"
	"github.com/cole-dav/sleeper-draft-tool/db"
	"github.com/cole-dav/sleeper-draft-tool/sleeper"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

// UserHeader carries the caller-supplied sleeper user id for
// prediction writes. There is no authentication beyond this.
const UserHeader = "X-Sleeper-User"

type errorResponse struct {
	Message string `json:"message"`
}

func syncLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")

		if err := ctrl.SyncLeague(r.Context(), leagueID); err != nil {
			if errors.Is(err, sleeper.ErrLeagueNotFound) {
				render.JSON(w, http.StatusNotFound, errorResponse{Message: "league not found"})
			} else {
				render.JSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func getLeagueDataHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")

		data, err := ctrl.GetLeagueData(r.Context(), leagueID)
		if err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				render.JSON(w, http.StatusNotFound, errorResponse{Message: "league not found, sync it first"})
			} else {
				render.JSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusOK, data)
	}
}

func updatePickHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "pickID"), 10, 64)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Message: "invalid pick id"})
			return
		}

		var body struct {
			PickSlot *string `json:"pickSlot"`
			Comment  *string `json:"comment"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
			return
		}

		pick, err := ctrl.UpdatePick(r.Context(), id, body.PickSlot, body.Comment)
		if err != nil {
			if errors.Is(err, db.ErrPickNotFound) {
				render.JSON(w, http.StatusNotFound, errorResponse{Message: "pick not found"})
			} else {
				render.JSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusOK, pick)
	}
}

func setTeamOrderHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")

		var body struct {
			Order []int `json:"order"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
			return
		}

		if err := ctrl.SetTeamOrder(r.Context(), leagueID, body.Order); err != nil {
			if errors.Is(err, controller.ErrEmptyTeamOrder) {
				render.JSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
			} else {
				render.JSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func savePredictionHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserHeader)
		if userID == "" {
			render.JSON(w, http.StatusUnauthorized, errorResponse{Message: "missing " + UserHeader + " header"})
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "pickID"), 10, 64)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Message: "invalid pick id"})
			return
		}

		var body struct {
			Comment string `json:"comment"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
			return
		}

		if err := ctrl.SavePrediction(r.Context(), id, userID, body.Comment); err != nil {
			if errors.Is(err, db.ErrPickNotFound) {
				render.JSON(w, http.StatusNotFound, errorResponse{Message: "pick not found"})
			} else {
				render.JSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func getUserHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		user, err := ctrl.GetSleeperUser(r.Context(), username)
		if err != nil {
			if errors.Is(err, sleeper.ErrUserNotFound) {
				render.JSON(w, http.StatusNotFound, errorResponse{Message: "user not found"})
			} else {
				render.JSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusOK, user)
	}
}
