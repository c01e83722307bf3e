// Package timeline exposes the interactive session over HTTP.
package timeline

import (
	"encoding/json"
	"net/http"

	"github.com/kilianp07/renewables/api/httpx"
	"github.com/kilianp07/renewables/core/model"
	"github.com/kilianp07/renewables/core/session"
)

// Controller is the part of a session the handler drives.
type Controller interface {
	State() session.State
	Current() session.Update
	SetYear(year int) (session.Update, error)
	SetScenario(sc model.Scenario) (session.Update, error)
	SetTarget(target float64) (session.Update, error)
	Select(sel session.Selection) (session.Update, error)
	TogglePlay() (bool, error)
}

// Response is returned by every timeline request.
type Response struct {
	State  session.State  `json:"state"`
	Update session.Update `json:"update"`
}

// Command changes the selection. Absent fields are left untouched.
type Command struct {
	Year       *int            `json:"year,omitempty"`
	Scenario   *model.Scenario `json:"scenario,omitempty"`
	Target     *float64        `json:"target,omitempty"`
	TogglePlay bool            `json:"toggle_play,omitempty"`
}

// NewHandler serves GET and POST /api/timeline.
func NewHandler(c Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
		case http.MethodPost:
			var cmd Command
			if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&cmd); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err)
				return
			}
			if err := apply(c, cmd); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, err)
				return
			}
		default:
			w.Header().Set("Allow", "GET, HEAD, POST")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, Response{State: c.State(), Update: c.Current()})
	})
}

// apply commits the selection fields together, then toggles playback.
// A rejected selection leaves the session untouched.
func apply(c Controller, cmd Command) error {
	if cmd.Year != nil || cmd.Scenario != nil || cmd.Target != nil {
		sel := session.Selection{Year: cmd.Year, Scenario: cmd.Scenario, Target: cmd.Target}
		if _, err := c.Select(sel); err != nil {
			return err
		}
	}
	if cmd.TogglePlay {
		if _, err := c.TogglePlay(); err != nil {
			return err
		}
	}
	return nil
}
