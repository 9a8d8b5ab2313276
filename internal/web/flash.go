package web

import (
	"encoding/gob"
	"net/http"
)

// Flash is a one-shot notice shown on the next rendered page.
// Category is one of "error", "success" or "info".
type Flash struct {
	Message  string
	Category string
}

func init() {
	gob.Register(Flash{})
}

func (app *App) addFlash(w http.ResponseWriter, r *http.Request, message string, category string) {
	session, _ := app.Store.Get(r, "session")
	session.AddFlash(Flash{Message: message, Category: category})
	session.Save(r, w)
}

// popFlashes drains the pending notices and persists their removal.
func (app *App) popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	session, _ := app.Store.Get(r, "session")
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	session.Save(r, w)

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
