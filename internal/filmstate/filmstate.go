// Package filmstate holds the transition rules between a user's film lists.
//
// Watchlist and watched are exclusive intents. Favorite always implies
// watched, so a film can sit in watched and favorite at the same time but
// never in favorite without watched.
package filmstate

import "flicks-backend/internal/models"

type Action string

const (
	AddToWatchlist      Action = "add_to_watchlist"
	AddToWatched        Action = "add_to_watched"
	AddToFavorite       Action = "add_to_favorite"
	RemoveFromWatchlist Action = "remove_from_watchlist"
	RemoveFromWatched   Action = "remove_from_watched"
	RemoveFromFavorite  Action = "remove_from_favorite"
)

// Transition is the set of edges an action writes and the set it deletes.
type Transition struct {
	Set   []models.FilmList
	Clear []models.FilmList
}

var transitions = map[Action]Transition{
	AddToWatchlist: {
		Set:   []models.FilmList{models.ListWatchlist},
		Clear: []models.FilmList{models.ListWatched, models.ListFavorite},
	},
	AddToWatched: {
		Set:   []models.FilmList{models.ListWatched},
		Clear: []models.FilmList{models.ListWatchlist},
	},
	AddToFavorite: {
		Set:   []models.FilmList{models.ListFavorite, models.ListWatched},
		Clear: []models.FilmList{models.ListWatchlist},
	},
	RemoveFromWatchlist: {
		Clear: []models.FilmList{models.ListWatchlist},
	},
	RemoveFromWatched: {
		Clear: []models.FilmList{models.ListWatched, models.ListFavorite},
	},
	RemoveFromFavorite: {
		Clear: []models.FilmList{models.ListFavorite},
	},
}

// For returns the transition of an action; ok is false for unknown actions.
func For(action Action) (Transition, bool) {
	t, ok := transitions[action]
	return t, ok
}

// State is the set of lists a film currently belongs to for one user.
type State map[models.FilmList]bool

// Apply returns the state reached from s after action. s is not modified.
func (s State) Apply(action Action) State {
	next := State{}
	for list, on := range s {
		if on {
			next[list] = true
		}
	}
	t, ok := For(action)
	if !ok {
		return next
	}
	for _, list := range t.Clear {
		delete(next, list)
	}
	for _, list := range t.Set {
		next[list] = true
	}
	return next
}

// Valid reports whether s satisfies the list invariants.
func (s State) Valid() bool {
	if s[models.ListWatchlist] && s[models.ListWatched] {
		return false
	}
	if s[models.ListFavorite] && !s[models.ListWatched] {
		return false
	}
	return true
}
