package models

// Genres is the fixed set of keys a post may score.
var Genres = []string{
	"action", "adventure", "animation", "biography", "comedy", "crime",
	"documentary", "drama", "family", "fantasy", "history", "horror",
	"music", "musical", "mystery", "romance", "scifi", "sport",
	"thriller", "war", "western",
}

const (
	MaxGenreValue = 10
	MaxRate       = 10.0
)

var genreSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Genres))
	for _, g := range Genres {
		set[g] = struct{}{}
	}
	return set
}()

func IsGenre(name string) bool {
	_, ok := genreSet[name]
	return ok
}
