package models

import (
	"time"
)

type Film struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	IMDBID        string    `gorm:"column:imdb_id;uniqueIndex;size:20;not null" json:"imdb_id" example:"tt1375666"`
	Name          string    `gorm:"size:255;not null;index" json:"name" example:"Inception"`
	Plot          string    `gorm:"type:text" json:"plot"`
	ContentRating string    `gorm:"size:5" json:"content_rating" example:"PG-13"`
	Genres        []string  `gorm:"serializer:json" json:"genres"`
	Countries     []string  `gorm:"serializer:json" json:"countries"`
	Languages     []string  `gorm:"serializer:json" json:"languages"`
	Writers       []Artist  `gorm:"many2many:film_writers;" json:"writers,omitempty"`
	Directors     []Artist  `gorm:"many2many:film_directors;" json:"directors,omitempty"`
	Actors        []Artist  `gorm:"many2many:film_actors;" json:"actors,omitempty"`
	Photo         string    `json:"photo"`
	Banner        string    `json:"banner"`
	Trailer       string    `json:"trailer"`
	Year          int       `gorm:"index" json:"year" example:"2010"`
	IMDB          float64   `gorm:"column:imdb;index" json:"imdb" example:"8.8"`
	Rotten        *int      `json:"rotten"`
	Metacritic    *int      `json:"metacritic"`
	Time          *int      `json:"time"`
	IsActive      bool      `gorm:"index;default:true" json:"-"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Film) TableName() string {
	return "films"
}

type Artist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IMDBID    string    `gorm:"column:imdb_id;uniqueIndex;size:20;not null" json:"-"`
	Name      string    `gorm:"size:30;not null" json:"name"`
	Photo     string    `json:"photo"`
	IsActive  bool      `gorm:"index;default:true" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Artist) TableName() string {
	return "artists"
}

// FilmList names one of a user's film collections.
type FilmList string

const (
	ListWatched   FilmList = "watched"
	ListWatchlist FilmList = "watchlist"
	ListFavorite  FilmList = "favorite"
)

func (l FilmList) Valid() bool {
	switch l {
	case ListWatched, ListWatchlist, ListFavorite:
		return true
	}
	return false
}

// FilmMark is a single (user, film, list) edge.
type FilmMark struct {
	UserID    uint      `gorm:"primaryKey"`
	FilmID    uint      `gorm:"primaryKey;index"`
	List      FilmList  `gorm:"primaryKey;size:16"`
	CreatedAt time.Time `gorm:"index"`
}

func (FilmMark) TableName() string {
	return "film_marks"
}

// FilmListItem is the row returned by film listings.
type FilmListItem struct {
	ID          uint    `json:"id" example:"1"`
	Name        string  `json:"name" example:"Inception"`
	Photo       string  `json:"photo"`
	Year        int     `json:"year" example:"2010"`
	IMDB        float64 `json:"imdb" example:"8.8"`
	IsWatched   bool    `json:"is_watched"`
	IsWatchlist bool    `json:"is_watchlist"`
}

// FilmDetail adds aggregates computed from active posts.
type FilmDetail struct {
	Film
	RateAverage    float64            `json:"rate_average"`
	GenresAverage  map[string]float64 `json:"genres_average"`
	WatchedCount   int64              `json:"watched_count"`
	WatchlistCount int64              `json:"watchlist_count"`
	FavedCount     int64              `json:"faved_count"`
}

// CatalogFilm is a film as returned by the external catalog, before it is stored.
type CatalogFilm struct {
	IMDBID        string
	Name          string
	Plot          string
	Year          int
	Photo         string
	Banner        string
	Trailer       string
	Time          *int
	IMDB          float64
	Rotten        *int
	Metacritic    *int
	ContentRating string
	Genres        []string
	Countries     []string
	Languages     []string
	Actors        []CatalogArtist
	Writers       []CatalogArtist
	Directors     []CatalogArtist
}

type CatalogArtist struct {
	IMDBID string
	Name   string
	Photo  string
}

// CatalogSearchResult is one hit of a catalog search, annotated with local state.
type CatalogSearchResult struct {
	IMDBID       string `json:"imdb_id" example:"tt1375666"`
	Name         string `json:"name" example:"Inception"`
	Year         string `json:"year" example:"2010"`
	Photo        string `json:"photo"`
	WatchedCount int64  `json:"watched_count"`
	IsWatched    bool   `json:"is_watched"`
	IsWatchlist  bool   `json:"is_watchlist"`
}
