package handlers

import (
	"reflect"
	"strings"

	"flicks-backend/internal/filmstate"
	"flicks-backend/internal/models"
	"flicks-backend/internal/services"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type PhoneRequest struct {
	Phone string `json:"phone" validate:"required,e164" example:"+989122222111"`
}

type VerifyOTPRequest struct {
	OTP string `json:"otp" validate:"required,numeric" example:"12345"`
}

type RegisterRequest struct {
	Phone    string `json:"phone" validate:"required,e164" example:"+989122222111"`
	Username string `json:"username" validate:"required,max=50" example:"alice"`
	Password string `json:"password" validate:"required,min=8,max=128" example:"secret123"`
}

type LoginRequest struct {
	PhoneUsername string `json:"phone_username" validate:"required" example:"alice"`
	Password      string `json:"password" validate:"required" example:"secret123"`
}

type UsernameRequest struct {
	Username string `json:"username" validate:"required,max=50" example:"alice"`
}

type PasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=128" example:"newsecret123"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required" example:"secret123"`
	Password    string `json:"password" validate:"required,min=8,max=128" example:"newsecret123"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type EditProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=50" example:"alice"`
	Name     *string `json:"name" validate:"omitempty,max=50" example:"Alice"`
	Bio      *string `json:"bio" validate:"omitempty,max=70" example:"I watch too much"`
}

func (r EditProfileRequest) toInput() services.ProfileInput {
	return services.ProfileInput{Username: r.Username, Name: r.Name, Bio: r.Bio}
}

type FetchFilmRequest struct {
	IMDBID string `json:"imdb_id" validate:"required,max=20" example:"tt1375666"`
}

type PostRequest struct {
	Film    uint           `json:"film" validate:"required" example:"1"`
	Genres  map[string]int `json:"genres" validate:"required"`
	Rate    *float64       `json:"rate" validate:"omitempty,min=0,max=10" example:"8.5"`
	Caption *string        `json:"caption"`
	Quote   *string        `json:"quote" validate:"omitempty,max=255"`
}

func (r PostRequest) toInput() services.PostInput {
	return services.PostInput{
		FilmID:  r.Film,
		Genres:  r.Genres,
		Rate:    r.Rate,
		Caption: r.Caption,
		Quote:   r.Quote,
	}
}

// PostUpdateRequest backs both PUT and PATCH; omitted fields keep their value.
type PostUpdateRequest struct {
	Genres  map[string]int `json:"genres"`
	Rate    *float64       `json:"rate" validate:"omitempty,min=0,max=10" example:"8.5"`
	Caption *string        `json:"caption"`
	Quote   *string        `json:"quote" validate:"omitempty,max=255"`
}

func (r PostUpdateRequest) toInput() services.PostInput {
	return services.PostInput{Genres: r.Genres, Rate: r.Rate, Caption: r.Caption, Quote: r.Quote}
}

type OTPResponse struct {
	ID    uint   `json:"id" example:"7"`
	Phone string `json:"phone" example:"+989122222111"`
}

type UsernameAvailability struct {
	Username  string `json:"username" example:"alice"`
	Available bool   `json:"available"`
}

// FilmListsResponse tells which of the caller's lists a film sits in.
type FilmListsResponse struct {
	FilmID    uint `json:"film_id" example:"4"`
	Watchlist bool `json:"watchlist"`
	Watched   bool `json:"watched"`
	Favorite  bool `json:"fav"`
}

func newFilmListsResponse(filmID uint, state filmstate.State) FilmListsResponse {
	return FilmListsResponse{
		FilmID:    filmID,
		Watchlist: state[models.ListWatchlist],
		Watched:   state[models.ListWatched],
		Favorite:  state[models.ListFavorite],
	}
}

type FetchFilmResponse struct {
	Created bool        `json:"created"`
	Film    interface{} `json:"film"`
}

// fieldErrors turns validator output into a json field -> rule map.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
