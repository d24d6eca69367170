package routes

import (
	"flicks-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Account *handlers.AccountHandler
	Film    *handlers.FilmHandler
	Post    *handlers.PostHandler
	Upload  *handlers.UploadHandler
}

// Setup mounts the API under /api/v1. requireAuth guards everything except
// the public auth endpoints.
func Setup(app *fiber.App, h Handlers, requireAuth fiber.Handler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	{
		auth.Post("/send_otp", h.Auth.SendOTP)
		auth.Post("/:id/verify", h.Auth.VerifyOTP)
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", h.Auth.Login)
		auth.Post("/check_username", h.Auth.CheckUsername)
		auth.Post("/forget_password_otp", h.Auth.ForgetPasswordOTP)
		auth.Post("/:id/forget_password_change", h.Auth.ForgetPasswordChange)
		auth.Post("/refresh", h.Auth.Refresh)
		auth.Post("/change_password", requireAuth, h.Auth.ChangePassword)
	}

	accounts := v1.Group("/accounts", requireAuth)
	{
		accounts.Get("/search", h.Account.Search)

		accounts.Get("/profile", h.Account.Profile)
		accounts.Put("/profile/edit", h.Account.EditProfile)
		accounts.Delete("/profile/delete", h.Account.DeleteProfile)
		accounts.Get("/profile/media/presign", h.Upload.PresignProfileMedia)

		accounts.Post("/:id/follow", h.Account.Follow)
		accounts.Post("/:id/unfollow", h.Account.Unfollow)
		accounts.Post("/:id/remove_follower", h.Account.RemoveFollower)
		accounts.Get("/:id/profile", h.Account.Profile)

		// same lists for the caller and for another user
		for _, prefix := range []string{"/profile", "/:id/profile"} {
			accounts.Get(prefix+"/followers_list", h.Account.Followers)
			accounts.Get(prefix+"/following_list", h.Account.Followings)
			accounts.Get(prefix+"/posts", h.Account.Posts)
			accounts.Get(prefix+"/watchlist", h.Account.Watchlist)
			accounts.Get(prefix+"/watched", h.Account.Watched)
			accounts.Get(prefix+"/fav", h.Account.Favorites)
		}
	}

	films := v1.Group("/films", requireAuth)
	{
		films.Get("/search", h.Film.Search)
		films.Get("/", h.Film.List)
		films.Post("/", h.Film.Fetch)
		films.Get("/:id", h.Film.Detail)
		films.Get("/:id/posts", h.Film.Posts)
		films.Post("/:list/:id/:op", h.Film.Mark)
	}

	posts := v1.Group("/posts", requireAuth)
	{
		posts.Get("/", h.Post.Feed)
		posts.Post("/", h.Post.Create)
		posts.Get("/:id", h.Post.Get)
		posts.Put("/:id", h.Post.Update)
		posts.Patch("/:id", h.Post.Update)
		posts.Delete("/:id", h.Post.Delete)
	}
}
