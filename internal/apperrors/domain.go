package apperrors

var (
	ErrOTPThrottled      = Throttled("Try getting otp after 1 min")
	ErrOTPNotFound       = NotFound("Your code is expired. Try to get it again")
	ErrOTPMismatch       = Mismatch("Entered code is wrong!")
	ErrOTPRecordNotFound = NotFound("otp not found")

	ErrPhoneNotVerified   = Validation("first verify phone number")
	ErrVerifyPhoneFirst   = Validation("First verify your phone number")
	ErrPhoneTaken         = Conflict("User with that phone number already existed")
	ErrUsernameTaken      = Conflict("username already exists")
	ErrUserNotFound       = NotFound("user not found")
	ErrBadCredentials     = Unauthorized("Username or password is wrong!")
	ErrWrongPassword      = Unauthorized("Wrong password!")
	ErrInvalidToken       = Unauthorized("invalid or expired token")
	ErrCannotFollowSelf   = InvalidOperation("You cant follow yourself")
	ErrCannotUnfollowSelf = InvalidOperation("You cant unfollow yourself")
	ErrCannotRemoveSelf   = InvalidOperation("You cant remove yourself")

	ErrFilmNotFound     = NotFound("film not found")
	ErrSearchParam      = Validation("Specify search param")
	ErrPostNotFound     = NotFound("post not found")
	ErrPostExists       = Conflict("You already have a post for this film")
	ErrInvalidGenre     = Validation("Invalid genre")
	ErrInvalidRate      = Validation("rate must be between 0 and 10")
	ErrInvalidMediaKind = Validation("media kind must be photo or banner")
	ErrFilenameRequired = Validation("filename is required")
)
