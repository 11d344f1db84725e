package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	RouteNotFound     = "Route not found"
	MovieNotFound     = "Movie not found"
	ReviewNotFound    = "Review not found"
	UserMovieNotFound = "Movie not found in your collection"
	UserNotFound      = "Cannot find user"
	//----------------------
	InvalidMovieId  = "Invalid movieId"
	InvalidReviewId = "Invalid reviewId"
	InvalidYear     = "Invalid year"
	InvalidStatus   = "Invalid status, expected one of planned_to_watch, watching, watched, dropped"
	InvalidEmail    = "Invalid email"
	InvalidState    = "Invalid/Stale oauth state"
	MissingCode     = "Missing oauth code"
	InvalidRedirect = "Redirect origin is not allowed"
	//----------------------
	Unauthorized = "Not authenticated"
	//----------------------
	BadRequestBody = "Incorrect request body"
	EmptyUpdate    = "Nothing to update"
	//----------------------
	MovieAlreadyExist     = "Movie with this title and year already exists"
	ReviewAlreadyExist    = "You have already reviewed this movie, update your existing review"
	UserMovieAlreadyExist = "Movie already exists in your collection"
	EmailAlreadyExist     = "This email already exists"
	//----------------------
	MovieHasReviews = "Cannot delete a movie that has reviews"
	//----------------------
	LoggedOut          = "Logged out"
	LoginSuccess       = "Logged in with GitHub"
	UserDeleted        = "User account deleted successfully"
	MovieDeleted       = "Movie deleted"
	ReviewDeleted      = "Review deleted"
	UserMovieDeleted   = "Movie removed from your collection"
	HealthCheckMessage = "Movie vault API is running"
)
