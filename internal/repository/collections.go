package repository

const (
	UsersCollection      = "users"
	MoviesCollection     = "movies"
	ReviewsCollection    = "reviews"
	UserMoviesCollection = "usermovies"
	ConfigsCollection    = "configs"
)
