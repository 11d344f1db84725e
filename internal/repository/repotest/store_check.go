package repotest

import "movie_vault/internal/repository"

var (
	_ repository.IMovieRepository     = (*Store)(nil)
	_ repository.IReviewRepository    = (*Store)(nil)
	_ repository.IUserMovieRepository = (*Store)(nil)
	_ repository.IUserRepository      = (*Store)(nil)
)
