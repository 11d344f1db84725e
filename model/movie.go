package model

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const MinMovieYear = 1888

type Movie struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Year        int                `bson:"year" json:"year"`
	Rating      string             `bson:"rating,omitempty" json:"rating,omitempty"`
	Genre       []string           `bson:"genre" json:"genre"`
	Length      *int               `bson:"length,omitempty" json:"length,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Director    string             `bson:"director,omitempty" json:"director,omitempty"`
	PosterUrl   string             `bson:"posterUrl,omitempty" json:"posterUrl,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

//------------------------------------
//------------------------------------

type CreateMovieReq struct {
	Title       string   `json:"title" validate:"required,max=500"`
	Year        *int     `json:"year" validate:"required,min=1888"`
	Rating      string   `json:"rating" validate:"max=20"`
	Genre       []string `json:"genre" validate:"max=20,dive,required,max=50"`
	Length      *int     `json:"length" validate:"omitempty,min=0"`
	Description string   `json:"description" validate:"max=5000"`
	Director    string   `json:"director" validate:"max=200"`
	PosterUrl   string   `json:"posterUrl" validate:"omitempty,url"`
}

// Normalize trims every text field in place.
func (r *CreateMovieReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Rating = strings.TrimSpace(r.Rating)
	r.Description = strings.TrimSpace(r.Description)
	r.Director = strings.TrimSpace(r.Director)
	r.PosterUrl = strings.TrimSpace(r.PosterUrl)
	r.Genre = trimGenres(r.Genre)
}

func (r *CreateMovieReq) ToMovie() *Movie {
	m := &Movie{
		Title:       r.Title,
		Rating:      r.Rating,
		Genre:       r.Genre,
		Length:      r.Length,
		Description: r.Description,
		Director:    r.Director,
		PosterUrl:   r.PosterUrl,
	}
	if r.Year != nil {
		m.Year = *r.Year
	}
	if m.Genre == nil {
		m.Genre = []string{}
	}
	return m
}

type UpdateMovieReq struct {
	Title       *string  `json:"title" validate:"omitnil,min=1,max=500"`
	Year        *int     `json:"year" validate:"omitnil,min=1888"`
	Rating      *string  `json:"rating" validate:"omitempty,max=20"`
	Genre       []string `json:"genre" validate:"omitempty,max=20,dive,required,max=50"`
	Length      *int     `json:"length" validate:"omitnil,min=0"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Director    *string  `json:"director" validate:"omitempty,max=200"`
	PosterUrl   *string  `json:"posterUrl" validate:"omitempty,url"`
}

func (r *UpdateMovieReq) Normalize() {
	trimPtr(r.Title)
	trimPtr(r.Rating)
	trimPtr(r.Description)
	trimPtr(r.Director)
	trimPtr(r.PosterUrl)
	r.Genre = trimGenres(r.Genre)
}

// ApplyTo copies the provided fields onto m and reports whether anything was set.
func (r *UpdateMovieReq) ApplyTo(m *Movie) bool {
	changed := false
	if r.Title != nil {
		m.Title = *r.Title
		changed = true
	}
	if r.Year != nil {
		m.Year = *r.Year
		changed = true
	}
	if r.Rating != nil {
		m.Rating = *r.Rating
		changed = true
	}
	// a nil slice means the field was absent, [] clears the genres
	if r.Genre != nil {
		m.Genre = r.Genre
		changed = true
	}
	if r.Length != nil {
		l := *r.Length
		m.Length = &l
		changed = true
	}
	if r.Description != nil {
		m.Description = *r.Description
		changed = true
	}
	if r.Director != nil {
		m.Director = *r.Director
		changed = true
	}
	if r.PosterUrl != nil {
		m.PosterUrl = *r.PosterUrl
		changed = true
	}
	return changed
}

//------------------------------------
//------------------------------------

// MovieFilter holds the optional catalog listing filters. Zero values are ignored.
type MovieFilter struct {
	Genre    string
	Year     int
	Director string
	Title    string
}

func (f MovieFilter) Matches(m *Movie) bool {
	if f.Genre != "" && !slices.Contains(m.Genre, f.Genre) {
		return false
	}
	if f.Year != 0 && m.Year != f.Year {
		return false
	}
	if f.Director != "" && m.Director != f.Director {
		return false
	}
	if f.Title != "" && !ContainsFold(m.Title, f.Title) {
		return false
	}
	return true
}

type MoviesRes struct {
	Count  int     `json:"count"`
	Movies []Movie `json:"movies"`
}

//------------------------------------
//------------------------------------

// TitleRegex builds the case-insensitive substring pattern used for title filters.
func TitleRegex(title string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(title), Options: "i"}
}

func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func trimGenres(genres []string) []string {
	if genres == nil {
		return nil
	}
	res := make([]string, 0, len(genres))
	for _, g := range genres {
		res = append(res, strings.TrimSpace(g))
	}
	return res
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
