package model

import (
	"slices"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WatchStatus string

const (
	StatusPlannedToWatch WatchStatus = "planned_to_watch"
	StatusWatching       WatchStatus = "watching"
	StatusWatched        WatchStatus = "watched"
	StatusDropped        WatchStatus = "dropped"
)

var WatchStatuses = []WatchStatus{
	StatusPlannedToWatch,
	StatusWatching,
	StatusWatched,
	StatusDropped,
}

func (s WatchStatus) IsValid() bool {
	return slices.Contains(WatchStatuses, s)
}

type UserMovie struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Movie     primitive.ObjectID `bson:"movie" json:"movie"`
	Status    WatchStatus        `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

//------------------------------------
//------------------------------------

// CollectionMovie is one entry of a user's collection merged with its catalog movie.
// Catalog attributes come from the Movie; Status, AddedAt and UpdatedAt come from the
// UserMovie, which wins every name both documents share.
type CollectionMovie struct {
	MovieId     primitive.ObjectID `json:"movieId"`
	Status      WatchStatus        `json:"status"`
	Title       string             `json:"title"`
	Year        int                `json:"year"`
	Rating      string             `json:"rating,omitempty"`
	Genre       []string           `json:"genre"`
	Length      *int               `json:"length,omitempty"`
	Description string             `json:"description,omitempty"`
	Director    string             `json:"director,omitempty"`
	PosterUrl   string             `json:"posterUrl,omitempty"`
	AddedAt     time.Time          `json:"addedAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func NewCollectionMovie(um *UserMovie, m *Movie) CollectionMovie {
	genre := m.Genre
	if genre == nil {
		genre = []string{}
	}
	return CollectionMovie{
		MovieId:     m.Id,
		Title:       m.Title,
		Year:        m.Year,
		Rating:      m.Rating,
		Genre:       genre,
		Length:      m.Length,
		Description: m.Description,
		Director:    m.Director,
		PosterUrl:   m.PosterUrl,
		Status:      um.Status,
		AddedAt:     um.CreatedAt,
		UpdatedAt:   um.UpdatedAt,
	}
}

// CollectionFilter narrows a collection listing. Status applies to the UserMovie side,
// the other fields to the joined Movie. All set fields must match.
type CollectionFilter struct {
	Status WatchStatus
	Genre  string
	Year   int
	Title  string
}

func (f CollectionFilter) Matches(cm *CollectionMovie) bool {
	if f.Status != "" && cm.Status != f.Status {
		return false
	}
	if f.Genre != "" && !slices.Contains(cm.Genre, f.Genre) {
		return false
	}
	if f.Year != 0 && cm.Year != f.Year {
		return false
	}
	if f.Title != "" && !ContainsFold(cm.Title, f.Title) {
		return false
	}
	return true
}

//------------------------------------
//------------------------------------

type AddUserMovieReq struct {
	MovieId string      `json:"movieId" validate:"required"`
	Status  WatchStatus `json:"status" validate:"omitempty,oneof=planned_to_watch watching watched dropped"`
}

func (r *AddUserMovieReq) Normalize() {
	r.MovieId = strings.TrimSpace(r.MovieId)
	r.Status = WatchStatus(strings.TrimSpace(string(r.Status)))
}

type UpdateUserMovieReq struct {
	Status WatchStatus `json:"status" validate:"required,oneof=planned_to_watch watching watched dropped"`
}

func (r *UpdateUserMovieReq) Normalize() {
	r.Status = WatchStatus(strings.TrimSpace(string(r.Status)))
}

type CollectionRes struct {
	Count  int               `json:"count"`
	Movies []CollectionMovie `json:"movies"`
}
