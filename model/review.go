package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinReviewRating        = 1
	MaxReviewRating        = 5
	MaxReviewMessageLength = 5000
)

type Review struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Movie     primitive.ObjectID `bson:"movie" json:"movie"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Rating    int                `bson:"rating" json:"rating"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

//------------------------------------
//------------------------------------

// ReviewReq is the body of every review create/update route. Rating is a pointer so
// that a missing value fails validation instead of decoding to zero.
type ReviewReq struct {
	Rating  *int   `json:"rating" validate:"required,min=1,max=5"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (r *ReviewReq) Normalize() {
	r.Message = strings.TrimSpace(r.Message)
}

type ReviewsRes struct {
	Count   int      `json:"count"`
	Reviews []Review `json:"reviews"`
}
