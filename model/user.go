package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	GithubId       string             `bson:"githubId" json:"githubId"`
	Name           string             `bson:"name" json:"name"`
	GithubUsername string             `bson:"githubUsername,omitempty" json:"githubUsername,omitempty"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	AvatarUrl      string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GithubProfile is the subset of the GitHub account used to create or refresh a User.
// Email is empty when the account keeps every address private.
type GithubProfile struct {
	Id        string
	Login     string
	Name      string
	Email     string
	AvatarUrl string
}

func (p GithubProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

//------------------------------------
//------------------------------------

type UpdateProfileReq struct {
	Name  *string `json:"name" validate:"omitnil,min=1,max=200"`
	Email *string `json:"email" validate:"omitnil,max=320"`
}

func (r *UpdateProfileReq) Normalize() {
	trimPtr(r.Name)
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &e
	}
}

type LoginRes struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}
