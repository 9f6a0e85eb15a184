package users

import (
	"errors"
	"time"
)

const Collection = "users"

// Counter field names on the user document. The counts are denormalized
// caches maintained by increment calls, not recomputed on read.
const (
	FieldFollowersCount    = "followersCount"
	FieldFollowingCount    = "followingCount"
	FieldPreparationsCount = "preparationsCount"
)

var ErrNotFound = errors.New("users: user not found")

type UserType string

const (
	TypeProfessionalBarista UserType = "professional_barista"
	TypeAmateurBarista      UserType = "amateur_barista"
	TypeAficionado          UserType = "aficionado"
	TypeContentCreator      UserType = "content_creator"
	TypeBrand               UserType = "brand"
	TypeRetailLocation      UserType = "retail_location"
)

// User is stored under its uid as the document id.
type User struct {
	UID                   string     `firestore:"uid" json:"uid"`
	Email                 string     `firestore:"email" json:"email"`
	DisplayName           string     `firestore:"displayName" json:"displayName"`
	ProfileImageURL       string     `firestore:"profileImageURL,omitempty" json:"profileImageURL,omitempty"`
	Bio                   string     `firestore:"bio,omitempty" json:"bio,omitempty"`
	Location              string     `firestore:"location,omitempty" json:"location,omitempty"`
	UserTypes             []UserType `firestore:"userTypes" json:"userTypes"`
	IsVerified            bool       `firestore:"isVerified" json:"isVerified"`
	VerificationRequested bool       `firestore:"verificationRequested" json:"verificationRequested"`
	IsPublic              bool       `firestore:"isPublic" json:"isPublic"`
	JoinDate              time.Time  `firestore:"joinDate" json:"joinDate"`
	FollowersCount        int        `firestore:"followersCount" json:"followersCount"`
	FollowingCount        int        `firestore:"followingCount" json:"followingCount"`
	PreparationsCount     int        `firestore:"preparationsCount" json:"preparationsCount"`
}

func (u User) Valid() bool { return u.UID != "" }
