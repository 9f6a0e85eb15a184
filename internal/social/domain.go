package social

import (
	"errors"
	"time"
)

const Collection = "follows"

var (
	ErrSelfFollow       = errors.New("users cannot follow themselves")
	ErrAlreadyFollowing = errors.New("already following")
	ErrNotFollowing     = errors.New("not following")
)

// Follow is one directed edge in the social graph.
type Follow struct {
	ID          string    `firestore:"-" json:"id,omitempty"`
	FollowerID  string    `firestore:"follower" json:"follower"`
	FollowingID string    `firestore:"following" json:"following"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}

func (f Follow) Valid() bool {
	return f.FollowerID != "" && f.FollowingID != "" && f.FollowerID != f.FollowingID
}
