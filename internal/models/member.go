package models

import "time"

// Member is a community member profile held by the member directory.
type Member struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Location      string    `json:"location"`
	Interests     []string  `json:"interests"`
	Contributions []string  `json:"contributions"` // provenance order, not ranked
	ProfilePic    string    `json:"profile_pic,omitempty"`
	Bio           string    `json:"bio"`
	LookingFor    string    `json:"looking_for"`
	MemberSince   time.Time `json:"member_since"`
	LastActiveAt  time.Time `json:"-"`
}

// Clone returns a deep copy so callers cannot mutate directory-owned slices.
func (m Member) Clone() Member {
	c := m
	c.Interests = append([]string(nil), m.Interests...)
	c.Contributions = append([]string(nil), m.Contributions...)
	return c
}
