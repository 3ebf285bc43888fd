package post

import (
	"errors"
	"fmt"
	"time"
)

type Type string

const (
	TypeKitRequest    Type = "kit_request"
	TypePlayerRequest Type = "player_request"
	TypeAnnouncement  Type = "announcement"
	TypeEvent         Type = "event"
)

var AllTypes = map[Type]struct{}{
	TypeKitRequest:    {},
	TypePlayerRequest: {},
	TypeAnnouncement:  {},
	TypeEvent:         {},
}

var ErrBadScope = errors.New("post must target exactly one of team or club")

// Post is an announcement scoped to exactly one of a team or a whole club:
// TeamID and ClubID are mutually exclusive and one must be set.
type Post struct {
	ID         string
	Type       Type
	Title      string
	Content    string
	AuthorID   string
	AuthorName string
	AuthorRole string
	TeamID     string
	ClubID     string
	CreatedAt  time.Time
}

func (p Post) IsClubWide() bool {
	return p.ClubID != "" && p.TeamID == ""
}

func (p Post) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("post id is required")
	}
	if _, ok := AllTypes[p.Type]; !ok {
		return fmt.Errorf("unknown post type %q", p.Type)
	}
	if p.Title == "" {
		return fmt.Errorf("post title is required")
	}
	if p.AuthorID == "" {
		return fmt.Errorf("post author id is required")
	}
	if (p.TeamID == "") == (p.ClubID == "") {
		return ErrBadScope
	}
	return nil
}
