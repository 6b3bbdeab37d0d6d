// Package seed holds the fixed dataset loaded at process start.
package seed

import (
	"time"

	"github.com/blkout/hub/internal/models"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// Members returns the initial member profiles with activity relative to now.
func Members(now time.Time) []models.Member {
	return []models.Member{
		{
			ID:            "mem_001",
			Name:          "Marcus",
			Age:           28,
			Location:      "South London",
			Interests:     []string{"activism", "music", "community organizing"},
			Contributions: []string{"Organized 3 community events", "Led storytelling workshop"},
			ProfilePic:    "🎤",
			Bio:           "Community organizer passionate about liberation through arts",
			LookingFor:    "Community connections and collaboration opportunities",
			MemberSince:   date("2024-01-15"),
			LastActiveAt:  now.Add(-2 * time.Minute),
		},
		{
			ID:            "mem_002",
			Name:          "Jordan",
			Age:           32,
			Location:      "Birmingham",
			Interests:     []string{"tech", "education", "mental health"},
			Contributions: []string{"Built member directory app", "Mentored 5 young developers"},
			ProfilePic:    "💻",
			Bio:           "Tech worker building tools for community empowerment",
			LookingFor:    "Technical collaborators and mentorship opportunities",
			MemberSince:   date("2024-02-20"),
			LastActiveAt:  now.Add(-45 * time.Minute),
		},
		{
			ID:            "mem_003",
			Name:          "Kai",
			Age:           25,
			Location:      "Manchester",
			Interests:     []string{"writing", "poetry", "social justice"},
			Contributions: []string{"Published 12 liberation stories", "Hosted 2 poetry nights"},
			ProfilePic:    "✍️",
			Bio:           "Writer and poet documenting our liberation journey",
			LookingFor:    "Creative collaborators and storytelling partners",
			MemberSince:   date("2024-03-10"),
			LastActiveAt:  now.Add(-8 * time.Minute),
		},
		{
			ID:            "mem_004",
			Name:          "Devon",
			Age:           29,
			Location:      "Leeds",
			Interests:     []string{"fitness", "wellness", "community building"},
			Contributions: []string{"Led 15 wellness workshops", "Created fitness groups"},
			ProfilePic:    "💪",
			Bio:           "Wellness coach focused on holistic community health",
			LookingFor:    "Wellness collaborators and community health advocates",
			MemberSince:   date("2024-01-08"),
			LastActiveAt:  now.Add(-110 * time.Minute),
		},
	}
}

// Hotseats returns the initial sessions. Participants reference Members by id.
func Hotseats(now time.Time) []models.HotseatSession {
	return []models.HotseatSession{
		{
			ID:              "hotseat_001",
			Title:           "Liberation Through Tech",
			Host:            "Jordan",
			Topic:           "Building community-owned digital platforms",
			Description:     "Discussing how technology can serve liberation rather than exploitation",
			MaxParticipants: 6,
			StartTime:       now,
			ParticipantIDs:  []string{"mem_001", "mem_003"},
			Status:          models.StatusLive,
			CreatedAt:       now,
		},
		{
			ID:              "hotseat_002",
			Title:           "Community Organizing Stories",
			Host:            "Marcus",
			Topic:           "Sharing experiences from the frontlines of liberation work",
			Description:     "Real talk about community organizing successes and challenges",
			MaxParticipants: 8,
			StartTime:       now.Add(30 * time.Minute),
			ParticipantIDs:  []string{"mem_004"},
			Status:          models.StatusStartingSoon,
			CreatedAt:       now,
		},
		{
			ID:              "hotseat_003",
			Title:           "Wellness & Resistance",
			Host:            "Devon",
			Topic:           "Maintaining mental health while fighting for justice",
			Description:     "How do we stay healthy while doing liberation work?",
			MaxParticipants: 5,
			StartTime:       now.Add(2 * time.Hour),
			ParticipantIDs:  []string{},
			Status:          models.StatusScheduled,
			CreatedAt:       now,
		},
	}
}
