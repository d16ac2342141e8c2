package models

import "fmt"

// Team member status values.
const (
	MemberActive      = "active"
	MemberOnLeave     = "on-leave"
	MemberUnavailable = "unavailable"
)

// Contact holds a member's reachable addresses.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// TeamMember is owned exclusively by its team and has no identity of
// its own; the whole member list is stored inside the team record.
type TeamMember struct {
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Specialization string  `json:"specialization"`
	Contact        Contact `json:"contact"`
	Location       string  `json:"location"`
	Status         string  `json:"status"`
}

// Team is an operational unit.
type Team struct {
	Record
	Name        string       `gorm:"column:name;not null" json:"name"`
	Leader      string       `gorm:"column:leader;not null" json:"leader"`
	Members     []TeamMember `gorm:"column:members;serializer:json" json:"members"`
	ActiveCases int          `gorm:"column:active_cases" json:"activeCases"`
	Department  string       `gorm:"column:department;not null" json:"department"`
}

func (Team) TableName() string { return "teams" }

// Validate applies defaults and checks required fields and enums,
// including each embedded member.
func (t *Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if t.Leader == "" {
		return fmt.Errorf("leader is required")
	}
	if t.Department == "" {
		return fmt.Errorf("department is required")
	}
	for i := range t.Members {
		m := &t.Members[i]
		if m.Status == "" {
			m.Status = MemberActive
		}
		if m.Name == "" {
			return fmt.Errorf("members[%d].name is required", i)
		}
		if m.Role == "" {
			return fmt.Errorf("members[%d].role is required", i)
		}
		if !oneOf(m.Status, MemberActive, MemberOnLeave, MemberUnavailable) {
			return fmt.Errorf("members[%d].status must be one of %s, %s, %s", i, MemberActive, MemberOnLeave, MemberUnavailable)
		}
	}
	return nil
}
