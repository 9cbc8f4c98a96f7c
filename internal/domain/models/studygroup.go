// internal/domain/models/studygroup.go
package models

import "time"

// StudyGroup is a peer study session open for sign-up.
//
// Members holds user IDs, each at most once; CurrentParticipants always
// equals len(Members). The creator is a member from creation on.
type StudyGroup struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Subject             string    `json:"subject"`
	Course              string    `json:"course"`
	DateTime            time.Time `json:"date_time"`
	Location            string    `json:"location"`
	MaxParticipants     int       `json:"max_participants"`
	CurrentParticipants int       `json:"current_participants"`
	CreatedBy           string    `json:"created_by"`
	Members             []string  `json:"members"`
}
