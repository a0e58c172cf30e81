// model/videoModel.go
package model

import "github.com/google/uuid"

// Video genres keep their order; they are stored as a text array, so a tag may
// contain any character including commas.
type Video struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	YearOfRelease int       `json:"year_of_release"`
	Genres        []string  `json:"genres"`
}
