package catalog

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Draft is user input for creating or editing a video.
type Draft struct {
	Name       string    `json:"name"`
	AuthorID   int       `json:"authorId"`
	Categories Selection `json:"categories"`
}

// Validate checks that the draft names a video, an author and at least one
// category.
func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required.Error("name is required"), validation.By(notBlank)),
		validation.Field(&d.AuthorID, validation.Required.Error("author is required"), validation.Min(1)),
		validation.Field(&d.Categories, validation.By(atLeastOneCategory)),
	)
}

func notBlank(value any) error {
	if s, _ := value.(string); strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

func atLeastOneCategory(value any) error {
	if s, _ := value.(Selection); s.IsEmpty() {
		return errors.New("at least one category is required")
	}
	return nil
}
