package wrestler

import "fmt"

type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// Wrestler is one draftable talent. Slug is the stable case-insensitive
// identity used when discovery activations resolve a name to a record.
type Wrestler struct {
	ID      string
	Name    string
	Slug    string
	Company string
	Gender  Gender
}

func (w Wrestler) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("wrestler id is required")
	}
	if w.Name == "" {
		return fmt.Errorf("wrestler name is required")
	}
	if w.Slug == "" {
		return fmt.Errorf("wrestler slug is required")
	}

	return nil
}
