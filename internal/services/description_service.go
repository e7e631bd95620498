// internal/services/description_service.go
package services

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/dcoppard/gallery-backend/internal/artwork"
)

// DescriptionService drafts listing copy from the artist's shorthand notes.
// Output is deterministic for a given input so the admin form can offer a
// stable preview before the artist edits it.
type DescriptionService struct{}

type DescriptionRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	Notes      string `json:"notes" validate:"max=2000"`
	Medium     string `json:"medium" validate:"max=120"`
	Dimensions string `json:"dimensions" validate:"max=60"`
	Genre      string `json:"genre" validate:"max=60"`
}

func NewDescriptionService() *DescriptionService {
	return &DescriptionService{}
}

var descriptionOpenings = []string{
	"%s is an original %s",
	"An original %[2]s, %[1]s",
	"%s is an original %s by the artist",
}

var descriptionClosings = []string{
	"It arrives ready to hang and signed on the front.",
	"Signed by the artist, it is ready to hang on arrival.",
	"The piece is signed and arrives ready to display.",
}

// Generate composes a short listing description. The opening and closing
// lines are picked by a stable hash of the title so regenerating without
// edits returns the same text.
func (s *DescriptionService) Generate(req *DescriptionRequest) string {
	title := strings.TrimSpace(req.Title)
	medium := strings.TrimSpace(req.Medium)
	if medium == "" {
		medium = "painting"
	} else {
		medium = strings.ToLower(medium) + " painting"
	}

	seed := hashString(title)

	var b strings.Builder
	fmt.Fprintf(&b, descriptionOpenings[seed%uint32(len(descriptionOpenings))], quoteTitle(title), medium)

	if dims, ok := artwork.ParseDimensions(req.Dimensions); ok {
		fmt.Fprintf(&b, " measuring %s", strings.TrimSpace(req.Dimensions))
		if dims.Height > dims.Width {
			b.WriteString(" in portrait format")
		} else if dims.Width > dims.Height {
			b.WriteString(" in landscape format")
		}
	}
	b.WriteString(".")

	if genre := strings.TrimSpace(req.Genre); genre != "" {
		fmt.Fprintf(&b, " Part of the artist's %s work.", strings.ToLower(genre))
	}

	if notes := strings.TrimSpace(req.Notes); notes != "" {
		b.WriteString(" ")
		b.WriteString(sentence(notes))
	}

	b.WriteString(" ")
	b.WriteString(descriptionClosings[seed%uint32(len(descriptionClosings))])

	return b.String()
}

func quoteTitle(title string) string {
	return "\"" + title + "\""
}

// sentence normalizes free-form notes into one capitalized sentence.
func sentence(notes string) string {
	notes = strings.TrimRight(notes, " .")
	if notes == "" {
		return ""
	}
	runes := []rune(notes)
	first := strings.ToUpper(string(runes[0]))
	return first + string(runes[1:]) + "."
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(s)))
	return h.Sum32()
}
