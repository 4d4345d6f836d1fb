package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/englishroom/portal-api/internal/utils"
)

// ReadingResource is one entry in the project-based-learning reading list.
type ReadingResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// The PBL page is fully static; the list ships with the service.
var pblReadingList = []ReadingResource{
	{Title: "The Elements of Style", URL: "https://www.gutenberg.org/ebooks/37134"},
	{Title: "A Modest Proposal", URL: "https://www.gutenberg.org/ebooks/1080"},
	{Title: "The Importance of Being Earnest", URL: "https://www.gutenberg.org/ebooks/844"},
	{Title: "Heart of Darkness", URL: "https://www.gutenberg.org/ebooks/219"},
}

// PBLReadingList serves the static project-based-learning reading list.
func PBLReadingList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "reading list retrieved", pblReadingList)
	}
}
