package dto

// PaperResponse describes one past-year question paper stored in the papers bucket.
type PaperResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
