package templates

// Template describes one resume layout available for generation.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

var catalog = []Template{
	{
		ID:          "classic",
		Name:        "Classic",
		Description: "Traditional single-column layout with serif type.",
		ImageURL:    "/templates/classic.png",
	},
	{
		ID:          "modern",
		Name:        "Modern",
		Description: "Clean sans-serif layout with rule separators.",
		ImageURL:    "/templates/modern.png",
	},
	{
		ID:          "creative",
		Name:        "Creative",
		Description: "Bold headings with accent color for design-adjacent roles.",
		ImageURL:    "/templates/creative.png",
	},
}

// List returns the template catalog in display order.
func List() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// Exists reports whether a template ID is in the catalog.
func Exists(id string) bool {
	for _, t := range catalog {
		if t.ID == id {
			return true
		}
	}
	return false
}
