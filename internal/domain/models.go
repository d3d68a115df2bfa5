package domain

type Category struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
	Category    Category `json:"category"`
}

type Banner struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	LinkURL  *string `json:"link_url"`
	Position int     `json:"position"`
	IsActive bool    `json:"is_active"`
}
