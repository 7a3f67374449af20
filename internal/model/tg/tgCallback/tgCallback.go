package tgCallback

// Callback button prefixes
const (
	PageNumber  string = "page_number"
	Ellipsis    string = "page_gap"
	ToggleTheme string = "toggle_theme"

	// prefixes
	ToPage string = "to_page:"
)
