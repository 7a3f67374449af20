package telegram

const (
	internalErrMsg string = "something went wrong..."
	requestTooOld  string = "this catalog message has expired, send /start to open a new one"
	greeting       string = "Welcome! Browse the template catalog below. Send any text to search the current page, tap the numbers to switch pages."
	helpText       string = "How to use the catalog:\n\n• tap a page number to open it, the marked one is the current page\n• send any text to filter the current page by title, author or ID\n• /open p=3&q=logo opens a saved position (the 🔗 line under each catalog message)\n• /theme switches between the light and dark look\n• /width 400 fits the page strip to a wider or narrower screen\n• /request <ID> asks us about a template"
	widthUsage     string = "usage: /width <pixels>, for example /width 360"
	widthSet       string = "page strip laid out for %d px"
	requestUsage   string = "usage: /request <ID>, the ID is shown on every template card"
	itemNotFound   string = "there is no template %q on the page you are viewing"
	themeChanged   string = "theme switched to %s"
)
