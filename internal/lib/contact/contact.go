package contact

import (
	"fmt"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/lib/catalog"
	"catalog_tgbot/internal/lib/navstate"
	"catalog_tgbot/internal/model"
)

const whatsappBase = "https://wa.me/"

// Message is the text a customer sends to ask for an item.
func Message(cfg *config.Config, item model.Item) string {
	item = catalog.Clipped(item)
	return fmt.Sprintf("%s\nTitle: %s\nID: %s", cfg.Contact.Greeting, item.Title, item.ID)
}

// Link is the outbound chat link carrying Message for item. Without a
// configured phone the link lets the user pick the recipient.
func Link(cfg *config.Config, item model.Item) string {
	return whatsappBase + cfg.Contact.Phone + "?text=" + navstate.EscapeComponent(Message(cfg, item))
}
