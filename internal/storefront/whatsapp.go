package storefront

import (
	"fmt"
	"net/url"

	"vitrine/internal/domain"
)

// ShopWhatsAppLink is the plain "talk to us" link in the storefront header.
func ShopWhatsAppLink(shop domain.Shop) string {
	if !shop.Whatsapp.Valid || shop.Whatsapp.String == "" {
		return ""
	}
	return "https://wa.me/" + shop.Whatsapp.String
}

// ProductWhatsAppLink deep-links into a conversation with an interest message
// for a specific product.
func ProductWhatsAppLink(shop domain.Shop, p domain.Product) string {
	if !shop.Whatsapp.Valid || shop.Whatsapp.String == "" {
		return ""
	}
	desc := p.Name
	if p.Storage.Valid && p.Storage.String != "" {
		desc += " " + p.Storage.String
	}
	if p.Color.Valid && p.Color.String != "" {
		desc += " " + p.Color.String
	}
	msg := fmt.Sprintf("Olá! Tenho interesse no %s que vi na sua vitrine. Está disponível?", desc)
	return "https://wa.me/" + shop.Whatsapp.String + "?text=" + url.QueryEscape(msg)
}
