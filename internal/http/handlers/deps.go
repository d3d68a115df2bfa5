package handlers

import (
	"vitrine/internal/api"
	"vitrine/internal/config"
	"vitrine/internal/services"
)

type Deps struct {
	AuthHandler     *AuthHandler
	CatalogHandler  *CatalogHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	AccountHandler  *AccountHandler
	AdminHandler    *AdminHandler
	AdminCatalog    *AdminCatalogHandler
	Session         *services.SessionService
}

func NewDeps(client *api.Client, cfg config.Config) *Deps {
	sessionSvc := services.NewSessionService(client)
	catalogSvc := services.NewCatalogService(client)
	cartSvc := services.NewCartService(client)
	orderSvc := services.NewOrderService(client)
	adminSvc := services.NewAdminService(client)

	secure := cfg.Cookie.Secure

	return &Deps{
		AuthHandler:     &AuthHandler{Session: sessionSvc, SecureCookies: secure},
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		CheckoutHandler: &CheckoutHandler{Orders: orderSvc},
		AccountHandler:  &AccountHandler{Session: sessionSvc, Orders: orderSvc, API: client},
		AdminHandler:    &AdminHandler{Admin: adminSvc, API: client},
		AdminCatalog:    &AdminCatalogHandler{Admin: adminSvc, API: client},
		Session:         sessionSvc,
	}
}
