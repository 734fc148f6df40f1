package handlers

import (
	"catering/services/auth"
)

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Auth validates bearer tokens on protected routes.
	Auth auth.AuthService

	AuthHandler        *AuthHandler
	ReservationHandler *ReservationHandler
	OnlineHandler      *OnlineHandler
	CalendarHandler    *CalendarHandler
	DashboardHandler   *DashboardHandler
	CatalogHandler     *CatalogHandler
	AccountHandler     *AccountHandler
}
