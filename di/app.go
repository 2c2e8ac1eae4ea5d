package di

import (
	roomService "hotelier/internal/domains/room/service"
	"hotelier/transport/http"
)

// App bundles the HTTP transport with the services the entrypoint
// needs before serving, such as seeding the default room inventory.
type App struct {
	HTTP  *http.HTTP
	Rooms roomService.Room
}
