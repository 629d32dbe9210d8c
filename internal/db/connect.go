package db

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var ErrAlreadyConnected = errors.New("database already connected to app")

const localsKey = "showerbuddy_db"

var connectedApps sync.Map

// Connect opens the store described by opts and attaches it to app. Every
// request handled by app can reach the handle through FromCtx, and the pool
// is closed when app shuts down. An app can be connected once.
//
// The handle is installed by a middleware added here, so only routes and
// groups registered on app after Connect returns see it through FromCtx.
func Connect(app *fiber.App, opts Options) (*gorm.DB, error) {
	if app == nil {
		return nil, errors.New("fiber app is required")
	}
	if _, loaded := connectedApps.LoadOrStore(app, struct{}{}); loaded {
		return nil, ErrAlreadyConnected
	}

	database, err := Open(opts)
	if err != nil {
		connectedApps.Delete(app)
		return nil, err
	}

	app.Use(func(c *fiber.Ctx) error {
		c.Locals(localsKey, database)
		return c.Next()
	})
	app.Hooks().OnShutdown(func() error {
		connectedApps.Delete(app)
		return Close(database)
	})

	return database, nil
}

func FromCtx(c *fiber.Ctx) (*gorm.DB, bool) {
	database, ok := c.Locals(localsKey).(*gorm.DB)
	if !ok || database == nil {
		return nil, false
	}
	return database, true
}
