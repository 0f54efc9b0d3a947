// Package database opens the GORM connection and provides per-request sessions.
//
// # Connect
//
// Connect supports MySQL and SQLite. The pool is configured and pinged before
// the handle is returned, so a nil error means the database answered. Open is
// the driver-agnostic half and accepts any gorm.Dialector (tests pass a
// go-sqlmock backed one).
//
// # Sessions
//
// Session is a Fiber middleware that binds the handle to the request context
// and stores it in c.Locals("db"). Handlers read it with FromLocals.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	app.Use(database.Session(db))
package database
