// Package items is a minimal key/value resource backed by the request-scoped
// ORM session from database.Session.
//
// # HTTP Endpoints
//
//   - POST /items : Creates an item. 201 on success, 409 when the key exists.
//   - GET /items : Lists items in creation order.
package items
