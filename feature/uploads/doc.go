// Package uploads stores and serves objects through the storage Uploader.
//
// # HTTP Endpoints
//
//   - POST /uploads/* : Stores the multipart "file" field under the given path.
//   - GET /uploads/* : Streams the object back.
//   - DELETE /uploads/* : Removes the object.
//
// The bucket is created on first upload when it does not exist.
package uploads
