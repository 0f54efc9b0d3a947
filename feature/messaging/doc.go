// Package messaging publishes request bodies to pub/sub topics.
//
// # HTTP Endpoints
//
//   - POST /messages/:topic : Publishes the JSON body to topic. Query parameters
//     become message attributes. Answers 202 with the message ID.
package messaging
