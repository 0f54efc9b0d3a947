// Package logger builds the zap logger used across the service.
//
// Level "debug" selects zap's development preset; anything else starts from the
// production preset at the configured level. Format picks json or console output.
//
// # Ray IDs
//
// WithRayID attaches the ray_id stored by the rayid middleware so every line
// logged while serving a request can be correlated.
//
// # Usage
//
//	log, err := logger.New(&cfg.Log)
//	if err != nil {
//	    return err
//	}
//	log.Info("Server started")
//
//	// In a request handler:
//	logger.WithRayID(log, c).Error("Handler failed", zap.Error(err))
package logger
