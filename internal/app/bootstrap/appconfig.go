// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, request limits); AppConfig carries everything specific to
// the announcements service. Values come from environment variables,
// configuration files, or command-line flags (loaded in LoadConfig).
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in the driver pool
	MongoMinPoolSize uint64 // Min connections kept warm

	// Optional seed teacher credential, created/refreshed at startup so a
	// fresh database has at least one teacher able to manage announcements.
	// Both must be set for the seed to run.
	SeedTeacherUsername string
	SeedTeacherPassword string
}
