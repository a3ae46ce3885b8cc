// SPIM Core - light sheet microscope control service
//
// This is the main entry point for the SPIM Core application. SPIM Core
// exposes the rig's device property layer over a REST API, WebSocket feed,
// and MQTT bridge, with change history in SQLite and optional telemetry
// in InfluxDB.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/openspim/spim-core/internal/api"
	"github.com/openspim/spim-core/internal/bridge"
	"github.com/openspim/spim-core/internal/core"
	"github.com/openspim/spim-core/internal/device"
	"github.com/openspim/spim-core/internal/history"
	"github.com/openspim/spim-core/internal/infrastructure/config"
	"github.com/openspim/spim-core/internal/infrastructure/database"
	"github.com/openspim/spim-core/internal/infrastructure/influxdb"
	"github.com/openspim/spim-core/internal/infrastructure/logging"
	"github.com/openspim/spim-core/internal/infrastructure/mqtt"
	"github.com/openspim/spim-core/internal/property"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting SPIM Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	// Create the runtime core. Only the simulated runtime ships today;
	// a hardware-backed core plugs in through the same interface.
	if !cfg.Sim.Enabled {
		return fmt.Errorf("no runtime core configured: enable sim in %s", configPath)
	}
	runtime := core.NewSimCoreFromSeed(cfg.Sim.Properties)
	log.Info("simulated runtime core initialised", "devices", len(runtime.Labels()))

	// Build the device role registry from configuration
	devices := device.NewRegistry(cfg.Devices)
	devices.SetLogger(log)
	log.Info("device registry initialised", "assignments", len(devices.Assignments()))

	// Property accessor: failures are logged, never raised
	accessor := property.NewAccessor(devices, runtime, property.NewLogReporter(log))

	// Record property changes to the history store
	historyRepo := history.NewSQLiteRepository(db.DB)
	recorder := history.NewRecorder(historyRepo, history.SourceAPI)
	recorder.SetLogger(log)
	accessor.AddObserver(recorder)

	// Retention sweep for the history store (config-gated)
	if cfg.History.RetentionDays > 0 {
		pruner := history.NewPruner(historyRepo, time.Duration(cfg.History.RetentionDays)*24*time.Hour)
		pruner.SetLogger(log)
		go pruner.Run(ctx)
		log.Info("history retention sweep started", "retention_days", cfg.History.RetentionDays)
	}

	// Connect to MQTT broker and start the property bridge (optional)
	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		mqttClient, err = mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		mqttClient.SetLogger(log)
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)

		mqttClient.SetOnConnect(func() {
			log.Info("MQTT reconnected")
		})
		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})

		propertyBridge := bridge.New(
			&mqttBridgeAdapter{client: mqttClient},
			accessor.WithOrigin(history.SourceMQTT),
			byte(cfg.MQTT.QoS),
		)
		propertyBridge.SetLogger(log)
		if startErr := propertyBridge.Start(); startErr != nil {
			return fmt.Errorf("starting MQTT bridge: %w", startErr)
		}
		defer func() {
			log.Info("stopping MQTT bridge")
			if stopErr := propertyBridge.Stop(); stopErr != nil {
				log.Error("error stopping MQTT bridge", "error", stopErr)
			}
		}()
		accessor.AddObserver(propertyBridge)
		log.Info("MQTT property bridge started")
	} else {
		log.Info("MQTT disabled")
	}

	// Connect to InfluxDB for property telemetry (optional)
	var influxClient *influxdb.Client
	if cfg.InfluxDB.Enabled {
		influxClient, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)

		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		accessor.AddObserver(&propertyTelemetry{influx: influxClient})
	} else {
		log.Info("InfluxDB disabled")
	}

	// Start the API server
	server, err := api.New(api.Deps{
		Config:   cfg.API,
		WS:       cfg.WebSocket,
		Logger:   log,
		Devices:  devices,
		Accessor: accessor.WithOrigin(history.SourceAPI),
		History:  historyRepo,
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if startErr := server.Start(ctx); startErr != nil {
		return fmt.Errorf("starting API server: %w", startErr)
	}
	defer func() {
		log.Info("stopping API server")
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()
	// Broadcast property changes to WebSocket clients
	accessor.AddObserver(server)
	log.Info("API server started", "address", fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port))

	// Verify all connections are healthy
	if err := healthCheck(ctx, db, mqttClient, influxClient, server); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls will run in reverse order:
	// 1. API server
	// 2. InfluxDB (if enabled)
	// 3. MQTT bridge and client (if enabled)
	// 4. Database

	log.Info("SPIM Core stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses SPIMCORE_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("SPIMCORE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck verifies all infrastructure connections are healthy.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - db: Database connection to check
//   - mqttClient: MQTT client to check (may be nil if disabled)
//   - influxClient: InfluxDB client to check (may be nil if disabled)
//   - server: API server to check
//
// Returns:
//   - error: First health check failure, or nil if all healthy
func healthCheck(ctx context.Context, db *database.DB, mqttClient *mqtt.Client, influxClient *influxdb.Client, server *api.Server) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if mqttClient != nil {
		if err := mqttClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("mqtt: %w", err)
		}
	}

	if influxClient != nil {
		if err := influxClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}

	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	return nil
}

// mqttBridgeAdapter adapts the infrastructure MQTT client to the property
// bridge's Client interface. The concrete client's Subscribe takes the
// named mqtt.MessageHandler type; the bridge declares a plain func type
// so it can be driven by a fake in tests.
type mqttBridgeAdapter struct {
	client *mqtt.Client
}

// Subscribe implements bridge.Client.
func (a *mqttBridgeAdapter) Subscribe(topic string, qos byte, handler func(topic string, payload []byte) error) error {
	return a.client.Subscribe(topic, qos, handler)
}

// Unsubscribe implements bridge.Client.
func (a *mqttBridgeAdapter) Unsubscribe(topic string) error {
	return a.client.Unsubscribe(topic)
}

// PublishRetained implements bridge.Client.
func (a *mqttBridgeAdapter) PublishRetained(topic string, payload []byte) error {
	return a.client.PublishRetained(topic, payload)
}

// propertyTelemetry forwards numeric property changes to InfluxDB.
// Non-numeric values are skipped; enumerated states carry no magnitude
// worth charting.
type propertyTelemetry struct {
	influx *influxdb.Client
}

// PropertyChanged implements property.ChangeObserver.
func (t *propertyTelemetry) PropertyChanged(change property.Change) {
	value, err := strconv.ParseFloat(change.Value, 64)
	if err != nil {
		return
	}
	t.influx.WritePropertyMetric(change.Role.String(), change.Key.String(), value)
}
