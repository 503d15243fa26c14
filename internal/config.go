package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	BufferSize            int           `env:"BUFFER_SIZE,required=true" validate:"gt=0"`
	ConnectionBufferSize  int           `env:"CONNECTION_BUFFER_SIZE,required=true" validate:"gt=0"`
	NotificationQueueSize int           `env:"NOTIFICATION_QUEUE_SIZE,default=256" validate:"gt=0"`
	SinkTimeout           time.Duration `env:"SINK_TIMEOUT,required=true" validate:"gt=0"`
	MetricInterval        time.Duration `env:"METRIC_INTERVAL,required=true" validate:"gt=0"`
	RestartInterval       time.Duration `env:"RESTART_INTERVAL,required=true" validate:"gt=0"`
	AuthTokenDuration     time.Duration `env:"AUTH_TOKEN_DURATION,required=true" validate:"gt=0"`
	JWTSecret             string        `env:"JWT_SECRET,required=true" validate:"min=16"`

	TypingDebounce        time.Duration `env:"TYPING_DEBOUNCE,default=1500ms" validate:"gt=0"`
	TypingRefreshInterval time.Duration `env:"TYPING_REFRESH_INTERVAL,default=1s" validate:"gt=0"`
	TypingSweepInterval   time.Duration `env:"TYPING_SWEEP_INTERVAL,default=1s" validate:"gt=0"`

	BadgerFilepath            string `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel                  string `env:"LOG_LEVEL,required=true" validate:"oneof=DEBUG INFO WARN ERROR"`
	LowCapacityThreshold      int    `env:"LOW_CAPACITY_THRESHOLD,default=10" validate:"gte=0,lte=100"`
	MaxContentLength          int    `env:"MAX_CONTENT_LENGTH,required=true" validate:"gt=0"`
	NotificationPreviewLength int    `env:"NOTIFICATION_PREVIEW_LENGTH,default=80" validate:"gt=0"`
	Host                      string `env:"HOST,default=0.0.0.0"`
	Port                      int    `env:"PORT,required=true" validate:"gt=0,lte=65535"`
	DebugPort                 int    `env:"DEBUG_PORT,default=8081" validate:"gt=0,lte=65535"`
	MonitoringPort            int    `env:"MONITORING_PORT,default=8082" validate:"gt=0,lte=65535"`
}

var validate = validator.New()

// Validate checks the values that go-env cannot, and that the typing
// refresh happens before observers would consider the signal stale.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.TypingRefreshInterval >= c.TypingDebounce {
		return fmt.Errorf("TYPING_REFRESH_INTERVAL (%s) must be shorter than TYPING_DEBOUNCE (%s)",
			c.TypingRefreshInterval, c.TypingDebounce)
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
