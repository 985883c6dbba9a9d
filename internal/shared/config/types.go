package config

import "fmt"

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Mode     string `mapstructure:"mode"`
	Timezone string `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// GatewayConfig holds the payment gateway credentials.
// ServerKey signs notification payloads; PathSecret is the opaque
// segment of the webhook URL registered with the gateway.
type GatewayConfig struct {
	ServerKey  string `mapstructure:"server_key"`
	PathSecret string `mapstructure:"path_secret"`
}

type BillingConfig struct {
	TierDurationDays int `mapstructure:"tier_duration_days"`
}
