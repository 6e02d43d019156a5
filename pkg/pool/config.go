package pool

import (
	"fmt"
	"time"

	"dbpool/pkg/config"
	"dbpool/pkg/driver"
	errs "dbpool/pkg/errors"
)

// Config carries pool sizing, timing and backend parameters.
type Config struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"dbname"`

	// InitSize is the floor maintained by the reaper; MaxSize the ceiling
	// enforced by the replenisher and acquire.
	InitSize int `yaml:"initSize"`
	MaxSize  int `yaml:"maxSize"`

	MaxIdleTime    time.Duration `yaml:"maxIdleTime"`
	AcquireTimeout time.Duration `yaml:"connectionTimeOut"`
	ConnectTimeout time.Duration `yaml:"connectTimeout"`
}

// DefaultConfig returns the compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		Driver:         "mysql",
		Host:           "localhost",
		Port:           3306,
		Username:       "root",
		Password:       "",
		Database:       "test",
		InitSize:       5,
		MaxSize:        10,
		MaxIdleTime:    60 * time.Second,
		AcquireTimeout: 100 * time.Millisecond,
		ConnectTimeout: 5 * time.Second,
	}
}

// FromSource reads the recognized keys from a config source, filling any
// missing key from the defaults. maxIdleTime is in seconds and
// connectionTimeOut in milliseconds, matching the file format.
func FromSource(src config.Source) Config {
	def := DefaultConfig()
	return Config{
		Driver:         src.GetString("driver", def.Driver),
		Host:           src.GetString("ip", def.Host),
		Port:           src.GetInt("port", def.Port),
		Username:       src.GetString("username", def.Username),
		Password:       src.GetString("password", def.Password),
		Database:       src.GetString("dbname", def.Database),
		InitSize:       src.GetInt("initSize", def.InitSize),
		MaxSize:        src.GetInt("maxSize", def.MaxSize),
		MaxIdleTime:    time.Duration(src.GetInt("maxIdleTime", 60)) * time.Second,
		AcquireTimeout: time.Duration(src.GetInt("connectionTimeOut", 100)) * time.Millisecond,
		ConnectTimeout: def.ConnectTimeout,
	}
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.Driver == "" {
		return fmt.Errorf("%w: driver cannot be empty", errs.ErrInvalidConfig)
	}
	if c.MaxSize < 1 {
		return fmt.Errorf("%w: maxSize must be at least 1", errs.ErrInvalidConfig)
	}
	if c.InitSize < 0 || c.InitSize > c.MaxSize {
		return fmt.Errorf("%w: initSize must be between 0 and maxSize", errs.ErrInvalidConfig)
	}
	if c.MaxIdleTime <= 0 {
		return fmt.Errorf("%w: maxIdleTime must be positive", errs.ErrInvalidConfig)
	}
	if c.AcquireTimeout <= 0 {
		return fmt.Errorf("%w: connectionTimeOut must be positive", errs.ErrInvalidConfig)
	}
	return nil
}

func (c Config) params() driver.Params {
	return driver.Params{
		Host:     c.Host,
		Port:     c.Port,
		Username: c.Username,
		Password: c.Password,
		Database: c.Database,
	}
}
