// Package config binds the module's environment-variable surface with
// viper. The CLI surface here is env vars only, no flags.
package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/viper"
)

func init() {
	viper.AutomaticEnv()
}

// MustEnv returns the value of an environment variable or panics, treating
// required configuration as a startup-time fatal condition.
func MustEnv(name string) string {
	v := viper.GetString(name)
	if v == "" {
		panic("environment variable " + name + " must be set")
	}
	return v
}

// Env returns the value of an environment variable or a default.
func Env(name, def string) string {
	if v := viper.GetString(name); v != "" {
		return v
	}
	return def
}

// Registry is the service discovery process's own bind configuration.
type Registry struct {
	Host string
	Port string
}

func LoadRegistry() Registry {
	return Registry{
		Host: Env("SERVICE_DISCOVERY_HOST", "0.0.0.0"),
		Port: MustEnv("SERVICE_DISCOVERY_PORT"),
	}
}

func (r Registry) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

// Worker is a math worker's (or the calculator's) own bind configuration,
// plus the registry address it registers itself against.
type Worker struct {
	Host         string
	Port         string
	RegistryAddr string
}

// LoadWorker reads hostEnv/portEnv for the worker's own bind address,
// falling back to defaultHost/defaultPort, and SERVICE_DISCOVERY_HOST /
// SERVICE_DISCOVERY_PORT for the registry it announces itself to.
func LoadWorker(hostEnv, portEnv, defaultHost, defaultPort string) Worker {
	reg := LoadRegistry()
	return Worker{
		Host:         Env(hostEnv, defaultHost),
		Port:         Env(portEnv, defaultPort),
		RegistryAddr: reg.Addr(),
	}
}

func (w Worker) Addr() string {
	return net.JoinHostPort(w.Host, w.Port)
}

// ParsePort converts a configured port string to the uint32 the wire types
// use, panicking on malformed configuration. Ports are validated once at
// startup, not on every request.
func ParsePort(s string) uint32 {
	p, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		panic(fmt.Sprintf("invalid port %q: %v", s, err))
	}
	return uint32(p)
}
