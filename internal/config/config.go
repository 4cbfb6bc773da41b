// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables and
// an optional JSON file.
//
// Values are resolved in this order, later sources winning: defaults, the
// JSON file named by -c or CONFIG, command-line flags, environment.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atinyakov/fridgebook/internal/mealdb"
)

// Options holds the configuration values for the application.
type Options struct {
	// ServerAddress is the HTTP listening address (ip:port).
	ServerAddress string `json:"server_address"`

	// GRPCAddress is the gRPC listening address. Empty disables gRPC.
	GRPCAddress string `json:"grpc_address"`

	// FirestoreProject selects the Firestore backend when set.
	FirestoreProject string `json:"firestore_project"`

	// DatabaseDSN selects the PostgreSQL backend when set.
	DatabaseDSN string `json:"database_dsn"`

	// FilePath selects the journal file backend when set.
	FilePath string `json:"file_storage_path"`

	// FirebaseProject enables Firebase ID token sign-in.
	FirebaseProject string `json:"firebase_project"`

	MealDBURL string `json:"mealdb_url"`

	// JWTSecret signs session cookies. A random secret is used when empty.
	JWTSecret string `json:"jwt_secret"`

	// TrustedSubnet is the CIDR allowed to read internal stats.
	TrustedSubnet string `json:"trusted_subnet"`

	// FanOut bounds concurrent recipe reads per request.
	FanOut int `json:"fan_out"`

	LogLevel string `json:"log_level"`

	// EnablePprof indicates whether to enable pprof for performance profiling.
	EnablePprof bool `json:"enable_pprof"`

	// EnableHTTPS serves TLS with certificates from Let's Encrypt.
	EnableHTTPS bool `json:"enable_https"`

	// TLSHosts are the host names certificates are requested for.
	TLSHosts []string `json:"tls_hosts"`

	// Config is the path of the JSON config file.
	Config string `json:"-"`
}

// Default returns the built-in configuration.
func Default() Options {
	return Options{
		ServerAddress: "localhost:8080",
		GRPCAddress:   ":3200",
		MealDBURL:     mealdb.DefaultBaseURL,
		FanOut:        8,
		LogLevel:      "info",
	}
}

// Parse reads the process arguments and environment.
func Parse() (*Options, error) {
	return ParseArgs(os.Args[1:], os.LookupEnv)
}

// Usage prints the command-line flags with their built-in defaults. Parse
// returns flag.ErrHelp for -h and leaves printing to the caller.
func Usage(w io.Writer) {
	o := Default()
	fs := newFlagSet(&o)
	fs.SetOutput(w)

	fmt.Fprintf(w, "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
}

// ParseArgs resolves the configuration from args and the lookup function
// standing in for the environment.
func ParseArgs(args []string, lookup func(string) (string, bool)) (*Options, error) {
	// the first pass only finds the config file
	first := Default()
	if err := newFlagSet(&first).Parse(args); err != nil {
		return nil, err
	}
	path := first.Config
	if v, ok := lookup("CONFIG"); ok && v != "" {
		path = v
	}

	options := Default()
	if path != "" {
		if err := loadFile(path, &options); err != nil {
			return nil, err
		}
	}
	options.Config = path

	// flags registered with the file values as defaults only override what
	// was given explicitly
	if err := newFlagSet(&options).Parse(args); err != nil {
		return nil, err
	}
	options.Config = path

	if err := applyEnv(&options, lookup); err != nil {
		return nil, err
	}

	if options.FanOut <= 0 {
		return nil, fmt.Errorf("fan out must be positive, got %d", options.FanOut)
	}
	return &options, nil
}

func newFlagSet(o *Options) *flag.FlagSet {
	fs := flag.NewFlagSet("fridgebook", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&o.ServerAddress, "a", o.ServerAddress, "run on ip:port server")
	fs.StringVar(&o.GRPCAddress, "g", o.GRPCAddress, "gRPC ip:port, empty to disable")
	fs.StringVar(&o.FirestoreProject, "fs", o.FirestoreProject, "Firestore project id")
	fs.StringVar(&o.DatabaseDSN, "d", o.DatabaseDSN, "db address")
	fs.StringVar(&o.FilePath, "f", o.FilePath, "path to storage file")
	fs.StringVar(&o.FirebaseProject, "fb", o.FirebaseProject, "Firebase project for ID tokens")
	fs.StringVar(&o.MealDBURL, "m", o.MealDBURL, "TheMealDB API base url")
	fs.StringVar(&o.JWTSecret, "k", o.JWTSecret, "session token secret")
	fs.StringVar(&o.TrustedSubnet, "t", o.TrustedSubnet, "trusted subnet (CIDR)")
	fs.IntVar(&o.FanOut, "n", o.FanOut, "concurrent recipe reads per request")
	fs.StringVar(&o.LogLevel, "l", o.LogLevel, "log level")
	fs.BoolVar(&o.EnablePprof, "p", o.EnablePprof, "enable pprof")
	fs.BoolVar(&o.EnableHTTPS, "s", o.EnableHTTPS, "enable https")
	fs.Func("hosts", "comma separated TLS host names", func(v string) error {
		o.TLSHosts = splitList(v)
		return nil
	})
	fs.StringVar(&o.Config, "c", o.Config, "path to JSON config file")

	return fs
}

func loadFile(path string, o *Options) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(o); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(o *Options, lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"SERVER_ADDRESS":    &o.ServerAddress,
		"GRPC_ADDRESS":      &o.GRPCAddress,
		"FIRESTORE_PROJECT": &o.FirestoreProject,
		"DATABASE_DSN":      &o.DatabaseDSN,
		"FILE_STORAGE_PATH": &o.FilePath,
		"FIREBASE_PROJECT":  &o.FirebaseProject,
		"MEALDB_URL":        &o.MealDBURL,
		"JWT_SECRET":        &o.JWTSecret,
		"TRUSTED_SUBNET":    &o.TrustedSubnet,
		"LOG_LEVEL":         &o.LogLevel,
	}
	for name, dst := range str {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"ENABLE_PPROF": &o.EnablePprof,
		"ENABLE_HTTPS": &o.EnableHTTPS,
	}
	for name, dst := range bools {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}

	if v, ok := lookup("FAN_OUT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FAN_OUT: %w", err)
		}
		o.FanOut = n
	}

	if v, ok := lookup("TLS_HOSTS"); ok && v != "" {
		o.TLSHosts = splitList(v)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
