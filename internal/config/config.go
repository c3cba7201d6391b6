package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Bot      *BotConfig
	Store    *StoreConfig
	Identity *IdentityConfig
	API      *APIConfig
}

type BotConfig struct {
	Admins     []string
	Verbose    bool
	LogFile    string
	Trigger    string
	PartReason string
}

type StoreConfig struct {
	Path string
}

type IdentityConfig struct {
	Username   string
	Realname   string
	RetryDelay time.Duration
	MaxRetries int
}

type APIConfig struct {
	Timeout time.Duration
}

// FileSource implements cli.ValueSource for a map loaded from a YAML or TOML file
type FileSource struct {
	data map[string]any
	key  string
}

func (y *FileSource) Lookup() (string, bool) {
	if v, ok := y.data[y.key]; ok {
		// Handle slices by joining with comma
		if slice, ok := v.([]any); ok {
			var strs []string
			for _, item := range slice {
				strs = append(strs, fmt.Sprintf("%v", item))
			}
			return strings.Join(strs, ","), true
		}
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}

func (y *FileSource) String() string   { return "config file" }
func (y *FileSource) GoString() string { return "config file" }

func GetFlags() []cli.Flag {
	// Pre-parse config path
	configPath := getConfigPath()
	var configData map[string]any
	if configPath != "" {
		var err error
		configData, err = LoadFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	// Helper to create sources: EnvVar > config file > Default
	src := func(key string, env ...string) cli.ValueSourceChain {
		chain := cli.ValueSourceChain{}
		for _, e := range env {
			chain.Chain = append(chain.Chain, cli.EnvVar(e))
		}
		if configData != nil {
			chain.Chain = append(chain.Chain, &FileSource{data: configData, key: key})
		}
		return chain
	}

	return []cli.Flag{
		// Config file
		&cli.StringFlag{Name: "config", Aliases: []string{"b"}, Usage: "use the named configuration file", Sources: cli.EnvVars("MULTIJOIN_CONFIG")},

		// Control surface
		&cli.StringSliceFlag{Name: "admins", Aliases: []string{"A"}, Usage: "comma-separated list of hostmasks allowed to issue commands", Sources: src("admins", "MULTIJOIN_ADMINS")},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"V"}, Usage: "enable verbose logging", Sources: src("verbose", "MULTIJOIN_VERBOSE")},
		&cli.StringFlag{Name: "logfile", Usage: "also write JSON logs to this file, rotated by size", Sources: src("logfile", "MULTIJOIN_LOGFILE")},
		&cli.StringFlag{Name: "trigger", Value: "*multijoin", Usage: "first word of a private message that marks it as a command", Sources: src("trigger", "MULTIJOIN_TRIGGER")},
		&cli.StringFlag{Name: "partreason", Value: "Left via MultiJoin module", Usage: "reason sent with PART", Sources: src("partreason", "MULTIJOIN_PARTREASON")},

		// Storage
		&cli.StringFlag{Name: "db", Aliases: []string{"d"}, Value: "multijoin.db", Usage: "path of the account database (:memory: for none)", Sources: src("db", "MULTIJOIN_DB")},

		// Connections
		&cli.StringFlag{Name: "username", Value: "multijoin", Usage: "default ident for connections without one", Sources: src("username", "MULTIJOIN_USERNAME")},
		&cli.StringFlag{Name: "realname", Value: "multijoin", Usage: "default realname for connections without one", Sources: src("realname", "MULTIJOIN_REALNAME")},
		&cli.DurationFlag{Name: "retrydelay", Value: time.Second * 5, Usage: "delay between reconnect attempts", Sources: src("retrydelay", "MULTIJOIN_RETRYDELAY")},
		&cli.IntFlag{Name: "maxretries", Value: 5, Usage: "reconnect attempts per connection before giving up", Sources: src("maxretries", "MULTIJOIN_MAXRETRIES")},

		// Timeouts
		&cli.DurationFlag{Name: "timeout", Aliases: []string{"t"}, Value: time.Second * 30, Usage: "how long a command may wait for the previous one to finish", Sources: src("timeout", "MULTIJOIN_TIMEOUT")},
	}
}

// LoadFile reads a configuration file. Files ending in .toml are parsed as TOML, anything else as YAML.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var out map[string]any
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &out)
	} else {
		err = yaml.Unmarshal(data, &out)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return out, nil
}

func getConfigPath() string {
	// Check env first
	if v := os.Getenv("MULTIJOIN_CONFIG"); v != "" {
		return v
	}
	// Check args
	for i, arg := range os.Args {
		if arg == "--config" || arg == "-b" {
			if i+1 < len(os.Args) {
				return os.Args[i+1]
			}
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func (c *Configuration) PrintConfig() {
	fmt.Printf("admins: %v\n", c.Bot.Admins)
	fmt.Printf("verbose: %t\n", c.Bot.Verbose)
	fmt.Printf("logfile: %s\n", c.Bot.LogFile)
	fmt.Printf("trigger: %s\n", c.Bot.Trigger)
	fmt.Printf("partreason: %s\n", c.Bot.PartReason)
	fmt.Printf("db: %s\n", c.Store.Path)
	fmt.Printf("username: %s\n", c.Identity.Username)
	fmt.Printf("realname: %s\n", c.Identity.Realname)
	fmt.Printf("retrydelay: %s\n", c.Identity.RetryDelay)
	fmt.Printf("maxretries: %d\n", c.Identity.MaxRetries)
	fmt.Printf("timeout: %s\n", c.API.Timeout)
}

func NewConfiguration(c *cli.Command) *Configuration {
	if c.IsSet("config") {
		zap.S().Infow("Using config file", "path", c.String("config"))
	}

	config := &Configuration{
		Bot: &BotConfig{
			Admins:     c.StringSlice("admins"),
			Verbose:    c.Bool("verbose"),
			LogFile:    c.String("logfile"),
			Trigger:    c.String("trigger"),
			PartReason: c.String("partreason"),
		},
		Store: &StoreConfig{
			Path: c.String("db"),
		},
		Identity: &IdentityConfig{
			Username:   c.String("username"),
			Realname:   c.String("realname"),
			RetryDelay: c.Duration("retrydelay"),
			MaxRetries: c.Int("maxretries"),
		},
		API: &APIConfig{
			Timeout: c.Duration("timeout"),
		},
	}

	return config
}
