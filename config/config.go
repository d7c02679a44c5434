package config

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath                  = "data-path"
	ConfigLexiconPath               = "lexicon-path"
	ConfigLetterDistributionPath    = "letter-distribution-path"
	ConfigDefaultLexicon            = "default-lexicon"
	ConfigDefaultLetterDistribution = "default-letter-distribution"
	ConfigBoardLayout               = "board-layout"
	ConfigLexiconEncoding           = "lexicon-encoding"
	ConfigRackSize                  = "rack-size"
	ConfigBingoBonus                = "bingo-bonus"
	ConfigSearchThreads             = "search-threads"
	ConfigDebug                     = "debug"
	ConfigCPUProfile                = "cpu-profile"
)

// Config wraps a viper instance. Values come from (in increasing order of
// precedence) defaults, a config file in the data path, LEXIGRID_ env
// variables and command-line flags.
type Config struct {
	sync.Mutex
	viper.Viper

	args []string
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDataPath, "./data")
	c.SetDefault(ConfigLexiconPath, "./data/lexica")
	c.SetDefault(ConfigLetterDistributionPath, "./data/letterdistributions")
	c.SetDefault(ConfigDefaultLexicon, "greek")
	c.SetDefault(ConfigDefaultLetterDistribution, "greek")
	c.SetDefault(ConfigBoardLayout, "CrosswordGame")
	c.SetDefault(ConfigLexiconEncoding, "utf-8")
	c.SetDefault(ConfigRackSize, 7)
	c.SetDefault(ConfigBingoBonus, 50)
	c.SetDefault(ConfigSearchThreads, 0)
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigCPUProfile, "")
}

// DefaultConfig returns a config with only the default values set. It is
// mostly useful for tests.
func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	c.setDefaults()
	return c
}

// Load loads the config from the environment, an optional config file and
// the passed-in command-line arguments.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("lexigrid", pflag.ContinueOnError)
	fs.String(ConfigDataPath, c.GetString(ConfigDataPath), "directory holding data files")
	fs.String(ConfigLexiconPath, c.GetString(ConfigLexiconPath), "directory holding lexicon files")
	fs.String(ConfigLetterDistributionPath, c.GetString(ConfigLetterDistributionPath), "directory holding letter distribution csv files")
	fs.String(ConfigDefaultLexicon, c.GetString(ConfigDefaultLexicon), "the default lexicon to use")
	fs.String(ConfigDefaultLetterDistribution, c.GetString(ConfigDefaultLetterDistribution), "the default letter distribution to use")
	fs.String(ConfigBoardLayout, c.GetString(ConfigBoardLayout), "built-in board layout name or path to a yaml layout")
	fs.String(ConfigLexiconEncoding, c.GetString(ConfigLexiconEncoding), "encoding of plain-text word lists (utf-8 or iso-8859-7)")
	fs.Int(ConfigRackSize, c.GetInt(ConfigRackSize), "number of tiles on a full rack")
	fs.Int(ConfigBingoBonus, c.GetInt(ConfigBingoBonus), "bonus for playing a full rack")
	fs.Int(ConfigSearchThreads, c.GetInt(ConfigSearchThreads), "threads for move search; 0 means GOMAXPROCS")
	fs.Bool(ConfigDebug, c.GetBool(ConfigDebug), "debug logging on")
	fs.String(ConfigCPUProfile, c.GetString(ConfigCPUProfile), "write a cpu profile to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("lexigrid")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetConfigName("config")
	c.SetConfigType("yaml")
	c.AddConfigPath(c.GetString(ConfigDataPath))
	if err := c.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		log.Debug().Msg("no config file found; using defaults and flags")
	}
	return nil
}

// Args returns the command-line arguments left over after the flags.
func (c *Config) Args() []string {
	return c.args
}

// AdjustRelativePaths makes the data paths absolute, relative to basePath,
// if they were not absolute already.
func (c *Config) AdjustRelativePaths(basePath string) {
	for _, key := range []string{ConfigDataPath, ConfigLexiconPath, ConfigLetterDistributionPath} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		c.Set(key, filepath.Join(basePath, p))
	}
}

// SanitizedSettings returns the settings as a map, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
