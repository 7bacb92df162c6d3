package pagecomp

// DefaultModel is the Gemini model used for pattern analysis.
const DefaultModel = "gemini-2.5-flash"

// Config holds the settings of a run. Zero values fall back to defaults.
type Config struct {
	Policy   Policy       `yaml:"policy"`
	Match    MatchMode    `yaml:"match"`
	MaxFiles int          `yaml:"max_files"`
	Limits   Limits       `yaml:"limits"`
	Gemini   GeminiConfig `yaml:"gemini"`
}

// GeminiConfig configures the analysis backend. The API key is never read
// from the config file; it comes from the environment.
type GeminiConfig struct {
	Model       string   `yaml:"model"`
	Temperature *float32 `yaml:"temperature"`
	APIKey      string   `yaml:"-"`
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero-valued fields with their defaults. Limits left
// at zero take the policy's defaults.
func (c *Config) ApplyDefaults() {
	if c.Policy == "" {
		c.Policy = PolicyLoose
	}
	if c.Match == "" {
		c.Match = MatchSubstring
	}
	if c.MaxFiles == 0 {
		c.MaxFiles = MaxFiles
	}
	def := DefaultLimits(c.Policy)
	if c.Limits.Text == 0 {
		c.Limits.Text = def.Text
	}
	if c.Limits.Markup == 0 {
		c.Limits.Markup = def.Markup
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = DefaultModel
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	switch c.Policy {
	case PolicyStrict, PolicyLoose:
	default:
		return Errorf(EINVALID, "unknown policy %q (want strict or loose)", c.Policy)
	}
	switch c.Match {
	case MatchSubstring, MatchWord:
	default:
		return Errorf(EINVALID, "unknown match mode %q (want substring or word)", c.Match)
	}
	if c.MaxFiles < 0 {
		return Errorf(EINVALID, "max_files must not be negative")
	}
	if c.Limits.Text < 0 || c.Limits.Markup < 0 {
		return Errorf(EINVALID, "limits must not be negative")
	}
	if t := c.Gemini.Temperature; t != nil && (*t < 0 || *t > 2) {
		return Errorf(EINVALID, "gemini temperature must be between 0 and 2")
	}
	return nil
}
