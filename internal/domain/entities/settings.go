package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

const (
	DriverCLI    = "cli"
	DriverNative = "native"
)

// Settings is the optional configuration file of gilthub.
type Settings struct {
	Profile  string     `yaml:"profile"`  // used when --profile is empty
	Driver   string     `yaml:"driver"`   // "cli" (default) or "native"
	TempDir  string     `yaml:"temp_dir"` // parent of scratch directories, OS default when empty
	Binaries Binaries   `yaml:"binaries"`
	S3       S3Settings `yaml:"s3"`
}

// Binaries names the executables used by the cli driver.
type Binaries struct {
	Git string `yaml:"git" hcl:"git,optional"`
	Tar string `yaml:"tar" hcl:"tar,optional"`
	AWS string `yaml:"aws" hcl:"aws,optional"`
}

// S3Settings configures the native object-storage driver.
type S3Settings struct {
	Endpoint        string `yaml:"endpoint" hcl:"endpoint,optional"`
	Region          string `yaml:"region" hcl:"region,optional"`
	CredentialsFile string `yaml:"credentials_file" hcl:"credentials_file,optional"` // AWS shared credentials file
	Insecure        bool   `yaml:"insecure" hcl:"insecure,optional"`
}

// hclSettings mirrors Settings with optional blocks for gohcl decoding.
type hclSettings struct {
	Profile  string      `hcl:"profile,optional"`
	Driver   string      `hcl:"driver,optional"`
	TempDir  string      `hcl:"temp_dir,optional"`
	Binaries *Binaries   `hcl:"binaries,block"`
	S3       *S3Settings `hcl:"s3,block"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Driver: DriverCLI,
		Binaries: Binaries{
			Git: "git",
			Tar: "tar",
			AWS: "aws",
		},
		S3: S3Settings{
			Endpoint: "s3.amazonaws.com",
		},
	}
}

// NewSettings reads a YAML or HCL settings file on top of DefaultSettings.
// The format is chosen by the file extension (".hcl" or anything else for YAML).
func NewSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	var err error
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		err = decodeHCL(path, settings)
	} else {
		err = decodeYAML(path, settings)
	}
	if err != nil {
		return nil, err
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// Validate checks for values the pipelines cannot work with.
func (s *Settings) Validate() error {
	switch s.Driver {
	case DriverCLI, DriverNative:
	default:
		return fmt.Errorf("driver must be %q or %q, got %q", DriverCLI, DriverNative, s.Driver)
	}

	if s.Driver == DriverCLI {
		if s.Binaries.Git == "" || s.Binaries.Tar == "" || s.Binaries.AWS == "" {
			return errors.New("binaries.git, binaries.tar and binaries.aws must not be empty")
		}
	}
	if s.Driver == DriverNative && s.S3.Endpoint == "" {
		return errors.New("s3.endpoint is required by the native driver")
	}
	return nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".gilthub.yaml",
		".gilthub.yml",
		".gilthub.hcl",
		"gilthub.yaml",
		"gilthub.yml",
		"gilthub.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func decodeYAML(path string, settings *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	for _, field := range []*string{
		&settings.Profile,
		&settings.TempDir,
		&settings.S3.Endpoint,
		&settings.S3.Region,
		&settings.S3.CredentialsFile,
	} {
		*field = expandEnv(*field)
	}
	return nil
}

func decodeHCL(path string, settings *Settings) error {
	var decoded hclSettings
	if err := hclsimple.DecodeFile(path, envEvalContext(), &decoded); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if decoded.Profile != "" {
		settings.Profile = decoded.Profile
	}
	if decoded.Driver != "" {
		settings.Driver = decoded.Driver
	}
	if decoded.TempDir != "" {
		settings.TempDir = decoded.TempDir
	}
	if decoded.Binaries != nil {
		mergeString(&settings.Binaries.Git, decoded.Binaries.Git)
		mergeString(&settings.Binaries.Tar, decoded.Binaries.Tar)
		mergeString(&settings.Binaries.AWS, decoded.Binaries.AWS)
	}
	if decoded.S3 != nil {
		mergeString(&settings.S3.Endpoint, decoded.S3.Endpoint)
		mergeString(&settings.S3.Region, decoded.S3.Region)
		mergeString(&settings.S3.CredentialsFile, decoded.S3.CredentialsFile)
		settings.S3.Insecure = decoded.S3.Insecure
	}
	return nil
}

// envEvalContext exposes the process environment to HCL files as `env.NAME`.
func envEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func mergeString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
