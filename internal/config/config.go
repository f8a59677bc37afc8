// =============================================================================
// EFD Contribuicoes Toolkit - Configuration Module
// =============================================================================
//
// This module loads the application configuration. Every setting has a
// default, so the toolkit runs without a configuration file at all.
//
// SOURCES (later wins):
//   1. Built-in defaults
//   2. The YAML file passed with --config (config.yaml)
//   3. Environment variables, optionally loaded from a .env file:
//        EFD_LOG_LEVEL, EFD_LOG_FORMAT, EFD_INPUT_DIR, EFD_OUTPUT_DIR,
//        EFD_SERVER_ADDR
//
// The core packages (parser, aggregator, projector, serializer) never read
// configuration; the command layer passes what they need as options.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the application configuration.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is scanned by the process command for ledger files.
	// Default: "./input"
	InputDir string `yaml:"input_dir" validate:"required"`

	// InputPattern selects the files of InputDir to process.
	// Default: "*.txt"
	InputPattern string `yaml:"input_pattern" validate:"required"`

	// OutputDir receives exported ledgers and reports.
	// Default: "./output"
	OutputDir string `yaml:"output_dir" validate:"required"`

	// InputArchiveDir receives input files after successful processing.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir" validate:"required"`

	// LogDir receives issue logs and the processing summary.
	// Default: "./logs"
	LogDir string `yaml:"log_dir" validate:"required"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel is one of "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn warning error"`

	// LogFormat is "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// YieldEvery is the number of lines the parser handles between
	// cooperative yields.
	// Default: 500
	YieldEvery int `yaml:"yield_every" validate:"gte=1"`

	// OutputPrefix starts every exported file name.
	// Default: "EFD_CONTRIBUICOES"
	OutputPrefix string `yaml:"output_prefix" validate:"required"`

	// ReportNameFormat names the XLSX report written next to each export.
	// Placeholders:
	//   {name}      - Exported ledger file name without extension
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - Current date (YYYYMMDD)
	// Default: "{name}_RESUMO.xlsx"
	ReportNameFormat string `yaml:"report_name_format" validate:"required"`

	// SchemaTemplate is an optional XLSX workbook that adds or overrides
	// record layouts.
	SchemaTemplate string `yaml:"schema_template,omitempty"`

	// FieldCorrections are applied to every exported record on top of the
	// built-in corrections.
	FieldCorrections []TransformationRule `yaml:"field_corrections" validate:"dive"`

	// StopOnError aborts the process command on the first failed file.
	// Default: false
	StopOnError bool `yaml:"stop_on_error"`

	// =========================================================================
	// SERVER SETTINGS
	// =========================================================================

	Server ServerConfig `yaml:"server"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	// Addr is the listen address.
	// Default: ":8080"
	Addr string `yaml:"addr" validate:"required"`

	// MaxUploadMB caps the size of an uploaded ledger.
	// Default: 64
	MaxUploadMB int `yaml:"max_upload_mb" validate:"gte=1"`
}

// =============================================================================
// TRANSFORMATION RULE STRUCTURE
// =============================================================================

// TransformationRule defines the corrections applied to one field of one
// record type before it is written.
type TransformationRule struct {
	// Record is the record type, e.g. "A170".
	Record string `yaml:"record" validate:"len=4"`

	// Field is the layout field name, e.g. "DESCR_COMPL".
	Field string `yaml:"field" validate:"required"`

	// Actions are applied in order.
	Actions []TransformationAction `yaml:"actions" validate:"min=1,dive"`
}

// TransformationAction defines a single transformation action.
type TransformationAction struct {
	// Type is the type of transformation to apply.
	// Supported types:
	//   - "truncate"             : Keep at most Value characters
	//   - "trim"                 : Remove leading and trailing whitespace
	//   - "trim_left"            : Remove leading whitespace or Value characters
	//   - "trim_right"           : Remove trailing whitespace or Value characters
	//   - "uppercase"            : Convert to uppercase
	//   - "lowercase"            : Convert to lowercase
	//   - "replace"              : Replace Find with Value
	//   - "regex_replace"        : Replace matches of Find with Value
	//   - "pad_zeros_to_length"  : Pad with leading zeros to Value characters
	//   - "ensure_length"        : Truncate or zero-pad to Value characters
	//   - "remove_leading_zeros" : Strip leading zeros
	//   - "extract_digits"       : Keep only digits
	//   - "normalize_whitespace" : Collapse runs of whitespace
	//   - "format_number"        : Rewrite a decimal-comma number with Value places
	//   - "format_date"          : Convert "input|output" Go time layouts
	//   - "lookup"               : Replace via LookupTable
	//   - "if_empty_use_default" : Use Value when the field is blank
	Type string `yaml:"type" validate:"oneof=truncate trim trim_left trim_right uppercase lowercase replace regex_replace pad_zeros_to_length ensure_length remove_leading_zeros extract_digits normalize_whitespace format_number format_date lookup if_empty_use_default"`

	// Value is the parameter of the transformation.
	Value string `yaml:"value"`

	// Find is used by "replace" and "regex_replace".
	Find string `yaml:"find,omitempty"`

	// LookupTable is used by "lookup".
	LookupTable map[string]string `yaml:"lookup_table,omitempty"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the configuration used when no file is given.
func Default() *MainConfig {
	var config MainConfig
	applyMainConfigDefaults(&config)
	return &config
}

// LoadEnvFile loads variables from .env files into the process environment.
// Missing files are ignored; variables already set are not overridden.
func LoadEnvFile(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		_ = godotenv.Load(p)
	}
}

// LoadMainConfig loads the configuration.
//
// PARAMETERS:
//   - configPath: The YAML file. An empty path, or a path that does not
//     exist, yields the defaults.
//
// RETURNS:
//   - The configuration with defaults and environment overrides applied.
//   - An error if the file cannot be parsed, or one wrapping
//     ErrInvalidConfig if a setting is out of range.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	var config MainConfig

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Run on defaults.
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnvOverrides(&config)
	applyMainConfigDefaults(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyEnvOverrides copies EFD_* environment variables onto the config.
func applyEnvOverrides(config *MainConfig) {
	overrides := []struct {
		key    string
		target *string
	}{
		{"EFD_LOG_LEVEL", &config.LogLevel},
		{"EFD_LOG_FORMAT", &config.LogFormat},
		{"EFD_INPUT_DIR", &config.InputDir},
		{"EFD_OUTPUT_DIR", &config.OutputDir},
		{"EFD_SERVER_ADDR", &config.Server.Addr},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.key); ok && strings.TrimSpace(v) != "" {
			*o.target = strings.TrimSpace(v)
		}
	}
}

// applyMainConfigDefaults sets default values for any unset option.
func applyMainConfigDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.InputPattern == "" {
		config.InputPattern = "*.txt"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.LogDir == "" {
		config.LogDir = "./logs"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	config.LogLevel = strings.ToLower(config.LogLevel)
	if config.LogFormat == "" {
		config.LogFormat = "text"
	}
	config.LogFormat = strings.ToLower(config.LogFormat)
	if config.YieldEvery == 0 {
		config.YieldEvery = 500
	}
	if config.OutputPrefix == "" {
		config.OutputPrefix = "EFD_CONTRIBUICOES"
	}
	if config.ReportNameFormat == "" {
		config.ReportNameFormat = "{name}_RESUMO.xlsx"
	}
	if config.Server.Addr == "" {
		config.Server.Addr = ":8080"
	}
	if config.Server.MaxUploadMB == 0 {
		config.Server.MaxUploadMB = 64
	}
}

// validateMainConfig checks the struct tags of the configuration.
func validateMainConfig(config *MainConfig) error {
	validate := validator.New()
	err := validate.Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		problems = append(problems, fmt.Sprintf("%s failed '%s'", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
