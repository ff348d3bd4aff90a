package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// envPrefix is prepended to the upper snake case flag name to get the
// environment variable a flag falls back to, e.g. --ca-cert-path is read from
// JOBSERVER_CA_CERT_PATH.
const envPrefix = "JOBSERVER_"

type config struct {
	Host  string `flag:"host"  validate:"required,hostname|ip"`
	Port  uint16 `flag:"port"  validate:"required"`
	Debug bool   `flag:"debug"`

	CertPath   string `flag:"cert-path"    validate:"required,file"`
	KeyPath    string `flag:"key-path"     validate:"required,file"`
	CACertPath string `flag:"ca-cert-path" validate:"required,file"`

	Capacity          int  `flag:"capacity"            validate:"min=1,max=4096"`
	Workers           int  `flag:"workers"             validate:"min=0,max=1024"`
	CheckIDCollisions bool `flag:"check-id-collisions"`
	MaxSessions       int  `flag:"max-sessions"        validate:"min=0"`

	AdminAddr string `flag:"admin-addr" validate:"omitempty,hostname_port"`
	RedisURL  string `flag:"redis-url"  validate:"omitempty,url"`

	EnvFile         string        `flag:"env-file"`
	ShutdownTimeout time.Duration `flag:"shutdown-timeout" validate:"min=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report flag names rather than struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("flag")
	})

	return v
}

func (c *config) validate() error {
	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return validationErr(ve)
		}

		return fmt.Errorf("validate config: %w", err)
	}

	return nil
}

func validationErr(ve validator.ValidationErrors) error {
	errs := make([]error, 0, len(ve))

	for _, fe := range ve {
		flag := fe.Field()

		switch fe.Tag() {
		case "required":
			errs = append(errs, fmt.Errorf("%s cannot be empty", flag))
		case "file":
			errs = append(errs, fmt.Errorf("%s must be an existing file", flag))
		case "min", "max":
			errs = append(
				errs,
				fmt.Errorf("%s must be %s %s", flag, bound(fe.Tag()), fe.Param()),
			)
		default:
			errs = append(errs, fmt.Errorf("%s is invalid: '%v'", flag, fe.Value()))
		}
	}

	return errors.Join(errs...)
}

func bound(tag string) string {
	if tag == "min" {
		return "at least"
	}

	return "at most"
}

func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// loadConfig completes cfg from the environment. Values are taken, in order
// of precedence, from the command line, the environment, the env file and
// finally the flag defaults.
func loadConfig(flags *pflag.FlagSet, cfg *config) error {
	envFile := cfg.EnvFile
	if !flags.Changed("env-file") {
		if v, ok := os.LookupEnv(envName("env-file")); ok {
			envFile = v
		}
	}

	if envFile != "" {
		// Variables already set in the environment are not overridden.
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	}

	if err := applyEnv(flags); err != nil {
		return err
	}

	return cfg.validate()
}

// applyEnv sets every flag not given on the command line from its environment
// variable, if present.
func applyEnv(flags *pflag.FlagSet) error {
	var unset []*pflag.Flag

	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			unset = append(unset, f)
		}
	})

	var errs []error

	for _, f := range unset {
		v, ok := os.LookupEnv(envName(f.Name))
		if !ok {
			continue
		}

		if err := flags.Set(f.Name, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", envName(f.Name), err))
		}
	}

	return errors.Join(errs...)
}
