package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/the127/attestate/internal/args"
	"github.com/the127/attestate/internal/utils/validate"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Csv      CsvConfig
	Database DatabaseConfig
}

// CsvConfig describes the csv dialect of class files. DateFormat is a Go
// time layout.
type CsvConfig struct {
	Delimiter  string `validate:"required,len=1"`
	DateFormat string `validate:"required"`
}

type DatabaseMode string

const (
	DatabaseModeInMemory DatabaseMode = "memory"
)

type DatabaseConfig struct {
	Mode DatabaseMode `validate:"required,oneof=memory"`
}

var C Config

var k = koanf.New(".")

func Init() {
	if args.ConfigFilePath() != "" {
		_, err := os.Stat(args.ConfigFilePath())
		if err != nil {
			panic(fmt.Errorf("failed to stat config file: %w", err))
		}

		err = k.Load(file.Provider(args.ConfigFilePath()), yaml.Parser())
		if err != nil {
			panic(fmt.Errorf("failed to load config file: %w", err))
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: "ATTESTATE_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "ATTESTATE_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		panic(fmt.Errorf("failed to load env provider: %w", err))
	}

	err = k.Unmarshal("", &C)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal config: %w", err))
	}

	setDefaultsOrPanic()
}

func setDefaultsOrPanic() {
	setCsvDefaultsOrPanic()
	setDatabaseDefaultsOrPanic()

	err := validate.Validate(C)
	if err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}
}

func setCsvDefaultsOrPanic() {
	if C.Csv.Delimiter == "" {
		C.Csv.Delimiter = ";"
	}

	if C.Csv.DateFormat == "" {
		C.Csv.DateFormat = "02.01.2006"
	}
}

func setDatabaseDefaultsOrPanic() {
	if C.Database.Mode == "" {
		C.Database.Mode = DatabaseModeInMemory
	}

	switch C.Database.Mode {
	case DatabaseModeInMemory:
		return

	default:
		panic(fmt.Errorf("unsupported database mode: %s", C.Database.Mode))
	}
}
