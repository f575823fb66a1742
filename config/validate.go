package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/ytgrab/ytgrab/icon"
	"github.com/ytgrab/ytgrab/key"
)

var validators = map[string]func(any) error{
	key.IconsVariant: func(v any) error {
		variant, _ := v.(string)
		if !lo.Contains(icon.AvailableVariants(), variant) {
			return fmt.Errorf("unknown icons variant %q, expected one of: %s", variant, strings.Join(icon.AvailableVariants(), ", "))
		}
		return nil
	},
	key.LogsLevel: func(v any) error {
		level, _ := v.(string)
		_, err := logrus.ParseLevel(level)
		return err
	},
	key.DownloadDir: func(v any) error {
		if dir, _ := v.(string); strings.TrimSpace(dir) == "" {
			return fmt.Errorf("%s must not be empty", key.DownloadDir)
		}
		return nil
	},
}

// Validate checks a value about to be stored under k. Keys without a rule accept anything.
func Validate(k string, v any) error {
	if validate, ok := validators[k]; ok {
		return validate(v)
	}
	return nil
}
