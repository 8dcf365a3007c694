package config

import (
	_ "embed"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/parley-go/parley/pkg/errors"
	"github.com/parley-go/parley/pkg/logging"
)

//go:embed parley.toml
var embeddedDefaults []byte

// rawBytesProvider feeds embedded bytes to koanf.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "raw bytes provider does not support Read")
}

// systemDefaults is the safety net under the embedded file; the two
// normally agree, but a broken embed must not take the engine down.
func systemDefaults() map[string]interface{} {
	return map[string]interface{}{
		"theme.name":       "auto",
		"theme.color":      "auto",
		"theme.unicode":    "auto",
		"spinner.interval": "100ms",
		"note.markdown":    false,
	}
}

// Load returns the layered engine settings: system defaults, the
// embedded parley.toml, the user's config file, then environment
// variables, each layer overriding the one below.
func Load() (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(systemDefaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load system defaults")
	}

	if err := k.Load(&rawBytesProvider{bytes: embeddedDefaults}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	if path, err := xdg.SearchConfigFile(filepath.Join("parley", "parley.toml")); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load config file").
				WithDetail("path", path)
		}
	}

	err := k.Load(env.Provider("PARLEY_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "PARLEY_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal settings")
	}

	s.normalize()

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("theme", s.Theme.Name).
		Dur("spinner_interval", s.Spinner.Interval).
		Msg("Settings loaded")

	return &s, nil
}
