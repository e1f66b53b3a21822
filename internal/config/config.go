package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nikbrunner/bmlaunch/internal/search"
)

// Environment keys.
const (
	EnvBookmarksFile    = "BOOKMARKS_FILE"
	EnvDefaultSearchURL = "DEFAULT_SEARCH_URL"
	EnvMatcher          = "BOOKMARKS_MATCHER"
	EnvOutput           = "BOOKMARKS_OUTPUT"
	EnvLimit            = "BOOKMARKS_LIMIT"
	EnvSkipInvalid      = "BOOKMARKS_SKIP_INVALID"
	EnvVerbose          = "BOOKMARKS_VERBOSE"
)

// Output formats.
const (
	OutputAlfred = "alfred"
	OutputText   = "text"
	OutputPick   = "pick"
)

var (
	ErrMissing = errors.New("required setting missing")
	ErrInvalid = errors.New("invalid setting")
)

// Error reports a configuration key that is missing or unusable.
type Error struct {
	Key    string
	Value  string
	Reason string
	err    error
}

func (e *Error) Error() string {
	if e.err == ErrMissing {
		return fmt.Sprintf("%s not set", e.Key)
	}
	return fmt.Sprintf("%s=%q: %s", e.Key, e.Value, e.Reason)
}

func (e *Error) Is(target error) bool {
	return target == e.err
}

// Config holds the settings of one invocation.
type Config struct {
	BookmarksFile    string
	DefaultSearchURL string
	Matcher          string
	Output           string
	Limit            int
	SkipInvalid      bool
	Verbose          bool
}

// DefaultConfig returns the defaults for all optional settings.
func DefaultConfig() Config {
	return Config{
		Matcher: search.MatcherFuzzy,
		Output:  OutputAlfred,
		Limit:   search.DisplayCap,
	}
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first; variables already set take precedence.
func Load() (Config, error) {
	// A missing .env is the common case
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an environment lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	if cfg.BookmarksFile = get(EnvBookmarksFile); cfg.BookmarksFile == "" {
		return Config{}, &Error{Key: EnvBookmarksFile, err: ErrMissing}
	}
	if cfg.DefaultSearchURL = get(EnvDefaultSearchURL); cfg.DefaultSearchURL == "" {
		return Config{}, &Error{Key: EnvDefaultSearchURL, err: ErrMissing}
	}

	if v := strings.ToLower(get(EnvMatcher)); v != "" {
		if _, ok := search.NewScorer(v); !ok {
			return Config{}, invalid(EnvMatcher, v, "want fuzzy or substring")
		}
		cfg.Matcher = v
	}

	if v := strings.ToLower(get(EnvOutput)); v != "" {
		switch v {
		case OutputAlfred, OutputText, OutputPick:
			cfg.Output = v
		default:
			return Config{}, invalid(EnvOutput, v, "want alfred, text or pick")
		}
	}

	if v := get(EnvLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, invalid(EnvLimit, v, "want a positive integer")
		}
		cfg.Limit = n
	}

	var err error
	if cfg.SkipInvalid, err = parseBool(EnvSkipInvalid, get(EnvSkipInvalid)); err != nil {
		return Config{}, err
	}
	if cfg.Verbose, err = parseBool(EnvVerbose, get(EnvVerbose)); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func parseBool(key, v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, invalid(key, v, "want true or false")
	}
	return b, nil
}

func invalid(key, value, reason string) *Error {
	return &Error{Key: key, Value: value, Reason: reason, err: ErrInvalid}
}
