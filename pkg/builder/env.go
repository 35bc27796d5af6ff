package builder

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joeydtaylor/arraysaver/pkg/internal/codec"
	"github.com/joeydtaylor/arraysaver/pkg/internal/compression"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
)

// EnvOr returns the trimmed env value or def when empty.
func EnvOr(key, def string) string {
	v := strings.TrimSpace(strings.Trim(os.Getenv(key), `"`))
	if v == "" {
		return def
	}
	return v
}

// EnvIntOr returns the parsed int env value or def on empty/parse failure.
func EnvIntOr(key string, def int) int {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvBoolOr returns the parsed bool env value or def on empty/parse failure.
func EnvBoolOr(key string, def bool) bool {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// OptionsFromEnv reads codec options from <prefix>_DELIMITER,
// <prefix>_DECIMAL_COMMA, <prefix>_COMMA_MODE, <prefix>_WIDTH, <prefix>_PARSE,
// <prefix>_COMPRESSION and <prefix>_MAX_LINE_BYTES. Unset variables leave the
// default in place; a set but invalid value is an error.
func OptionsFromEnv(prefix string) ([]Option, error) {
	key := func(name string) string { return prefix + "_" + name }
	var opts []Option

	if v := EnvOr(key("DELIMITER"), ""); v != "" {
		d, err := parseDelimiter(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key("DELIMITER"), err)
		}
		opts = append(opts, codec.WithDelimiter(d))
	}

	if v := EnvOr(key("DECIMAL_COMMA"), ""); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key("DECIMAL_COMMA"), err)
		}
		opts = append(opts, codec.WithDecimalComma(on))
	}

	if v := EnvOr(key("COMMA_MODE"), ""); v != "" {
		switch mode := types.CommaMode(strings.ToLower(v)); mode {
		case types.CommaAlways, types.CommaGated:
			opts = append(opts, codec.WithCommaMode(mode))
		default:
			return nil, fmt.Errorf("%s: unknown comma mode %q", key("COMMA_MODE"), v)
		}
	}

	if v := EnvOr(key("WIDTH"), ""); v != "" {
		switch p := types.WidthPolicy(strings.ToLower(v)); p {
		case types.WidthLastRow, types.WidthMax, types.WidthUniform:
			opts = append(opts, codec.WithWidthPolicy(p))
		default:
			return nil, fmt.Errorf("%s: unknown width policy %q", key("WIDTH"), v)
		}
	}

	if v := EnvOr(key("PARSE"), ""); v != "" {
		switch p := types.ParsePolicy(strings.ToLower(v)); p {
		case types.ParseLenient, types.ParseStrict:
			opts = append(opts, codec.WithParsePolicy(p))
		default:
			return nil, fmt.Errorf("%s: unknown parse policy %q", key("PARSE"), v)
		}
	}

	if v := EnvOr(key("COMPRESSION"), ""); v != "" {
		c, err := compression.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key("COMPRESSION"), err)
		}
		opts = append(opts, codec.WithCompression(c))
	}

	if n := EnvIntOr(key("MAX_LINE_BYTES"), 0); n > 0 {
		opts = append(opts, codec.WithMaxLineBytes(n))
	}

	return opts, nil
}

// S3ConfigFromEnv reads <prefix>_S3_REGION, _S3_ENDPOINT, _S3_PATH_STYLE,
// _S3_ACCESS_KEY, _S3_SECRET_KEY, _S3_SESSION_TOKEN, _S3_ROLE_ARN and
// _S3_EXTERNAL_ID. Anything unset falls through to the AWS default chain.
func S3ConfigFromEnv(prefix string) S3Config {
	key := func(name string) string { return prefix + "_S3_" + name }
	return S3Config{
		Region:         EnvOr(key("REGION"), ""),
		Endpoint:       EnvOr(key("ENDPOINT"), ""),
		ForcePathStyle: EnvBoolOr(key("PATH_STYLE"), false),
		AccessKey:      EnvOr(key("ACCESS_KEY"), ""),
		SecretKey:      EnvOr(key("SECRET_KEY"), ""),
		SessionToken:   EnvOr(key("SESSION_TOKEN"), ""),
		RoleARN:        EnvOr(key("ROLE_ARN"), ""),
		ExternalID:     EnvOr(key("EXTERNAL_ID"), ""),
	}
}

// parseDelimiter accepts a single character or one of the names tab, comma,
// semicolon, pipe and space.
func parseDelimiter(v string) (rune, error) {
	switch strings.ToLower(v) {
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	case "space":
		return ' ', nil
	}
	r, size := utf8.DecodeRuneInString(v)
	if size != len(v) {
		return 0, fmt.Errorf("%w: %q is not a single character", codec.ErrInvalidDelimiter, v)
	}
	if err := codec.ValidateDelimiter(r); err != nil {
		return 0, err
	}
	return r, nil
}
