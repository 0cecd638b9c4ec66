// Package tintsdev generates tonal scales through the remote tint service
// instead of the local generator, caching responses on disk.
package tintsdev

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/freetint-cli/freetint/constant"
	"github.com/freetint-cli/freetint/hsl"
	"github.com/freetint-cli/freetint/key"
	"github.com/freetint-cli/freetint/log"
	"github.com/freetint-cli/freetint/network"
	"github.com/freetint-cli/freetint/tint"
	"github.com/spf13/viper"
)

// ErrMalformedScale indicates the service answered 200 with a payload that
// does not contain a usable nine-stop scale.
var ErrMalformedScale = errors.New("malformed remote scale")

// Scale retrieves the tonal scale named name and seeded with the "#RRGGBB"
// value from the remote tint service. Cached responses are served without a
// network round trip; fresh ones are cached for the configured lifetime.
func Scale(name, value string) ([]tint.Tint, error) {
	seed := strings.ToLower(strings.TrimPrefix(value, "#"))
	cacheKey := name + ":" + seed

	if cached, ok := scaleCacher().Get(cacheKey).Get(); ok {
		log.Debugf("remote scale %s served from cache", cacheKey)
		return cached, nil
	}

	tints, err := fetch(name, seed)
	if err != nil {
		return nil, err
	}

	// A cold cache only costs an extra request next time.
	if err = scaleCacher().Set(cacheKey, tints); err != nil {
		log.Warnf("failed to cache remote scale %s: %v", cacheKey, err)
	}

	return tints, nil
}

// fetch performs the service request and decodes the response body.
func fetch(name, seed string) ([]tint.Tint, error) {
	url := fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(viper.GetString(key.RemoteURL), "/"), name, seed)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create remote scale request: %w", err)
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote scale request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote tint service returned status %d for scale %q", resp.StatusCode, name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read remote scale response: %w", err)
	}

	return decode(name, body)
}

// decode converts a service payload into tints ordered by stop. The payload
// nests "#RRGGBB" values by scale name and stop:
//
//	{"brand": {"50": "#effefa", "100": "#c7fff1", ..., "950": "#00110c"}}
//
// Only the nine canonical stops are kept; every one of them must be present
// and hold a well-formed color.
func decode(name string, body []byte) ([]tint.Tint, error) {
	var payload map[string]map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse remote scale response: %w", err)
	}

	stops, ok := payload[name]
	if !ok {
		return nil, fmt.Errorf("%w: scale %q missing from response", ErrMalformedScale, name)
	}

	tints := make([]tint.Tint, 0, len(tint.Stops))
	for _, stop := range tint.Stops {
		value, ok := stops[stop.String()]
		if !ok {
			return nil, fmt.Errorf("%w: scale %q has no stop %s", ErrMalformedScale, name, stop)
		}

		hex := strings.ToLower(strings.TrimPrefix(value, "#"))
		if _, err := hsl.Parse("#" + hex); err != nil {
			return nil, fmt.Errorf("%w: scale %q stop %s: %s", ErrMalformedScale, name, stop, err)
		}

		tints = append(tints, tint.Tint{Group: name, Stop: stop, Hex: hex})
	}

	return tints, nil
}
