package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Entry[T any] struct {
	Expiration int64 `json:"expiration"`
	Data       T     `json:"data"`
}

var ErrExpired = errors.New("cache entry expired")

func cacheKey(key string) string {
	return "cache." + key
}

// SetCache stores value under key for ttl seconds, a ttl of zero never expires
func SetCache[T any](key string, ttl int64, value T) {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Unix() + ttl
	}
	SetCacheWithExp(key, exp, value)
}

// SetCacheWithExp stores value under key until the unix time exp
func SetCacheWithExp[T any](key string, exp int64, value T) {
	viper.Set(cacheKey(key), Entry[T]{Expiration: exp, Data: value})
	if settings != nil {
		settings.changed = true
	}
}

func GetCache[T any](key string) (T, error) {
	return getCacheAt[T](key, time.Now())
}

func getCacheAt[T any](key string, now time.Time) (T, error) {
	entry := Entry[T]{}
	value := viper.Get(cacheKey(key))
	if err := mapstructure.Decode(value, &entry); err != nil {
		return entry.Data, fmt.Errorf("failed to get cache data for %s", key)
	}

	if entry.Expiration != 0 && entry.Expiration <= now.Unix() {
		return entry.Data, ErrExpired
	}

	return entry.Data, nil
}

func InvalidateCache[T any](key string) {
	var zero T
	SetCacheWithExp(key, 1, zero)
}
