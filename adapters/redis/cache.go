package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"iotpersistence/interfaces"
	"iotpersistence/service"

	"github.com/go-redis/redis/v8"
)

// Each cached key owns three Redis keys sharing one hash tag, so the scripts below
// also run on a cluster:
//
//	<prefix>:{<key>}          hash with the entry: version, found, item
//	<prefix>:{<key>}:version  counter bumped by every write to key
//	<prefix>:{<key>}:lock     number of writes in flight, expires after lockMs
//
// An entry is only served while its version equals the counter and no write is in flight.

var lookupScript = redis.NewScript(`
local entry = redis.call('HMGET', KEYS[1], 'version', 'found', 'item')
local version = redis.call('GET', KEYS[2]) or '0'
local locked = redis.call('EXISTS', KEYS[3])
if locked == 1 or entry[1] ~= version then
	return {version, locked, false, false}
end
return {version, locked, entry[2], entry[3]}
`)

var fillScript = redis.NewScript(`
local version = redis.call('GET', KEYS[2]) or '0'
if version ~= ARGV[1] or redis.call('EXISTS', KEYS[3]) == 1 then
	return 0
end
redis.call('DEL', KEYS[1])
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'found', ARGV[2], 'item', ARGV[3])
redis.call('PEXPIRE', KEYS[1], ARGV[4])
return 1
`)

var beginWriteScript = redis.NewScript(`
redis.call('INCR', KEYS[2])
redis.call('DEL', KEYS[1])
redis.call('INCR', KEYS[3])
redis.call('PEXPIRE', KEYS[3], ARGV[1])
return 1
`)

var endWriteScript = redis.NewScript(`
redis.call('INCR', KEYS[2])
redis.call('DEL', KEYS[1])
if redis.call('DECR', KEYS[3]) <= 0 then
	redis.call('DEL', KEYS[3])
end
return 1
`)

type redisCache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
	zero      T
}

var _ interfaces.VersionedCache[any] = &redisCache[any]{}

// NewCache creates redis implementation of generic versioned cache interface.
func NewCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) *redisCache[T] {
	var zero T
	return &redisCache[T]{
		client:    client,
		prefix:    prefix,
		zero:      zero,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

// NewJSONCache is NewCache with encoding/json as the codec.
func NewJSONCache[T any](client redis.UniversalClient, prefix string) *redisCache[T] {
	return NewCache[T](client, prefix, marshalJSON[T], unmarshalJSON[T])
}

func (r *redisCache[T]) Lookup(ctx context.Context, key string) (interfaces.CacheEntry[T], interfaces.FillTicket, error) {
	miss := interfaces.CacheEntry[T]{}

	res, err := lookupScript.Run(ctx, r.client, r.generateKeys(key)).Slice()
	if err != nil {
		return miss, interfaces.FillTicket{}, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}
	if len(res) != 4 {
		return miss, interfaces.FillTicket{}, service.NewInternalServerError("Redis read key error", fmt.Errorf("unexpected lookup reply %v (key='%s')", res, key))
	}

	version, err := strconv.ParseInt(fmt.Sprint(res[0]), 10, 64)
	if err != nil {
		return miss, interfaces.FillTicket{}, service.NewInternalServerError("Redis read key error", fmt.Errorf("invalid version %v (key='%s'), err: %w", res[0], key, err))
	}
	locked, _ := res[1].(int64)
	ticket := interfaces.FillTicket{Version: version, Fillable: locked == 0}

	found, ok := res[2].(string)
	if !ok {
		return miss, ticket, service.NewEntityNotFoundError("Entity not found", nil)
	}
	if found != "1" {
		return interfaces.CacheEntry[T]{Found: false}, ticket, nil
	}

	raw, _ := res[3].(string)
	item, err := r.unmarshal([]byte(raw))
	if err != nil {
		return miss, ticket, service.NewInternalServerError("Redis unmarshal item error", fmt.Errorf("can't unmarshal item of type %T (key='%s'), err: %w", r.zero, key, err))
	}

	return interfaces.CacheEntry[T]{Found: true, Item: item}, ticket, nil
}

func (r *redisCache[T]) Fill(ctx context.Context, key string, entry interfaces.CacheEntry[T], ticket interfaces.FillTicket, ttlMs int) error {
	if !ticket.Fillable {
		return nil
	}

	var (
		found = "0"
		bytes []byte
	)
	if entry.Found {
		found = "1"
		var err error
		if bytes, err = r.marshal(entry.Item); err != nil {
			return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", entry.Item, err))
		}
	}

	err := fillScript.Run(ctx, r.client, r.generateKeys(key), strconv.FormatInt(ticket.Version, 10), found, bytes, ttlMs).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", r.zero, key, err))
	}

	return nil
}

func (r *redisCache[T]) BeginWrite(ctx context.Context, key string, lockMs int) error {
	err := beginWriteScript.Run(ctx, r.client, r.generateKeys(key), lockMs).Err()
	if err != nil {
		return service.NewInternalServerError("Redis invalidate key error", fmt.Errorf("can't invalidate item of type %T in redis (key='%s'), err: %w", r.zero, key, err))
	}
	return nil
}

func (r *redisCache[T]) EndWrite(ctx context.Context, key string) error {
	err := endWriteScript.Run(ctx, r.client, r.generateKeys(key)).Err()
	if err != nil {
		return service.NewInternalServerError("Redis invalidate key error", fmt.Errorf("can't release item of type %T in redis (key='%s'), err: %w", r.zero, key, err))
	}
	return nil
}

// generateKeys returns the entry, version and lock keys of key.
func (r *redisCache[T]) generateKeys(key string) []string {
	entry := r.prefix + ":{" + key + "}"
	return []string{entry, entry + ":version", entry + ":lock"}
}

func marshalJSON[T any](item T) ([]byte, error) {
	return json.Marshal(item)
}

func unmarshalJSON[T any](b []byte) (T, error) {
	var item T
	err := json.Unmarshal(b, &item)
	return item, err
}
