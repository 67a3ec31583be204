package lock

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// снимаем блокировку, только если она все еще наша
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisOptions параметры подключения к Redis
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
}

// NewRedisClient создает клиента и проверяет соединение
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	var tlsConf *tls.Config
	if opts.TLS {
		tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(&redis.Options{
		Addr:      opts.Addr,
		Password:  opts.Password,
		DB:        opts.DB,
		TLSConfig: tlsConf,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrLockBackend, opts.Addr, err)
	}

	return client, nil
}

// RedisLocker распределенная блокировка на SET NX PX
type RedisLocker struct {
	client        redis.Cmdable
	ttl           time.Duration
	wait          time.Duration
	retryInterval time.Duration
}

// NewRedisLocker создает блокировщик
// ttl - время жизни ключа, wait - сколько ждать освобождения чужой блокировки
func NewRedisLocker(client redis.Cmdable, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{
		client:        client,
		ttl:           ttl,
		wait:          wait,
		retryInterval: 25 * time.Millisecond,
	}
}

// Lock берет блокировку по ключу, ожидая не дольше wait
// Отмена ctx во время ожидания тоже возвращает ErrLockTimeout
func (l *RedisLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("%w: key=%s: %w", ErrLockTimeout, key, ctxErr)
			}
			return nil, fmt.Errorf("%w: SETNX %s: %v", ErrLockBackend, key, err)
		}
		if ok {
			return l.unlockFunc(key, token), nil
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: key=%s", ErrLockTimeout, key)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: key=%s: %w", ErrLockTimeout, key, ctx.Err())
		case <-time.After(l.retryInterval):
		}
	}
}

func (l *RedisLocker) unlockFunc(key, token string) Unlock {
	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("%w: release %s: %v", ErrLockBackend, key, err)
		}
		return nil
	}
}
