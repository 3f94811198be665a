package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	mask "github.com/showa-93/go-mask"

	"github.com/canvassing/pax-rewards/internal/goodns"
)

type Config struct {
	Host                string        `default:"127.0.0.1"`
	Port                int           `default:"6379"`
	Password            string        `default:"" mask:"fixed"`
	IsFailover          bool          `default:"false"`
	SentinelMaster      string        `default:"master"`
	SentinelDNS         string        `default:""`
	IsElastiCache       bool          `default:"false"`
	IsClusterMode       bool          `default:"false"`
	ClusterAddrs        []string      `default:""`
	ClusterMaxRedirects int           `default:"3"`
	ReadTimeout         time.Duration `default:"3s"`
	PoolSize            int           `default:"50"`
}

// NewRedisClient builds a client from environment variables under envPrefix.
// In failover mode the sentinel addresses are resolved from Host's A records.
func NewRedisClient(ctx context.Context, envPrefix string) (redis.UniversalClient, error) {
	masker := mask.NewMasker()
	masker.RegisterMaskStringFunc(mask.MaskTypeFilled, masker.MaskFilledString)
	masker.RegisterMaskStringFunc(mask.MaskTypeFixed, masker.MaskFixedString)

	c := Config{}
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return nil, fmt.Errorf("failed to load redis config: %w", err)
	}
	conf, _ := masker.Mask(c)
	log.Ctx(ctx).Warn().Msgf("Redis Config: %+v", conf)

	var client redis.UniversalClient
	switch {
	case c.IsClusterMode:
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:        c.ClusterAddrs,
			MaxRedirects: c.ClusterMaxRedirects,
			ReadTimeout:  c.ReadTimeout,
			PoolSize:     c.PoolSize,
			Password:     c.Password,
		})
	case c.IsFailover:
		addrs, err := sentinelAddrs(ctx, &goodns.Resolver{Server: c.SentinelDNS, UseTCP: true}, c.Host, c.Port)
		if err != nil {
			return nil, err
		}
		client = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    c.SentinelMaster,
			SentinelAddrs: addrs,
			Password:      c.Password,
			PoolSize:      c.PoolSize,
			ReadTimeout:   c.ReadTimeout,
		})
	default:
		option := &redis.Options{
			Addr:        fmt.Sprintf("%s:%d", c.Host, c.Port),
			ReadTimeout: c.ReadTimeout,
			PoolSize:    c.PoolSize,
			Password:    c.Password,
		}
		if c.IsElastiCache {
			// Elasticache cert cannot be applied to cname record we use
			option.TLSConfig = &tls.Config{
				// nolint: gosec
				InsecureSkipVerify: true,
			}
		}
		client = redis.NewClient(option)
	}

	if err := redisotel.InstrumentTracing(client); err != nil {
		return nil, fmt.Errorf("failed to instrument redis tracing: %w", err)
	}
	if err := redisotel.InstrumentMetrics(client); err != nil {
		return nil, fmt.Errorf("failed to instrument redis metrics: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

type resolver interface {
	LookupA(ctx context.Context, domain string) ([]net.IP, error)
}

// sentinelAddrs expands host into one address per sentinel behind it.
func sentinelAddrs(ctx context.Context, r resolver, host string, port int) ([]string, error) {
	dnsCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	ips, err := r.LookupA(dnsCtx, host)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve redis sentinels: %w", err)
	}
	addrs := make([]string, len(ips))
	for i, ip := range ips {
		log.Ctx(ctx).Info().Str("host", host).Str("ip", ip.String()).Msg("resolved redis sentinel")
		addrs[i] = net.JoinHostPort(ip.String(), strconv.Itoa(port))
	}
	return addrs, nil
}
