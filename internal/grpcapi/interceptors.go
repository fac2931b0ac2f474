package grpcapi

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"authgrid.org/api/authv1"
	"authgrid.org/internal/obs"
)

// MetricsInterceptor records per-method totals and latency.
func MetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		obs.ObserveRPC(info.FullMethod, status.Code(err).String(), time.Since(start))
		return resp, err
	}
}

// LoginLimiter throttles authentication attempts per source IP. It only
// guards AdminLogin and AdminLoginMfa; every other method passes through.
type LoginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const limiterIdleEviction = 10 * time.Minute

// NewLoginLimiter allows perMinute attempts per IP with a burst of the
// same size.
func NewLoginLimiter(perMinute int) *LoginLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	return &LoginLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
	}
}

func (l *LoginLimiter) allow(ip string) bool {
	if ip == "" {
		ip = "unknown"
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	entry, ok := l.limiters[ip]
	if !ok {
		// Opportunistic eviction keeps the map bounded without a
		// background goroutine.
		for k, e := range l.limiters {
			if now.Sub(e.lastSeen) > limiterIdleEviction {
				delete(l.limiters, k)
			}
		}
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.Allow()
}

// Interceptor returns the unary interceptor enforcing the limit.
func (l *LoginLimiter) Interceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var ip string
		switch r := req.(type) {
		case *authv1.AdminLoginRequest:
			ip = r.IpAddress
		case *authv1.AdminLoginMfaRequest:
			ip = r.IpAddress
		default:
			return handler(ctx, req)
		}
		if !l.allow(ip) {
			obs.CountLoginOutcome("rate_limited")
			return nil, status.Error(codes.ResourceExhausted, "too many login attempts")
		}
		return handler(ctx, req)
	}
}
