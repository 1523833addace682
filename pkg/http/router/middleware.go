package router

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/primplanner/pkg/http/router/controllers"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// EnforceJSONHandler rejects requests with a body that is not application/json.
func EnforceJSONHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 {
			contentType := r.Header.Get("Content-Type")
			if !strings.HasPrefix(contentType, "application/json") {
				http.Error(w, "Content-Type header must be application/json", http.StatusUnsupportedMediaType)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (api *API) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				controllers.WriteServerError(w, r, api.log, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RealIP sets RemoteAddr from X-Real-IP or the first X-Forwarded-For entry, but only for
// requests whose TCP peer is one of trustedProxies (IPs or CIDRs). Other peers keep their address.
func RealIP(trustedProxies []string) (alice.Constructor, error) {
	trusted := make([]*net.IPNet, 0, len(trustedProxies))
	for _, proxy := range trustedProxies {
		proxy = strings.TrimSpace(proxy)
		if proxy == "" {
			continue
		}
		if !strings.Contains(proxy, "/") {
			if ip := net.ParseIP(proxy); ip != nil && ip.To4() != nil {
				proxy += "/32"
			} else {
				proxy += "/128"
			}
		}
		_, ipNet, err := net.ParseCIDR(proxy)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", proxy, err)
		}
		trusted = append(trusted, ipNet)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isTrustedPeer(trusted, r.RemoteAddr) {
				if ip := realIP(r); ip != "" {
					r.RemoteAddr = ip
				}
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}

func isTrustedPeer(trusted []*net.IPNet, remoteAddr string) bool {
	if len(trusted) == 0 {
		return false
	}
	ip := net.ParseIP(peerHost(remoteAddr))
	if ip == nil {
		return false
	}
	for _, ipNet := range trusted {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}

func peerHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

func realIP(r *http.Request) string {
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return strings.TrimSpace(xrip)
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	return ""
}

// Heartbeat answers GET/HEAD /<endpoint> with 200 before any other handler runs.
func Heartbeat(endpoint string) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if (r.Method == http.MethodGet || r.Method == http.MethodHead) &&
				strings.EqualFold(r.URL.Path, "/"+endpoint) {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Hijack keeps websocket upgrades working behind the logger.
func (sr *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := sr.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	sr.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}

// Logger logs every request with its status and latency.
func Logger(log *zap.Logger) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Int("status", rec.status),
				zap.Duration("latency", time.Since(start)))
		})
	}
}

// unmatchedRoute labels every request no route answers, so junk paths share one series.
const unmatchedRoute = "other"

// Labels counts requests per matched route template and status code.
func Labels(router *httprouter.Router, observe func(path, code string)) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			observe(routeTemplate(router, r.Method, r.URL.Path), strconv.Itoa(rec.status))
		})
	}
}

// routeTemplate maps a request path back to the pattern it was registered with, e.g.
// /doc/index.html -> /doc/*any.
func routeTemplate(router *httprouter.Router, method, path string) string {
	handle, params, _ := router.Lookup(method, path)
	if handle == nil {
		return unmatchedRoute
	}

	var b strings.Builder
	rest := path
	for _, p := range params {
		if strings.HasPrefix(p.Value, "/") && strings.HasSuffix(rest, p.Value) {
			// catch-all, always the last parameter
			b.WriteString(strings.TrimSuffix(rest, p.Value))
			b.WriteString("/*" + p.Key)
			return b.String()
		}
		idx := strings.Index(rest, "/"+p.Value)
		if idx < 0 {
			return unmatchedRoute
		}
		b.WriteString(rest[:idx])
		b.WriteString("/:" + p.Key)
		rest = rest[idx+1+len(p.Value):]
	}
	b.WriteString(rest)
	return b.String()
}

// ipLimiter holds one token bucket per client. The least recently seen clients are evicted
// once maxClients buckets exist.
type ipLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	rps      rate.Limit
	burst    int
}

func newIPLimiter(rps float64, burst, maxClients int) (*ipLimiter, error) {
	cache, err := lru.New[string, *rate.Limiter](maxClients)
	if err != nil {
		return nil, fmt.Errorf("rate limiter cache: %w", err)
	}
	return &ipLimiter{
		limiters: cache,
		rps:      rate.Limit(rps),
		burst:    burst,
	}, nil
}

func (il *ipLimiter) get(ip string) *rate.Limiter {
	il.mu.Lock()
	defer il.mu.Unlock()
	l, ok := il.limiters.Get(ip)
	if !ok {
		l = rate.NewLimiter(il.rps, il.burst)
		il.limiters.Add(ip, l)
	}
	return l
}

// Limit is a per client token bucket keyed on RemoteAddr. Run it after RealIP so only trusted
// proxies can name the client.
func Limit(rps float64, burst, maxClients int) (alice.Constructor, error) {
	il, err := newIPLimiter(rps, burst, maxClients)
	if err != nil {
		return nil, err
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !il.get(peerHost(r.RemoteAddr)).Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}
