package middleware

import (
	"net/http"
	"sync"
	"time"

	"estoque/internal/apierror"

	"github.com/gin-gonic/gin"
)

const (
	maxTentativasLogin = 20
	janelaLogin        = time.Minute
	varreduraLogin     = time.Minute
)

// ipEntry tracks login attempts for one IP within the current window.
type ipEntry struct {
	count     int
	windowEnd time.Time
}

var (
	ipMap           = make(map[string]*ipEntry)
	ipMapMu         sync.Mutex
	ultimaVarredura time.Time
)

// LoginRateLimiter limits login attempts to 20 per minute per IP. Entries
// whose window has passed are swept on the next request so the map does not
// grow with every client the process has ever seen.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		ipMapMu.Lock()
		if now.Sub(ultimaVarredura) >= varreduraLogin {
			for addr, e := range ipMap {
				if now.After(e.windowEnd) {
					delete(ipMap, addr)
				}
			}
			ultimaVarredura = now
		}

		entry, ok := ipMap[ip]
		if !ok || now.After(entry.windowEnd) {
			entry = &ipEntry{windowEnd: now.Add(janelaLogin)}
			ipMap[ip] = entry
		}
		entry.count++
		excedeu := entry.count > maxTentativasLogin
		ipMapMu.Unlock()

		if excedeu {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Muitas tentativas de login. Tente novamente em 1 minuto."))
			return
		}
		c.Next()
	}
}
