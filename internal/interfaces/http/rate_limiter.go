package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pocket-estoque/api/internal/application/dto"
	"golang.org/x/time/rate"
)

// LoginRateLimiter limita tentativas de login por IP de origem.
type LoginRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitante
	limite   rate.Limit
	burst    int
}

type visitante struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginRateLimiter cria o limitador. limite é em requisições por segundo.
func NewLoginRateLimiter(limite rate.Limit, burst int) *LoginRateLimiter {
	return &LoginRateLimiter{
		visitors: make(map[string]*visitante),
		limite:   limite,
		burst:    burst,
	}
}

// Middleware responde 429 quando o IP estoura o limite.
func (l *LoginRateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.permitir(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErroResponse{Erro: "muitas tentativas, aguarde um instante"})
		}
		return c.Next()
	}
}

func (l *LoginRateLimiter) permitir(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitante{limiter: rate.NewLimiter(l.limite, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

// LimparInativos descarta IPs sem atividade há mais de idade. Chamar
// periodicamente para o mapa não crescer sem limite.
func (l *LoginRateLimiter) LimparInativos(idade time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, v := range l.visitors {
		if time.Since(v.lastSeen) > idade {
			delete(l.visitors, ip)
		}
	}
}
