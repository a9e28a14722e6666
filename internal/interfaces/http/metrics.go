package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contadores e histogramas Prometheus das requisições HTTP.
type Metrics struct {
	requisicoes *prometheus.CounterVec
	duracao     *prometheus.HistogramVec
}

// NewMetrics registra os coletores no registry informado.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requisicoes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requisicoes_total",
			Help: "Total de requisições HTTP por rota, método e status.",
		}, []string{"rota", "metodo", "status"}),
		duracao: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_requisicao_duracao_segundos",
			Help:    "Duração das requisições HTTP em segundos.",
			Buckets: prometheus.DefBuckets,
		}, []string{"rota", "metodo"}),
	}
}

// Middleware observa cada requisição. A rota usada como label é o padrão
// registrado no Fiber (com :params), não o caminho cru, para limitar a
// cardinalidade.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()
		rota := c.Route().Path
		metodo := c.Method()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		m.requisicoes.WithLabelValues(rota, metodo, strconv.Itoa(status)).Inc()
		m.duracao.WithLabelValues(rota, metodo).Observe(time.Since(inicio).Seconds())
		return err
	}
}
