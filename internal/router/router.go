package router

import (
	"time"

	"estoque/internal/config"
	"estoque/internal/handler"
	"estoque/internal/middleware"
	"estoque/internal/repository"
	"estoque/internal/service"
	"estoque/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Sessions ─────────────────────────────────────────────────────────────
	sessions := session.NewManager(
		rdb,
		cfg.SessionCookie,
		time.Duration(cfg.SessionTTLHours)*time.Hour,
		cfg.Env == "production",
	)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	vendaRepo := repository.NewVendaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg.BcryptCost)
	produtoSvc := service.NewProdutoService(produtoRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	vendaSvc := service.NewVendaService(vendaRepo, produtoRepo, clienteRepo)
	relatorioSvc := service.NewRelatorioService(produtoRepo, vendaRepo)
	gerenciamentoSvc := service.NewGerenciamentoService(produtoRepo, clienteRepo, vendaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, sessions)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)
	gerenciamentoH := handler.NewGerenciamentoHandler(gerenciamentoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/register", authH.Registrar)
	r.GET("/logout", authH.Logout)

	// Every business route requires an authenticated session; unauthenticated
	// access is redirected to /login.
	gate := middleware.RequireSession(sessions)

	// Inventory
	r.GET("/", gate, produtosH.Listar)
	produtos := r.Group("/products", gate)
	{
		produtos.GET("/new", produtosH.FormNovo)
		produtos.POST("/new", produtosH.Criar)
		produtos.GET("/:id/edit", produtosH.FormEditar)
		produtos.POST("/:id/edit", produtosH.Atualizar)
		produtos.GET("/:id/delete", produtosH.Remover)
	}

	// Customers
	clientes := r.Group("/customers", gate)
	{
		clientes.GET("", clientesH.Listar)
		clientes.GET("/new", clientesH.FormNovo)
		clientes.POST("/new", clientesH.Criar)
		clientes.GET("/:id/edit", clientesH.FormEditar)
		clientes.POST("/:id/edit", clientesH.Atualizar)
		clientes.GET("/:id/delete", clientesH.Remover)
	}

	// Sales
	vendas := r.Group("/sales", gate)
	{
		vendas.GET("", vendasH.Listar)
		vendas.GET("/new", vendasH.FormNova)
		vendas.POST("/new", vendasH.Registrar)
	}

	// Reports
	r.GET("/reports", gate, relatoriosH.Obter)

	// Bulk data (CSV + maintenance)
	bulk := r.Group("/bulk", gate)
	{
		bulk.GET("", gerenciamentoH.Pagina)
		bulk.GET("/template.csv", gerenciamentoH.BaixarModelo)
		bulk.POST("/import", gerenciamentoH.Importar)
		bulk.GET("/export/:tipo", gerenciamentoH.Exportar)
		bulk.GET("/clear-sales", gerenciamentoH.LimparVendas)
	}

	return r
}
