// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/bankmodel/internal/accountdelivery"
	"github.com/go-petr/bankmodel/internal/accountservice"
	"github.com/go-petr/bankmodel/internal/bankdelivery"
	"github.com/go-petr/bankmodel/internal/bankrepo"
	"github.com/go-petr/bankmodel/internal/bankservice"
	"github.com/go-petr/bankmodel/internal/middleware"
	"github.com/go-petr/bankmodel/internal/transferdelivery"
	"github.com/go-petr/bankmodel/internal/transferservice"
	"github.com/go-petr/bankmodel/pkg/configpkg"
	"github.com/go-petr/bankmodel/pkg/web"
)

// Server holds the handlers router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
// All services share one in-memory registry.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	repo := bankrepo.NewRepoMem()

	accountService := accountservice.New(repo)
	bankService := bankservice.New(repo)
	transferService := transferservice.New(repo)

	accountHandler := accountdelivery.NewHandler(accountService)
	bankHandler := bankdelivery.NewHandler(bankService)
	transferHandler := transferdelivery.NewHandler(transferService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts", accountHandler.List)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.PATCH("/accounts/:id", accountHandler.Update)
	engine.POST("/accounts/:id/debit", accountHandler.Debit)
	engine.POST("/accounts/:id/credit", accountHandler.Credit)

	engine.POST("/banks", bankHandler.Create)
	engine.GET("/banks", bankHandler.List)
	engine.GET("/banks/:name", bankHandler.Get)
	engine.POST("/banks/:name/accounts", bankHandler.AddAccount)
	engine.GET("/banks/:name/accounts", bankHandler.Accounts)
	engine.POST("/banks/:name/transfers", transferHandler.Create)

	if err := web.RegisterValidations(); err != nil {
		return nil, errors.New("cannot register decimal validator")
	}

	server := &Server{
		Engine: engine,
		Config: config,
	}

	return server, nil
}
