// Package apistub is a reference implementation of the product service
// the console consumes: the /api/products CRUD plus /api/upload. It
// exists for local development and integration tests; state is held in
// memory and uploads land in a local directory.
package apistub

import (
	"context"
	"net/http"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/interiorpro/adminconsole/internal/domain"
)

type Server struct {
	e         *echo.Echo
	node      *snowflake.Node
	uploadDir string

	mu       sync.RWMutex
	products map[domain.ID]domain.Product
}

// NewServer builds the stub. uploadDir receives uploaded assets and is
// served back under /uploads/.
func NewServer(uploadDir string) (*Server, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, errors.Wrap(err, "snowflake node")
	}
	s := &Server{
		e:         echo.New(),
		node:      node,
		uploadDir: uploadDir,
		products:  make(map[domain.ID]domain.Product),
	}
	s.e.HideBanner = true
	s.e.HidePort = true

	s.e.GET("/api/products", s.listProducts)
	s.e.POST("/api/products", s.createProduct)
	s.e.PUT("/api/products/:id", s.updateProduct)
	s.e.DELETE("/api/products/:id", s.deleteProduct)
	s.e.POST("/api/upload", s.upload)
	s.e.Static("/uploads", uploadDir)
	// Static only answers GET; the console probes assets with HEAD.
	s.e.HEAD("/uploads/*", s.probeUpload)
	return s, nil
}

// Handler exposes the stub for httptest servers.
func (s *Server) Handler() http.Handler { return s.e }

func (s *Server) Start(addr string) error { return s.e.Start(addr) }

func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }

// Seed inserts a product directly, for tests.
func (s *Server) Seed(p domain.Product) {
	s.mu.Lock()
	s.products[p.ID] = p
	s.mu.Unlock()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"message": message})
}
