package apistub

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/interiorpro/adminconsole/internal/domain"
)

func (s *Server) listProducts(c echo.Context) error {
	s.mu.RLock()
	rows := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		rows = append(rows, p)
	}
	s.mu.RUnlock()

	// Stable order for clients that don't sort; newest first.
	sort.Slice(rows, func(i, j int) bool {
		return rows[j].CreatedAt.Time.Before(rows[i].CreatedAt.Time)
	})
	return ok(c, echo.Map{"data": rows})
}

func (s *Server) createProduct(c echo.Context) error {
	var payload domain.Fields
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse product")
	}
	if msg := validateFields(&payload); msg != "" {
		return fail(c, http.StatusBadRequest, msg)
	}

	p := domain.Product{
		ID:          domain.ID(s.node.Generate().String()),
		Name:        payload.Name,
		Price:       payload.Price,
		Brand:       payload.Brand,
		Category:    payload.Category,
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
		VideoURL:    payload.VideoURL,
		CreatedAt:   domain.NewTimestamp(time.Now()),
	}
	s.mu.Lock()
	s.products[p.ID] = p
	s.mu.Unlock()
	return ok(c, p)
}

func (s *Server) updateProduct(c echo.Context) error {
	id := domain.ID(c.Param("id"))

	var payload domain.Fields
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse product")
	}
	if msg := validateFields(&payload); msg != "" {
		return fail(c, http.StatusBadRequest, msg)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, found := s.products[id]
	if !found {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	p.Name = payload.Name
	p.Price = payload.Price
	p.Brand = payload.Brand
	p.Category = payload.Category
	p.Description = payload.Description
	p.ImageURL = payload.ImageURL
	p.VideoURL = payload.VideoURL
	s.products[id] = p
	return ok(c, p)
}

func (s *Server) deleteProduct(c echo.Context) error {
	id := domain.ID(c.Param("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.products[id]; !found {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	delete(s.products, id)
	return ok(c, echo.Map{"id": id})
}

// validateFields applies the same required-field rules the console
// enforces, so server-side validation failures are observable.
func validateFields(f *domain.Fields) string {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return "Name is required"
	}
	if f.Price < 0 {
		return "Price must be >= 0"
	}
	if strings.TrimSpace(f.Brand) == "" {
		return "Brand is required"
	}
	if strings.TrimSpace(f.Category) == "" {
		return "Category is required"
	}
	return ""
}
