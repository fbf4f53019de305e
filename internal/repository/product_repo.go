package repository

import (
	"strings"

	"carshop/internal/model"
)

// ProductRepository serves the fixed product catalog
type ProductRepository interface {
	FindAllByName(name string) []model.Product
	FindByID(id int64) (model.Product, bool)
	FindAll(page, size int) model.Page
}

type productRepo struct {
	products []model.Product
}

// NewProductRepo creates a product repository over the seeded catalog
func NewProductRepo() ProductRepository {
	return &productRepo{products: seedProducts()}
}

func (r *productRepo) FindAllByName(name string) []model.Product {
	out := []model.Product{}
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			out = append(out, p)
		}
	}
	return out
}

func (r *productRepo) FindByID(id int64) (model.Product, bool) {
	for _, p := range r.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (r *productRepo) FindAll(page, size int) model.Page {
	from, to := pageWindow(len(r.products), page, size)
	return model.Page{
		Items:      r.products[from:to],
		Number:     page,
		Size:       size,
		TotalItems: int64(len(r.products)),
	}
}

// pageWindow clamps a page request to the bounds of a list of the given length.
// A page past the end yields an empty window.
func pageWindow(length, page, size int) (int, int) {
	from := page * size
	if from > length {
		from = length
	}
	to := from + size
	if to > length {
		to = length
	}
	return from, to
}
