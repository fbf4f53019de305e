package handler

import (
	"net/http"
	"strconv"

	"carshop/internal/repository"

	"github.com/gorilla/mux"
)

const productPageSize = 10

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	products repository.ProductRepository
}

// NewProductHandler creates a new product handler
func NewProductHandler(products repository.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// Find handles GET /api/product?search=|id=
func (h *ProductHandler) Find(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Has("search") {
		writeData(w, http.StatusOK, h.products.FindAllByName(query.Get("search")))
		return
	}

	if query.Has("id") {
		id, err := strconv.ParseInt(query.Get("id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Missing request param")
			return
		}
		product, ok := h.products.FindByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		writeData(w, http.StatusOK, product)
		return
	}

	writeError(w, http.StatusBadRequest, "Missing request param")
}

// GetPage handles GET /api/product/{page}
func (h *ProductHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(mux.Vars(r)["page"])
	if err != nil || page < 0 {
		writeError(w, http.StatusBadRequest, "Missing request param")
		return
	}

	writePage(w, h.products.FindAll(page, productPageSize))
}
