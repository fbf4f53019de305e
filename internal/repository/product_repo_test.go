package repository

import (
	"strings"
	"testing"

	"carshop/internal/model"
)

func TestProductPageFirst(t *testing.T) {
	repo := NewProductRepo()

	page := repo.FindAll(0, 10)
	items := page.Items.([]model.Product)
	if len(items) != 10 {
		t.Errorf("got %d items, want 10", len(items))
	}
	if page.TotalItems != 23 {
		t.Errorf("total = %d, want 23", page.TotalItems)
	}
	if page.HasPrev() {
		t.Error("first page reports has_prev")
	}
	if !page.HasNext() {
		t.Error("first page reports no has_next")
	}
}

func TestProductPageLast(t *testing.T) {
	repo := NewProductRepo()

	page := repo.FindAll(2, 10)
	items := page.Items.([]model.Product)
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}
	if !page.HasPrev() {
		t.Error("last page reports no has_prev")
	}
	if page.HasNext() {
		t.Error("last page reports has_next")
	}
}

func TestProductPagePastEnd(t *testing.T) {
	repo := NewProductRepo()

	page := repo.FindAll(5, 10)
	if items := page.Items.([]model.Product); len(items) != 0 {
		t.Errorf("got %d items past the end, want 0", len(items))
	}
}

func TestProductSearch(t *testing.T) {
	repo := NewProductRepo()

	found := repo.FindAllByName("porsche")
	if len(found) == 0 {
		t.Fatal("case-insensitive search found nothing")
	}
	for _, p := range found {
		if !strings.Contains(strings.ToLower(p.Name), "porsche") {
			t.Errorf("result %q does not match the search", p.Name)
		}
	}

	if got := repo.FindAllByName("no such car"); len(got) != 0 {
		t.Errorf("search for nonsense returned %d products", len(got))
	}
}

func TestProductFindByID(t *testing.T) {
	repo := NewProductRepo()

	if p, ok := repo.FindByID(1); !ok || p.ID != 1 || p.Name == "" {
		t.Errorf("FindByID(1) = (%+v, %v)", p, ok)
	}
	if _, ok := repo.FindByID(999); ok {
		t.Error("FindByID(999) reported a hit")
	}
}

func TestPeoplePage(t *testing.T) {
	repo := NewPeopleRepo()

	if got := len(repo.FindAll()); got != 9 {
		t.Fatalf("directory has %d people, want 9", got)
	}

	page := repo.FindPage(1, 4)
	items := page.Items.([]model.People)
	if len(items) != 4 {
		t.Errorf("got %d items, want 4", len(items))
	}
	if !page.HasPrev() || !page.HasNext() {
		t.Errorf("has_prev=%v has_next=%v, want true/true", page.HasPrev(), page.HasNext())
	}

	last := repo.FindPage(2, 4)
	if items := last.Items.([]model.People); len(items) != 1 {
		t.Errorf("last page has %d items, want 1", len(items))
	}
	if last.HasNext() {
		t.Error("last page reports has_next")
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		length, page, size int
		from, to           int
	}{
		{23, 0, 10, 0, 10},
		{23, 1, 10, 10, 20},
		{23, 2, 10, 20, 23},
		{23, 3, 10, 23, 23},
		{23, 10, 10, 23, 23},
		{9, 0, 9, 0, 9},
	}
	for _, tt := range tests {
		from, to := pageWindow(tt.length, tt.page, tt.size)
		if from != tt.from || to != tt.to {
			t.Errorf("pageWindow(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.length, tt.page, tt.size, from, to, tt.from, tt.to)
		}
	}
}
