package repository

import "carshop/internal/model"

// PeopleRepository serves the fixed people directory
type PeopleRepository interface {
	FindAll() []model.People
	FindPage(page, size int) model.Page
}

type peopleRepo struct {
	peoples []model.People
}

// NewPeopleRepo creates a people repository over the seeded directory
func NewPeopleRepo() PeopleRepository {
	return &peopleRepo{peoples: seedPeoples()}
}

func (r *peopleRepo) FindAll() []model.People {
	return r.peoples
}

func (r *peopleRepo) FindPage(page, size int) model.Page {
	from, to := pageWindow(len(r.peoples), page, size)
	return model.Page{
		Items:      r.peoples[from:to],
		Number:     page,
		Size:       size,
		TotalItems: int64(len(r.peoples)),
	}
}
