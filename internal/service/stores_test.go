package service

import (
	"github.com/boost-marketplace/internal/models"
	"github.com/boost-marketplace/internal/repository"
)

// In-memory stores backing the service tests.

type fakeUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*models.User), nextID: 1}
}

func (f *fakeUserStore) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) ExistsByID(id uint) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserStore) ExistsByEmail(email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Update(user *models.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) Delete(id uint) error {
	delete(f.users, id)
	return nil
}

type fakeProductStore struct {
	products map[uint]*models.Product
	nextID   uint
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[uint]*models.Product), nextID: 1}
}

func (f *fakeProductStore) Create(product *models.Product) error {
	product.ID = f.nextID
	f.nextID++
	cp := *product
	f.products[product.ID] = &cp
	return nil
}

func (f *fakeProductStore) GetByID(id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductStore) GetAll() ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductStore) GetByUserID(userID uint) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.UserID != nil && *p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) ExistsByID(id uint) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

func (f *fakeProductStore) Update(product *models.Product) error {
	cp := *product
	f.products[product.ID] = &cp
	return nil
}

func (f *fakeProductStore) Delete(id uint) error {
	delete(f.products, id)
	return nil
}

type fakeApplicationStore struct {
	apps   map[uint]*models.SellerApplication
	nextID uint

	// users receives the user write from SaveWithUser so tests can
	// observe the single-unit approval
	users *fakeUserStore
}

func newFakeApplicationStore(users *fakeUserStore) *fakeApplicationStore {
	return &fakeApplicationStore{
		apps:   make(map[uint]*models.SellerApplication),
		nextID: 1,
		users:  users,
	}
}

func (f *fakeApplicationStore) Create(app *models.SellerApplication) error {
	app.ID = f.nextID
	f.nextID++
	cp := *app
	f.apps[app.ID] = &cp
	return nil
}

func (f *fakeApplicationStore) GetByID(id uint) (*models.SellerApplication, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, repository.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeApplicationStore) GetAll() ([]models.SellerApplication, error) {
	out := make([]models.SellerApplication, 0, len(f.apps))
	for _, a := range f.apps {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeApplicationStore) ExistsByID(id uint) (bool, error) {
	_, ok := f.apps[id]
	return ok, nil
}

func (f *fakeApplicationStore) Update(app *models.SellerApplication) error {
	cp := *app
	f.apps[app.ID] = &cp
	return nil
}

func (f *fakeApplicationStore) SaveWithUser(app *models.SellerApplication, user *models.User) error {
	if user != nil {
		if err := f.users.Update(user); err != nil {
			return err
		}
	}
	return f.Update(app)
}

func (f *fakeApplicationStore) Delete(id uint) error {
	delete(f.apps, id)
	return nil
}

type fakeRecommendationStore struct {
	recs   map[uint]*models.Recommendation
	nextID uint
}

func newFakeRecommendationStore() *fakeRecommendationStore {
	return &fakeRecommendationStore{recs: make(map[uint]*models.Recommendation), nextID: 1}
}

func (f *fakeRecommendationStore) Create(rec *models.Recommendation) error {
	rec.ID = f.nextID
	f.nextID++
	cp := *rec
	f.recs[rec.ID] = &cp
	return nil
}

func (f *fakeRecommendationStore) GetByID(id uint) (*models.Recommendation, error) {
	r, ok := f.recs[id]
	if !ok {
		return nil, repository.ErrRecommendationNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRecommendationStore) GetAll() ([]models.Recommendation, error) {
	out := make([]models.Recommendation, 0, len(f.recs))
	for _, r := range f.recs {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRecommendationStore) GetByUserID(userID uint) ([]models.Recommendation, error) {
	var out []models.Recommendation
	for _, r := range f.recs {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRecommendationStore) GetByProductID(productID uint) ([]models.Recommendation, error) {
	var out []models.Recommendation
	for _, r := range f.recs {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRecommendationStore) ExistsByID(id uint) (bool, error) {
	_, ok := f.recs[id]
	return ok, nil
}

func (f *fakeRecommendationStore) Delete(id uint) error {
	delete(f.recs, id)
	return nil
}
