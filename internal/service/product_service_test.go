package service

import (
	"context"
	"testing"

	"github.com/boost-marketplace/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreate(t *testing.T) {
	store := newFakeProductStore()
	svc := NewProductService(store, nil)

	owner := uint(3)
	product, err := svc.Create(context.Background(), &CreateProductRequest{
		Name:     "Keyboard",
		Price:    49.99,
		Category: "Electronics",
		Status:   "Available",
		Date:     "2024-01-02",
		UserID:   &owner,
	})
	require.NoError(t, err)

	assert.NotZero(t, product.ID)
	assert.Equal(t, "2024-01-02", product.Date.Format("2006-01-02"))
	require.NotNil(t, product.UserID)
	assert.Equal(t, owner, *product.UserID)
}

func TestProductCreateBadDate(t *testing.T) {
	svc := NewProductService(newFakeProductStore(), nil)

	_, err := svc.Create(context.Background(), &CreateProductRequest{Name: "Keyboard", Date: "02-01-2024"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestProductUpdateIsFullOverwrite(t *testing.T) {
	store := newFakeProductStore()
	svc := NewProductService(store, nil)

	created, err := svc.Create(context.Background(), &CreateProductRequest{
		Name:        "Keyboard",
		Description: "Mechanical",
		Price:       49.99,
		Image:       "kb.png",
		Category:    "Electronics",
		Status:      "Available",
	})
	require.NoError(t, err)

	// A patch with empty fields replaces everything, unlike user updates
	updated, err := svc.Update(context.Background(), created.ID, &UpdateProductRequest{
		Name:  "Keyboard v2",
		Price: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, "Keyboard v2", updated.Name)
	assert.Empty(t, updated.Description)
	assert.Zero(t, updated.Price)
	assert.Empty(t, updated.Image)
	assert.Empty(t, updated.Category)
	assert.Empty(t, updated.Status)
}

func TestProductUpdateNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductStore(), nil)

	_, err := svc.Update(context.Background(), 42, &UpdateProductRequest{Name: "Nope"})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductGetByUserID(t *testing.T) {
	store := newFakeProductStore()
	svc := NewProductService(store, nil)

	owner := uint(7)
	other := uint(8)
	_, err := svc.Create(context.Background(), &CreateProductRequest{Name: "A", UserID: &owner})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &CreateProductRequest{Name: "B", UserID: &owner})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &CreateProductRequest{Name: "C", UserID: &other})
	require.NoError(t, err)

	products, err := svc.GetByUserID(owner)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductDelete(t *testing.T) {
	store := newFakeProductStore()
	svc := NewProductService(store, nil)

	created, err := svc.Create(context.Background(), &CreateProductRequest{Name: "Keyboard"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), repository.ErrProductNotFound)
}
