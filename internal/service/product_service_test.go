package service

import (
	"context"
	"testing"

	"car_market/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepo is an in-memory ProductRepository with query-level
// ownership scoping, mirroring the SQL conjunction of id and created_by.
type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *model.Product) error {
	product.ID = uuid.New()
	stored := *product
	f.products[product.ID] = &stored
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]model.Product, error) {
	var all []model.Product
	for _, product := range f.products {
		all = append(all, *product)
	}
	return all, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *model.Product) (bool, error) {
	existing, ok := f.products[product.ID]
	if !ok || existing.CreatedBy != product.CreatedBy {
		return false, nil
	}
	stored := *product
	f.products[product.ID] = &stored
	return true, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id, userID uuid.UUID) (*model.Product, error) {
	existing, ok := f.products[id]
	if !ok || existing.CreatedBy != userID {
		return nil, nil
	}
	delete(f.products, id)
	copied := *existing
	return &copied, nil
}

func TestProductService_CreateProduct_SetsOwner(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	ownerID := uuid.New()

	product, err := svc.CreateProduct(context.Background(), ownerID, model.CreateProductRequest{
		Name:        "Widget",
		Description: "A widget",
		Price:       9.99,
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID, product.CreatedBy)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestProductService_UpdateProduct_ByNonOwnerFails(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	ownerID := uuid.New()
	otherID := uuid.New()

	created, err := svc.CreateProduct(context.Background(), ownerID, model.CreateProductRequest{
		Name:        "Widget",
		Description: "A widget",
		Price:       9.99,
	})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(context.Background(), created.ID, otherID, model.UpdateProductRequest{
		Name:        "Hijacked",
		Description: "Should not happen",
		Price:       0.01,
	})
	assert.ErrorIs(t, err, ErrProductNotFound)

	// The record is unchanged.
	unchanged, err := svc.GetProductByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", unchanged.Name)
	assert.Equal(t, 9.99, unchanged.Price)
}

func TestProductService_UpdateProduct_ByOwnerSucceeds(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	ownerID := uuid.New()

	created, err := svc.CreateProduct(context.Background(), ownerID, model.CreateProductRequest{
		Name:        "Widget",
		Description: "A widget",
		Price:       9.99,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(context.Background(), created.ID, ownerID, model.UpdateProductRequest{
		Name:        "Widget v2",
		Description: "A better widget",
		Price:       19.99,
	})

	require.NoError(t, err)
	assert.Equal(t, "Widget v2", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
}

func TestProductService_DeleteProduct_ByNonOwnerFails(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	ownerID := uuid.New()
	otherID := uuid.New()

	created, err := svc.CreateProduct(context.Background(), ownerID, model.CreateProductRequest{
		Name:        "Widget",
		Description: "A widget",
		Price:       9.99,
	})
	require.NoError(t, err)

	_, err = svc.DeleteProduct(context.Background(), created.ID, otherID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// Still listed after the failed delete.
	products, err := svc.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_DeleteProduct_ReturnsDeletedRecord(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	ownerID := uuid.New()

	created, err := svc.CreateProduct(context.Background(), ownerID, model.CreateProductRequest{
		Name:        "Widget",
		Description: "A widget",
		Price:       9.99,
	})
	require.NoError(t, err)

	deleted, err := svc.DeleteProduct(context.Background(), created.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.GetProductByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_GetProductByID_MissingAndUnauthorizedConflated(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	_, err := svc.GetProductByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}
