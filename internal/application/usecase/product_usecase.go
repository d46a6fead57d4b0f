// Package usecase contiene los casos de uso CRUD del catálogo: productos,
// cuentas de liquidación, clientes y proveedores.
package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jquispe/puntoventa-api/internal/application/dto"
	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
	"github.com/jquispe/puntoventa-api/pkg/search"
)

// catálogo de mostrador: tope de filas que se traen para filtrar en memoria.
const searchScanLimit = 1000

// ProductUseCase casos de uso CRUD y búsqueda de productos. El stock se toca
// solo vía movimientos (ventas, compras, ajustes); aquí se fija únicamente el
// inventario inicial.
type ProductUseCase struct {
	repo    repository.ProductRepository
	movRepo repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movRepo repository.StockMovementRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, movRepo: movRepo}
}

// Create crea un producto. Si trae stock inicial, se asienta en el kardex
// como INVENTARIO INICIAL.
func (uc *ProductUseCase) Create(userName string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Category:  in.Category,
		Brand:     in.Brand,
		Location:  in.Location,
		Price:     in.Price,
		Cost:      in.Cost,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	if in.Stock > 0 {
		if err := uc.movRepo.Create(&entity.StockMovement{
			ID:             uuid.New().String(),
			Date:           now,
			ProductID:      product.ID,
			ProductName:    product.Name,
			Direction:      entity.DirEntrada,
			Quantity:       in.Stock,
			ResultingStock: in.Stock,
			Reference:      "INVENTARIO INICIAL",
			UserName:       userName,
		}); err != nil {
			return nil, err
		}
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza los datos de catálogo del producto. Stock no se toca aquí.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Code = in.Code
	product.Name = in.Name
	product.Category = in.Category
	product.Brand = in.Brand
	product.Location = in.Location
	product.Price = in.Price
	product.Cost = in.Cost
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos paginados.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Search filtra el catálogo por código, nombre, categoría o marca, sin
// distinguir mayúsculas ni tildes.
func (uc *ProductUseCase) Search(query string) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List(searchScanLimit, 0)
	if err != nil {
		return nil, err
	}
	var matched []*entity.Product
	for _, p := range products {
		if search.Matches(query, p.Code, p.Name, p.Category, p.Brand) {
			matched = append(matched, p)
		}
	}
	return toProductResponses(matched), nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:       p.ID,
		Code:     p.Code,
		Name:     p.Name,
		Category: p.Category,
		Brand:    p.Brand,
		Location: p.Location,
		Price:    p.Price,
		Cost:     p.Cost,
		Stock:    p.Stock,
	}
}

func toProductResponses(products []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
