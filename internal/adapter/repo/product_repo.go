package repo

import (
	"context"
	"encoding/json"

	"videoserver/internal/domain"
	"videoserver/internal/infra"
	"videoserver/internal/sqlinline"
)

// ProductRepositoryPG implements domain.ProductRepository.
type ProductRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProductRepository creates a product repository backed by PostgreSQL.
func NewProductRepository(sql infra.SQLExecutor) *ProductRepositoryPG {
	return &ProductRepositoryPG{sql: sql}
}

// ListByOwner returns the owner's products newest first.
func (r *ProductRepositoryPG) ListByOwner(ctx context.Context, ownerID string) ([]domain.Product, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectProductsByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var title, url, platform *string
		var images []byte
		if err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&title,
			&p.Description,
			&p.Price,
			&p.Currency,
			&p.Amount,
			&p.ImageURL,
			&images,
			&url,
			&platform,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if title != nil {
			p.Title = *title
		}
		if url != nil {
			p.URL = *url
		}
		if platform != nil && *platform != "" {
			p.Platform = *platform
		} else {
			p.Platform = domain.DefaultProductPlatform
		}
		// A corrupt gallery document reads as no gallery; the record itself
		// still lists.
		if len(images) > 0 {
			var gallery []string
			if err := json.Unmarshal(images, &gallery); err == nil {
				p.Images = gallery
			}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

var _ domain.ProductRepository = (*ProductRepositoryPG)(nil)
