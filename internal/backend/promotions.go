package backend

import (
	"context"
	"fmt"
	"net/http"

	"promoadmin/internal/structs"
)

func (c *client) ListPromotions(ctx context.Context, token string) ([]structs.Promotion, error) {
	var promotions []structs.Promotion

	err := c.doJSON(ctx, http.MethodGet, "/promotions", token, nil, &promotions)
	if err != nil {
		return nil, err
	}

	return promotions, nil
}

func (c *client) GetPromotion(ctx context.Context, token string, id int64) (structs.Promotion, error) {
	var promotion structs.Promotion

	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/promotions/%d", id), token, nil, &promotion)
	if err != nil {
		return structs.Promotion{}, err
	}

	return promotion, nil
}

// CreatePromotion submits the multipart payload; the banner part is
// mandatory here, the validator rejects a bannerless create before it
// reaches the network.
func (c *client) CreatePromotion(ctx context.Context, token string, up structs.PromotionUpload) (structs.Promotion, error) {
	var created structs.Promotion

	err := c.doMultipart(ctx, http.MethodPost, "/promotions", token, up, &created)
	if err != nil {
		return structs.Promotion{}, err
	}

	return created, nil
}

// UpdatePromotion resubmits the fields; when no banner part is attached
// the backend keeps the stored image.
func (c *client) UpdatePromotion(ctx context.Context, token string, id int64, up structs.PromotionUpload) (structs.Promotion, error) {
	var updated structs.Promotion

	err := c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/promotions/%d", id), token, up, &updated)
	if err != nil {
		return structs.Promotion{}, err
	}

	return updated, nil
}

func (c *client) DeletePromotion(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/promotions/%d", id), token, nil, nil)
}
