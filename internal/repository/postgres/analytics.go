package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aswincandra/olist-analytics/internal/domain"
)

// AnalyticsRepo runs the fixed read-only queries over the Olist schema
// (category_translation, products, items, orders, sellers, reviews).
type AnalyticsRepo struct {
	db *DB
}

func NewAnalyticsRepo(db *DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

func (r *AnalyticsRepo) CategoryTranslations(ctx context.Context) ([]domain.CategoryTranslation, error) {
	query := `
		SELECT product_category_name, product_category_name_english
		FROM category_translation
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category translations: %w", err)
	}
	defer rows.Close()

	var translations []domain.CategoryTranslation
	for rows.Next() {
		var t domain.CategoryTranslation
		if err := rows.Scan(&t.Native, &t.English); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		translations = append(translations, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return translations, nil
}

func (r *AnalyticsRepo) AveragePriceByCategory(ctx context.Context, nativeCategory string) (*float64, error) {
	query := `
		SELECT AVG(i.price) AS avg_price
		FROM items i
		JOIN products p ON i.product_id = p.product_id
		WHERE p.product_category_name = $1
		  AND i.price IS NOT NULL
	`

	// AVG over zero rows yields NULL, not an error
	var avg *float64
	err := r.db.Pool.QueryRow(ctx, query, nativeCategory).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("average price by category: %w", err)
	}

	return avg, nil
}

func (r *AnalyticsRepo) ListCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT product_category_name
		FROM products
		WHERE product_category_name IS NOT NULL
		ORDER BY product_category_name
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return categories, nil
}

func (r *AnalyticsRepo) SellerPerformance(ctx context.Context, city string) (*domain.SellerPerformance, error) {
	query := `
		SELECT s.seller_city,
		       COUNT(o.order_id) AS total_orders,
		       AVG(r.review_score) AS avg_review
		FROM sellers s
		JOIN items i ON s.seller_id = i.seller_id
		JOIN orders o ON i.order_id = o.order_id
		LEFT JOIN reviews r ON o.order_id = r.order_id
		WHERE LOWER(s.seller_city) = LOWER($1)
		GROUP BY s.seller_city
	`

	var perf domain.SellerPerformance
	err := r.db.Pool.QueryRow(ctx, query, city).Scan(
		&perf.City,
		&perf.TotalOrders,
		&perf.AvgReview,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("seller performance: %w", err)
	}

	return &perf, nil
}

func (r *AnalyticsRepo) MostPositiveReviewedProduct(ctx context.Context) (*domain.ProductRating, error) {
	query := `
		SELECT p.product_id,
		       COUNT(r.review_score) AS review_count,
		       AVG(r.review_score) AS avg_score
		FROM products p
		JOIN items i ON p.product_id = i.product_id
		JOIN reviews r ON i.order_id = r.order_id
		WHERE r.review_score >= 4
		GROUP BY p.product_id
		ORDER BY review_count DESC
		LIMIT 1
	`

	var rating domain.ProductRating
	err := r.db.Pool.QueryRow(ctx, query).Scan(
		&rating.ProductID,
		&rating.ReviewCount,
		&rating.AvgScore,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("most positive reviewed product: %w", err)
	}

	return &rating, nil
}

func (r *AnalyticsRepo) BestProducts(ctx context.Context, limit int) ([]domain.ProductRating, error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidLimit
	}

	query := `
		SELECT p.product_id,
		       COUNT(r.review_score) AS total_reviews,
		       AVG(r.review_score) AS avg_score
		FROM products p
		JOIN items i ON p.product_id = i.product_id
		JOIN reviews r ON i.order_id = r.order_id
		GROUP BY p.product_id
		HAVING AVG(r.review_score) >= 4
		ORDER BY avg_score DESC, total_reviews DESC
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("best products: %w", err)
	}
	defer rows.Close()

	var ratings []domain.ProductRating
	for rows.Next() {
		var rt domain.ProductRating
		if err := rows.Scan(&rt.ProductID, &rt.ReviewCount, &rt.AvgScore); err != nil {
			return nil, fmt.Errorf("scan product rating: %w", err)
		}
		ratings = append(ratings, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return ratings, nil
}
