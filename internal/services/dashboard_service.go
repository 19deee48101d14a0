package services

import (
	"time"

	"vitrine/internal/repos"
)

type DashboardService struct {
	Products *repos.ProductRepo
}

func NewDashboardService(products *repos.ProductRepo) *DashboardService {
	return &DashboardService{Products: products}
}

// DashboardStats summarizes the shop for the owner's landing page.
// TotalClicks is the all-time counter; clicks carry no timestamps.
type DashboardStats struct {
	Total         int
	Active        int
	TotalClicks   int
	WithoutPrice  int
	WithoutImage  int
	StaleProducts int // not touched in 7+ days
}

const sqliteTimeLayout = "2006-01-02 15:04:05"

func (s *DashboardService) Stats(shopID string) (DashboardStats, error) {
	products, err := s.Products.ListByShop(shopID)
	if err != nil {
		return DashboardStats{}, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -7)
	var st DashboardStats
	st.Total = len(products)
	for _, p := range products {
		if p.Active {
			st.Active++
		}
		st.TotalClicks += p.Clicks
		if !p.PriceCash.Valid {
			st.WithoutPrice++
		}
		if !p.ImageURL.Valid {
			st.WithoutImage++
		}
		// updated_at is empty until the first edit; fall back to created_at.
		last := p.UpdatedAt
		if last == "" {
			last = p.CreatedAt
		}
		if ts, err := time.Parse(sqliteTimeLayout, last); err == nil && ts.Before(cutoff) {
			st.StaleProducts++
		}
	}
	return st, nil
}
