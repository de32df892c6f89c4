package service

import (
	"go-secadmin-ws/internal/model"
	"go-secadmin-ws/internal/repository"
)

type DashboardService interface {
	GetStats() (*DashboardStats, error)
}

// DashboardStats backs the overview page: headline counts plus the
// breakdowns its two status charts need.
type DashboardStats struct {
	Dispensaries    int64          `json:"dispensaries"`
	Engineers       int64          `json:"engineers"`
	ServiceRequests int64          `json:"service_requests"`
	Invoices        int64          `json:"invoices"`
	RequestsByState map[string]int `json:"requests_by_status"`
	InvoicesByState map[string]int `json:"invoices_by_status"`
	OverdueCents    int64          `json:"overdue_cents"`
}

type dashboardService struct {
	dispensaryRepo repository.CollectionRepository[model.Dispensary]
	engineerRepo   repository.CollectionRepository[model.SupportEngineer]
	requestRepo    repository.CollectionRepository[model.ServiceRequest]
	invoiceRepo    repository.CollectionRepository[model.Invoice]
}

func NewDashboardService(
	dispensaryRepo repository.CollectionRepository[model.Dispensary],
	engineerRepo repository.CollectionRepository[model.SupportEngineer],
	requestRepo repository.CollectionRepository[model.ServiceRequest],
	invoiceRepo repository.CollectionRepository[model.Invoice],
) DashboardService {
	return &dashboardService{
		dispensaryRepo: dispensaryRepo,
		engineerRepo:   engineerRepo,
		requestRepo:    requestRepo,
		invoiceRepo:    invoiceRepo,
	}
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		RequestsByState: map[string]int{},
		InvoicesByState: map[string]int{},
	}

	var err error
	if stats.Dispensaries, err = s.dispensaryRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Engineers, err = s.engineerRepo.Count(); err != nil {
		return nil, err
	}

	// Collections are small enough to aggregate in memory, the same way the
	// dashboard always has.
	requests, err := s.requestRepo.FindAll()
	if err != nil {
		return nil, err
	}
	stats.ServiceRequests = int64(len(requests))
	for _, r := range requests {
		stats.RequestsByState[r.Status]++
	}

	invoices, err := s.invoiceRepo.FindAll()
	if err != nil {
		return nil, err
	}
	stats.Invoices = int64(len(invoices))
	for _, inv := range invoices {
		stats.InvoicesByState[inv.Status]++
		if inv.Status == model.InvoiceOverdue {
			stats.OverdueCents += inv.AmountCents
		}
	}

	return stats, nil
}
