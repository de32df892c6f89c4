package handler

import (
	"time"

	"go-secadmin-ws/internal/listing"
	"go-secadmin-ws/internal/model"
)

// Listing configs for each collection: which fields the search box covers,
// which can be filtered on exactly, and which can head a sort.

func DispensaryListConfig() listing.Config[model.Dispensary] {
	return listing.Config[model.Dispensary]{
		SearchFields: []func(model.Dispensary) string{
			func(d model.Dispensary) string { return d.Name },
			func(d model.Dispensary) string { return d.Owner },
			func(d model.Dispensary) string { return d.Email },
			func(d model.Dispensary) string { return d.Address },
		},
		FilterFields: map[string]func(model.Dispensary) string{
			"status": func(d model.Dispensary) string { return d.Status },
		},
		Comparators: map[string]func(a, b model.Dispensary) int{
			"name":       listing.ByString(func(d model.Dispensary) string { return d.Name }),
			"owner":      listing.ByString(func(d model.Dispensary) string { return d.Owner }),
			"created_at": listing.ByTime(func(d model.Dispensary) time.Time { return d.CreatedAt }),
		},
		DefaultSort: "name",
	}
}

func EngineerListConfig() listing.Config[model.SupportEngineer] {
	return listing.Config[model.SupportEngineer]{
		SearchFields: []func(model.SupportEngineer) string{
			func(e model.SupportEngineer) string { return e.Name },
			func(e model.SupportEngineer) string { return e.Email },
			func(e model.SupportEngineer) string { return e.Specialty },
		},
		FilterFields: map[string]func(model.SupportEngineer) string{
			"status":    func(e model.SupportEngineer) string { return e.Status },
			"specialty": func(e model.SupportEngineer) string { return e.Specialty },
		},
		Comparators: map[string]func(a, b model.SupportEngineer) int{
			"name":       listing.ByString(func(e model.SupportEngineer) string { return e.Name }),
			"specialty":  listing.ByString(func(e model.SupportEngineer) string { return e.Specialty }),
			"created_at": listing.ByTime(func(e model.SupportEngineer) time.Time { return e.CreatedAt }),
		},
		DefaultSort: "name",
	}
}

func ServiceRequestListConfig() listing.Config[model.ServiceRequest] {
	return listing.Config[model.ServiceRequest]{
		SearchFields: []func(model.ServiceRequest) string{
			func(r model.ServiceRequest) string { return r.Title },
			func(r model.ServiceRequest) string { return r.Dispensary },
			func(r model.ServiceRequest) string { return r.Engineer },
		},
		FilterFields: map[string]func(model.ServiceRequest) string{
			"status":   func(r model.ServiceRequest) string { return r.Status },
			"priority": func(r model.ServiceRequest) string { return r.Priority },
		},
		Comparators: map[string]func(a, b model.ServiceRequest) int{
			"title":      listing.ByString(func(r model.ServiceRequest) string { return r.Title }),
			"dispensary": listing.ByString(func(r model.ServiceRequest) string { return r.Dispensary }),
			"created_at": listing.ByTime(func(r model.ServiceRequest) time.Time { return r.CreatedAt }),
		},
		DefaultSort: "created_at",
	}
}

func InvoiceListConfig() listing.Config[model.Invoice] {
	return listing.Config[model.Invoice]{
		SearchFields: []func(model.Invoice) string{
			func(i model.Invoice) string { return i.Number },
			func(i model.Invoice) string { return i.Dispensary },
		},
		FilterFields: map[string]func(model.Invoice) string{
			"status": func(i model.Invoice) string { return i.Status },
		},
		Comparators: map[string]func(a, b model.Invoice) int{
			"number":     listing.ByString(func(i model.Invoice) string { return i.Number }),
			"dispensary": listing.ByString(func(i model.Invoice) string { return i.Dispensary }),
			"amount":     listing.ByInt(func(i model.Invoice) int64 { return i.AmountCents }),
			"issued_at":  listing.ByTime(func(i model.Invoice) time.Time { return i.IssuedAt }),
		},
		DefaultSort: "issued_at",
	}
}

func ArticleListConfig() listing.Config[model.Article] {
	return listing.Config[model.Article]{
		SearchFields: []func(model.Article) string{
			func(a model.Article) string { return a.Title },
			func(a model.Article) string { return a.Body },
			func(a model.Article) string { return a.Author },
		},
		FilterFields: map[string]func(model.Article) string{
			"status":   func(a model.Article) string { return a.Status },
			"category": func(a model.Article) string { return a.Category },
		},
		Comparators: map[string]func(a, b model.Article) int{
			"title":      listing.ByString(func(a model.Article) string { return a.Title }),
			"category":   listing.ByString(func(a model.Article) string { return a.Category }),
			"created_at": listing.ByTime(func(a model.Article) time.Time { return a.CreatedAt }),
		},
		DefaultSort: "title",
	}
}

func ServiceItemListConfig() listing.Config[model.ServiceItem] {
	return listing.Config[model.ServiceItem]{
		SearchFields: []func(model.ServiceItem) string{
			func(s model.ServiceItem) string { return s.Name },
			func(s model.ServiceItem) string { return s.Description },
		},
		FilterFields: map[string]func(model.ServiceItem) string{
			"category": func(s model.ServiceItem) string { return s.Category },
		},
		Comparators: map[string]func(a, b model.ServiceItem) int{
			"name":     listing.ByString(func(s model.ServiceItem) string { return s.Name }),
			"category": listing.ByString(func(s model.ServiceItem) string { return s.Category }),
			"price":    listing.ByInt(func(s model.ServiceItem) int64 { return s.PriceCents }),
		},
		DefaultSort: "name",
	}
}

func EmailTemplateListConfig() listing.Config[model.EmailTemplate] {
	return listing.Config[model.EmailTemplate]{
		SearchFields: []func(model.EmailTemplate) string{
			func(t model.EmailTemplate) string { return t.Name },
			func(t model.EmailTemplate) string { return t.Subject },
		},
		FilterFields: map[string]func(model.EmailTemplate) string{
			"category": func(t model.EmailTemplate) string { return t.Category },
		},
		Comparators: map[string]func(a, b model.EmailTemplate) int{
			"name":     listing.ByString(func(t model.EmailTemplate) string { return t.Name }),
			"category": listing.ByString(func(t model.EmailTemplate) string { return t.Category }),
		},
		DefaultSort: "name",
	}
}

func CMSPageListConfig() listing.Config[model.CMSPage] {
	return listing.Config[model.CMSPage]{
		SearchFields: []func(model.CMSPage) string{
			func(p model.CMSPage) string { return p.Slug },
			func(p model.CMSPage) string { return p.Title },
			func(p model.CMSPage) string { return p.Body },
		},
		Comparators: map[string]func(a, b model.CMSPage) int{
			"slug":  listing.ByString(func(p model.CMSPage) string { return p.Slug }),
			"title": listing.ByString(func(p model.CMSPage) string { return p.Title }),
		},
		DefaultSort: "slug",
	}
}

func UserListConfig() listing.Config[model.UserResponse] {
	return listing.Config[model.UserResponse]{
		SearchFields: []func(model.UserResponse) string{
			func(u model.UserResponse) string { return u.Name },
			func(u model.UserResponse) string { return u.Email },
		},
		FilterFields: map[string]func(model.UserResponse) string{
			"status": func(u model.UserResponse) string { return u.Status },
			"role":   func(u model.UserResponse) string { return u.RoleCode },
		},
		Comparators: map[string]func(a, b model.UserResponse) int{
			"name":       listing.ByString(func(u model.UserResponse) string { return u.Name }),
			"email":      listing.ByString(func(u model.UserResponse) string { return u.Email }),
			"created_at": listing.ByTime(func(u model.UserResponse) time.Time { return u.CreatedAt }),
		},
		DefaultSort: "name",
	}
}
