package repo

import "asset-inventory/internal/domain"

func strp(s string) *string { return &s }

// SeedUsers 初始用户：admin 可登录，inactive 已停用
func SeedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Admin User", Login: "admin", Email: "admin@example.com", Active: true, RegisteredAt: "2023-01-01"},
		{ID: 2, Name: "Inactive User", Login: "inactive", Email: "inactive@example.com", Active: false, RegisteredAt: "2023-01-02"},
		{ID: 3, Name: "John Doe", Login: "johndoe", Email: "john.doe@example.com", Active: true, RegisteredAt: "2023-02-10"},
	}
}

func SeedLocations() []domain.Location {
	return []domain.Location{
		{Code: 1, Description: "Almoxarifado", Active: true},
		{Code: 2, Description: "Sala 101", Active: true},
		{Code: 3, Description: "Depósito", Active: true},
		{Code: 4, Description: "Escritório Antigo", Active: false},
	}
}

func SeedAssets() []domain.Asset {
	return []domain.Asset{
		{Cod: 1, Code: "00055789", Description: "Notebook Dell Latitude 5420", AcquiredAt: "2023-05-20", LocationCode: 2, Status: domain.StatusActive, Inventoried: true, Supplier: strp("Dell Inc.")},
		{Cod: 2, Code: "00055790", Description: "Cadeira de Escritório Ergonômica", AcquiredAt: "2022-11-15", LocationCode: 2, Status: domain.StatusActive, Inventoried: true, Supplier: strp("Staples")},
		{Cod: 3, Code: "00055791", Description: `Monitor LG Ultrawide 29"`, AcquiredAt: "2023-02-10", LocationCode: 1, Status: domain.StatusActive, Inventoried: false, Supplier: strp("LG Electronics")},
		{Cod: 4, Code: "00055792", Description: "Impressora HP LaserJet Pro", AcquiredAt: "2021-08-01", LocationCode: 3, Status: domain.StatusInactive, Inventoried: false, Supplier: strp("HP")},
		{Cod: 5, Code: "00055793", Description: "Projetor Epson PowerLite", AcquiredAt: "2020-01-30", LocationCode: 3, Status: domain.StatusWrittenOff, Inventoried: true, Supplier: strp("Epson")},
	}
}
