package repositories

import (
	"log"

	"catalog/internal/models"
)

// SeedProducts returns the fixed set of products the catalog starts with.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "2023 Cloud9 Official Legacy Summer Jersey", Price: models.NewPrice("69"),
			ProductImage: "uploads/2023 Cloud9 Official Legacy Summer Jersey.webp"},
		{ID: "2", Name: "2023 Cloud9 Official Summer Jersey - CSGO & SSBM Pro Edition", Price: models.NewPrice("79"),
			ProductImage: "uploads/2023 Cloud9 Official Summer Jersey - CSGO & SSBM Pro Edition.webp"},
		{ID: "3", Name: "2023 Cloud9 Official Summer Jersey - League of Legends Edition", Price: models.NewPrice("69"),
			ProductImage: "uploads/2023 Cloud9 Official Summer Jersey - League of Legends Edition.webp"},
		{ID: "4", Name: "2023 Cloud9 Official Summer Jersey - League of Legends Pro Edition", Price: models.NewPrice("79"),
			ProductImage: "uploads/2023 Cloud9 Official Summer Jersey - League of Legends Pro Edition.webp"},
		{ID: "5", Name: "2023 Cloud9 Official Summer Jersey - VALORANT Edition", Price: models.NewPrice("69"),
			ProductImage: "uploads/2023 Cloud9 Official Summer Jersey - VALORANT Edition.webp"},
		{ID: "6", Name: "2023 Cloud9 Official Summer Jersey - VALORANT Pro Edition", Price: models.NewPrice("79"),
			ProductImage: "uploads/2023 Cloud9 Official Summer Jersey - VALORANT Pro Edition.webp"},
		{ID: "7", Name: "2023 Cloud9 Worlds Jersey - Legacy Edition", Price: models.NewPrice("79"),
			ProductImage: "uploads/2023 Cloud9 Worlds Jersey - Legacy Edition.webp"},
		{ID: "8", Name: "2023 Cloud9 Worlds Jersey - Pro Edition", Price: models.NewPrice("89"),
			ProductImage: "uploads/2023 Cloud9 Worlds Jersey - Pro Edition.webp"},
	}
}

// Seed populates the repository with the seed set.
func Seed(repo ProductRepository) error {
	products := SeedProducts()
	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			return err
		}
		log.Printf("Seeded product: %s (ID: %s)", products[i].Name, products[i].ID)
	}
	return nil
}
