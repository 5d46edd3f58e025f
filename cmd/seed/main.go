// Command seed loads a small starter dataset: a handful of categories and
// products, one order batch with lines, and that batch's settings. It refuses
// to run on a non-empty catalog so it cannot clobber live data.
package main

import (
	"log"

	"go-resale-tracker/internal/model"
	"go-resale-tracker/internal/repository"
	"go-resale-tracker/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.OrderBatch{},
		&model.OrderLine{},
		&model.BatchSettings{},
	); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)

	existing, err := categoryRepo.ListIDs()
	if err != nil {
		log.Fatal("Failed to inspect catalog: ", err)
	}
	if len(existing) > 0 {
		log.Fatalf("Catalog already has %d categories, refusing to seed", len(existing))
	}

	categories := []model.Category{
		{ID: "A00", Name: "境內運費"},
		{ID: "A01", Name: "排球少年"},
		{ID: "A02", Name: "怪獸八號"},
		{ID: "A03", Name: "銀魂"},
		{ID: "A04", Name: "坂本"},
	}
	for i := range categories {
		if err := categoryRepo.Create(&categories[i]); err != nil {
			log.Fatal("Failed to seed category: ", err)
		}
	}

	products := []model.Product{
		{CategoryID: "A00", ID: "01", Name: "1.境內運費 10", DomesticShip: 10, RateSale: 0.250, RateCost: 0.250},
		{CategoryID: "A00", ID: "02", Name: "1.境內運費 100", DomesticShip: 100, RateSale: 0.250, RateCost: 0.250},
		{CategoryID: "A01", ID: "01", Name: "1.骨牌", JPYPrice: 880, IntlShip: 30, RateSale: 0.250, RateCost: 0.205, InputPrice: 250},
		{CategoryID: "A01", ID: "02", Name: "2.幼年小立牌", JPYPrice: 440, IntlShip: 10, RateSale: 0.250, RateCost: 0.205, InputPrice: 120},
		{CategoryID: "A01", ID: "03", Name: "3.生日徽章", JPYPrice: 550, IntlShip: 12, RateSale: 0.250, RateCost: 0.205, InputPrice: 150},
		{CategoryID: "A02", ID: "01", Name: "1.原畫盲抽", JPYPrice: 440, IntlShip: 10, RateSale: 0.250, RateCost: 0.205, InputPrice: 120},
		{CategoryID: "A03", ID: "01", Name: "1.生日徽章", JPYPrice: 550, IntlShip: 12, RateSale: 0.250, RateCost: 0.205, InputPrice: 150},
		{CategoryID: "A03", ID: "02", Name: "2.生日立牌", JPYPrice: 1650, IntlShip: 27, RateSale: 0.250, RateCost: 0.205, InputPrice: 440},
		{CategoryID: "A04", ID: "01", Name: "1.雕金徽章", JPYPrice: 990, IntlShip: 12, RateSale: 0.240, RateCost: 0.205, InputPrice: 250},
		{CategoryID: "A04", ID: "02", Name: "2.4人徽章", JPYPrice: 1760, IntlShip: 9, RateSale: 0.245, RateCost: 0.205, InputPrice: 440},
	}
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			log.Fatal("Failed to seed product: ", err)
		}
	}

	batch := model.OrderBatch{ID: "202508A", Year: 2025, Month: 8, Suffix: "A"}
	if err := orderRepo.CreateBatch(&batch); err != nil {
		log.Fatal("Failed to seed batch: ", err)
	}

	lines := []model.OrderLine{
		{OrderBatchID: batch.ID, CategoryID: "A01", ProductID: "01", Quantity: 2, Buyer: "小美", Date: "2025-08-03"},
		{OrderBatchID: batch.ID, CategoryID: "A01", ProductID: "03", Quantity: 1, Buyer: "小美", Date: "2025-08-03"},
		{OrderBatchID: batch.ID, CategoryID: "A03", ProductID: "02", Quantity: 1, Buyer: "阿哲", Date: "2025-08-05"},
		{OrderBatchID: batch.ID, CategoryID: "A04", ProductID: "02", Quantity: 3, Buyer: "玲玲", Remarks: "拆盒分售", Date: "2025-08-07"},
		{OrderBatchID: batch.ID, CategoryID: "A00", ProductID: "01", Quantity: 1, Buyer: "玲玲", Date: "2025-08-07"},
	}
	for i := range lines {
		if err := orderRepo.CreateLine(&lines[i]); err != nil {
			log.Fatal("Failed to seed order line: ", err)
		}
	}

	settings := model.BatchSettings{
		BatchID:          batch.ID,
		PackagingRevenue: 120,
		CardCharge:       1800,
		CardFee:          27,
		IntlShipping:     350,
		Status:           model.StatusProcessing,
	}
	if err := settingsRepo.Save(&settings); err != nil {
		log.Fatal("Failed to seed batch settings: ", err)
	}

	log.Printf("Seeded %d categories, %d products, 1 batch with %d lines", len(categories), len(products), len(lines))
}
