// Package seed loads the fixed launch catalog. Seeding is one-shot: a
// non-empty catalog is left exactly as it is.
package seed

import (
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/models"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
)

// Catalog returns the launch product list.
func Catalog() []models.Product {
	return []models.Product{
		{Name: "White Phenyl (5L)", Description: "Our classic White Phenyl is a powerful disinfectant designed to eliminate germs and leave your floors sparkling clean. Its timeless, fresh fragrance ensures a hygienic and pleasant environment.", Price: 180.00, ImageFile: "floor-cleaner-white.png"},
		{Name: "Rose Flavoured Phenyl (5L)", Description: "Experience deep cleaning with the enchanting aroma of fresh roses. This floor cleaner not only removes tough stains but also leaves a long-lasting, soothing floral fragrance.", Price: 240.00, ImageFile: "floor-cleaner-rose.png"},
		{Name: "Toilet Cleaner (5L)", Description: "With 10x cleaning power, our Toilet Cleaner effortlessly removes the toughest stains and limescale. Its advanced formula kills 99.9% of germs, ensuring a sparkling clean and hygienic toilet.", Price: 350.00, ImageFile: "toilet-cleaner.png"},
		{Name: "Dishwash Liquid (5L)", Description: "Tough on grease but gentle on hands, our Active Lemon Dishwash Liquid makes your utensils shine. Its powerful formula cuts through grime, leaving a refreshing lemon scent.", Price: 350.00, ImageFile: "dishwash.jpg"},
		{Name: "Glass Cleaner (5L)", Description: "Get a streak-free shine every time with our Glass Cleaner. Perfect for windows, mirrors, and other glass surfaces, it leaves everything sparkling clean without any residue.", Price: 350.00, ImageFile: "glass-cleaner.png"},
		{Name: "Rose Handwash (5L)", Description: "Infused with the gentle fragrance of roses, this antibacterial handwash cleanses your hands effectively while keeping them soft and moisturized. Ideal for everyday use.", Price: 240.00, ImageFile: "handwash-rose.png"},
		{Name: "Apple Handwash (5L)", Description: "Fresh and pure anti-bacterial handwash with a crisp green apple scent. Its 5x power formula ensures your hands are clean, fresh, and germ-free.", Price: 350.00, ImageFile: "handwash-apple.jpg"},
		{Name: "Herbal Handwash (5L)", Description: "5x more power with a fresh herbal fragrance. This anti-bacterial handwash is safe to use and leaves your hands feeling fresh, pure, and thoroughly clean.", Price: 350.00, ImageFile: "handwash-herbal.png"},
		{Name: "Orange Handwash (5L)", Description: "Safe-to-use multi-purpose handwash with a zesty orange fragrance. Its 5x power anti-bacterial formula provides a fresh and pure clean every time.", Price: 350.00, ImageFile: "handwash-orange.png"},
	}
}

// Run inserts the launch catalog when the products table is empty. It reports
// how many products were created; zero means the catalog was already seeded.
func Run(st store.Store) (int, error) {
	count, err := st.ProductCount()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	products := Catalog()
	for i := range products {
		if err := st.CreateProduct(&products[i]); err != nil {
			return i, err
		}
	}
	return len(products), nil
}
