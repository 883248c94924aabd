package memory

import (
	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"
)

// SeedProducts returns the initial catalog contents of the demo storefront.
// The caller owns the returned slice.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Diamond Stud Earrings", Category: "Earrings", Price: 299, Image: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?auto=format&fit=crop&q=80&w=800", Stock: 10, Description: "Elegant diamond studs suitable for any occasion."},
		{ID: 2, Name: "Gold Chain Bracelet", Category: "Bracelet", Price: 150, Image: "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?auto=format&fit=crop&q=80&w=800", Stock: 15, Description: "Classic gold chain bracelet."},
		{ID: 3, Name: "Pearl Hair Clip", Category: "Hair Clips", Price: 25, Image: "https://images.unsplash.com/photo-1589128777073-263566ce5c95?auto=format&fit=crop&q=80&w=800", Stock: 50, Description: "Vintage inspired pearl hair clip."},
		{ID: 4, Name: "Ruby Red Lipstick", Category: "Lipstick", Price: 35, Image: "https://images.unsplash.com/photo-1586495777744-4413f21062fa?auto=format&fit=crop&q=80&w=800", Stock: 100, Description: "Long-lasting matte ruby red lipstick."},
		{ID: 5, Name: "Midnight Blue Nail Polish", Category: "Nail Polish", Price: 18, Image: "https://images.unsplash.com/photo-1632516643720-e7f5d7d6ecc9?auto=format&fit=crop&q=80&w=800", Stock: 80, Description: "Deep midnight blue nail polish with a glossy finish."},
		{ID: 6, Name: "Sapphire Drop Earrings", Category: "Earrings", Price: 450, Image: "https://images.unsplash.com/photo-1599643478518-17488fbbcd75?auto=format&fit=crop&q=80&w=800", Stock: 8, Description: "Stunning sapphire drop earrings."},
		{ID: 7, Name: "Silver Charm Bracelet", Category: "Bracelet", Price: 120, Image: "https://images.unsplash.com/photo-1573408301185-9146fe634ad0?auto=format&fit=crop&q=80&w=800", Stock: 20, Description: "Sterling silver bracelet with charms."},
		{ID: 8, Name: "Rose Gold Solitaire Ring", Category: "Rings", Price: 599, Image: "https://images.unsplash.com/photo-1605100804763-247f67b3557e?auto=format&fit=crop&q=80&w=800", Stock: 12, Description: "Minimalist rose gold solitaire ring."},
		{ID: 9, Name: "Emerald Eternity Band", Category: "Rings", Price: 899, Image: "https://images.unsplash.com/photo-1603561591411-07134e71a2a9?auto=format&fit=crop&q=80&w=800", Stock: 5, Description: "Luxurious emerald eternity band."},
		{ID: 10, Name: "Diamond Pendant Necklace", Category: "Necklaces", Price: 750, Image: "https://images.unsplash.com/photo-1599643477877-530eb83abc8e?auto=format&fit=crop&q=80&w=800", Stock: 7, Description: "Classic diamond pendant necklace."},
		{ID: 11, Name: "Gold Layered Necklace", Category: "Necklaces", Price: 200, Image: "https://images.unsplash.com/photo-1601121141461-9d6647bca1ed?auto=format&fit=crop&q=80&w=800", Stock: 25, Description: "Trendy gold layered necklace."},
	}
}

// NewSeededCatalog builds the catalog store preloaded with the demo seed.
func NewSeededCatalog() repository.CatalogRepository {
	return NewCatalogStore(SeedProducts())
}
