package catalog

// Seed returns the built-in demo catalog used when no catalog directory is
// supplied. Six products across six categories, two of them out of stock.
func Seed() *Catalog {
	c, err := New([]Product{
		{
			ID:          1,
			Name:        "Wireless Noise-Cancelling Headphones",
			Price:       249.99,
			Category:    "Electronics",
			Rating:      4.5,
			ReviewCount: 120,
			Description: "Immerse yourself in music with these high-fidelity wireless headphones. Featuring active noise cancellation, a 30-hour battery life, and crystal-clear microphone for calls. Perfect for travel, work, and leisure.",
			InStock:     true,
			Comments: []Comment{
				{Author: "Alice", Text: "Absolutely amazing sound quality!", Date: "2024-07-20"},
				{Author: "Bob", Text: "The noise cancellation is a game-changer on my commute.", Date: "2024-07-21"},
			},
		},
		{
			ID:          2,
			Name:        "Smartwatch Series 8",
			Price:       399.00,
			Category:    "Wearables",
			Rating:      4.8,
			ReviewCount: 250,
			Description: "Stay connected and track your fitness with the latest smartwatch. Water-resistant with a bright, always-on display, ECG app, and blood oxygen monitoring. Your essential companion for a healthy life.",
			InStock:     true,
		},
		{
			ID:          3,
			Name:        "Professional DSLR Camera",
			Price:       1250.50,
			Category:    "Cameras",
			Rating:      4.9,
			ReviewCount: 95,
			Description: "Capture stunning photos and 4K video with this professional-grade DSLR camera. Includes a versatile 18-55mm lens, a 32MP sensor, and fast autofocus system for capturing life's moments in breathtaking detail.",
			InStock:     false,
		},
		{
			ID:          4,
			Name:        "Ultra-Thin Laptop",
			Price:       1199.99,
			Category:    "Computers",
			Rating:      4.7,
			ReviewCount: 180,
			Description: "A powerful and portable laptop for work and play. Features a 13-inch Retina display, a super-fast SSD, the latest M3 processor, and an all-day battery life in a sleek, lightweight design.",
			InStock:     false,
		},
		{
			ID:          5,
			Name:        "Bluetooth Portable Speaker",
			Price:       89.99,
			Category:    "Audio",
			Rating:      4.3,
			ReviewCount: 300,
			Description: "Take your music anywhere with this compact and waterproof Bluetooth speaker. Delivers surprisingly big sound and deep bass, with a 15-hour playtime and a rugged design for any adventure.",
			InStock:     true,
		},
		{
			ID:          6,
			Name:        "Gaming Mouse",
			Price:       75.00,
			Category:    "Peripherals",
			Rating:      4.6,
			ReviewCount: 150,
			Description: "Gain a competitive edge with this ergonomic gaming mouse, featuring customizable RGB lighting, programmable buttons, and a high-precision 16,000 DPI optical sensor for ultimate speed and accuracy.",
			InStock:     true,
		},
	})
	if err != nil {
		// The seed data is static and known-good; a failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return c
}
