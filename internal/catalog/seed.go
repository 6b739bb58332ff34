package catalog

var seedHotels = []Hotel{
	{ID: 1, Name: "The Grand Palace Hotel", Rating: 4.9, Reviews: 2847, PricePerNight: 320, Neighborhood: "City Center",
		Amenities: []string{"wifi", "pool", "breakfast", "parking"}, WhyFits: "Perfect for couples seeking luxury in the heart of the action"},
	{ID: 2, Name: "Boutique Maison", Rating: 4.7, Reviews: 1523, PricePerNight: 185, Neighborhood: "Arts District",
		Amenities: []string{"wifi", "breakfast"}, WhyFits: "Charming boutique hotel with local character"},
	{ID: 3, Name: "Skyline Suites", Rating: 4.8, Reviews: 3102, PricePerNight: 275, Neighborhood: "Financial District",
		Amenities: []string{"wifi", "pool", "parking"}, WhyFits: "Modern amenities with stunning city views"},
	{ID: 4, Name: "Harbor View Inn", Rating: 4.5, Reviews: 987, PricePerNight: 145, Neighborhood: "Waterfront",
		Amenities: []string{"wifi", "breakfast"}, WhyFits: "Budget-friendly with beautiful harbor views"},
	{ID: 5, Name: "The Ritz Heritage", Rating: 4.9, Reviews: 4521, PricePerNight: 450, Neighborhood: "Historic Quarter",
		Amenities: []string{"wifi", "pool", "breakfast", "parking"}, WhyFits: "5-star luxury in a historic building"},
	{ID: 6, Name: "Urban Nest Hostel", Rating: 4.3, Reviews: 2156, PricePerNight: 45, Neighborhood: "Backpacker District",
		Amenities: []string{"wifi", "breakfast"}, WhyFits: "Social atmosphere, perfect for solo travelers"},
}

var seedPlaces = []Place{
	{ID: 1, Name: "Historic Old Town Square", Type: "Landmark", Rating: 4.8, Duration: "2-3 hours", Distance: "0.5 km from hotel", Tip: "Best visited early morning before crowds"},
	{ID: 2, Name: "Secret Garden Courtyard", Type: "Hidden Gem", Rating: 4.9, Duration: "1 hour", Distance: "1.2 km from hotel", HiddenGem: true, Tip: "Local favorite, rarely in guidebooks"},
	{ID: 3, Name: "National Art Museum", Type: "Museum", Rating: 4.7, Duration: "3-4 hours", Distance: "2.1 km from hotel", Tip: "Free entry on first Sunday of month"},
	{ID: 4, Name: "Sunset Viewpoint Trail", Type: "Nature", Rating: 4.9, Duration: "2 hours", Distance: "5 km from hotel", HiddenGem: true, Tip: "Perfect for sunset photos"},
	{ID: 5, Name: "Central Market Hall", Type: "Market", Rating: 4.6, Duration: "1-2 hours", Distance: "0.8 km from hotel", Tip: "Best for local snacks and souvenirs"},
	{ID: 6, Name: "Artisan Workshop Quarter", Type: "Cultural", Rating: 4.5, Duration: "2 hours", Distance: "1.5 km from hotel", HiddenGem: true, Tip: "Watch local craftsmen at work"},
	{ID: 7, Name: "Royal Palace Gardens", Type: "Garden", Rating: 4.8, Duration: "2-3 hours", Distance: "1.8 km from hotel", Tip: "Stunning in spring with blooming flowers"},
	{ID: 8, Name: "Underground History Tour", Type: "Activity", Rating: 4.7, Duration: "1.5 hours", Distance: "0.3 km from hotel", Tip: "Book in advance, tours fill up fast"},
}

var seedRestaurants = []Restaurant{
	{ID: 1, Name: "La Petite Maison", Cuisine: "French Fine Dining", Rating: 4.9, PriceLevel: "$$$", WalkTime: "5 min walk", Iconic: true, MustTry: "Duck Confit with truffle sauce", Dietary: []string{}},
	{ID: 2, Name: "Street Bites Corner", Cuisine: "Local Street Food", Rating: 4.7, PriceLevel: "$", WalkTime: "8 min walk", MustTry: "Traditional meat skewers", Dietary: []string{}},
	{ID: 3, Name: "The Green Table", Cuisine: "Vegetarian Cafe", Rating: 4.6, PriceLevel: "$$", WalkTime: "12 min walk", MustTry: "Buddha bowl with tahini", Dietary: []string{"vegetarian", "vegan-options"}},
	{ID: 4, Name: "Ocean Pearl", Cuisine: "Seafood", Rating: 4.8, PriceLevel: "$$$", WalkTime: "15 min walk", Iconic: true, MustTry: "Fresh catch of the day", Dietary: []string{}},
	{ID: 5, Name: "Nonna's Kitchen", Cuisine: "Italian Trattoria", Rating: 4.7, PriceLevel: "$$", WalkTime: "10 min walk", MustTry: "Handmade pasta carbonara", Dietary: []string{}},
	{ID: 6, Name: "Sunrise Bakery", Cuisine: "Cafe & Pastries", Rating: 4.5, PriceLevel: "$", WalkTime: "3 min walk", MustTry: "Almond croissant", Dietary: []string{"vegetarian"}},
	{ID: 7, Name: "Spice Route", Cuisine: "Asian Fusion", Rating: 4.8, PriceLevel: "$$", WalkTime: "18 min walk", MustTry: "Crispy duck bao buns", Dietary: []string{}},
	{ID: 8, Name: "The Rooftop Bar", Cuisine: "Cocktails & Tapas", Rating: 4.6, PriceLevel: "$$", WalkTime: "7 min walk", Iconic: true, MustTry: "Sunset sangria", Dietary: []string{"vegetarian"}},
}
