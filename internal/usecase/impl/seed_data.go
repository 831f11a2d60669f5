package impl

import (
	"fmt"

	"github.com/google/uuid"

	"innkeeper/internal/domain/entity"
)

// seedOwnerID is the fixed account that owns all sample listings.
var seedOwnerID = uuid.MustParse("a0b1c2d3-0000-4000-8000-507f1f77bcf8")

func seedImages(index int) []string {
	return []string{
		fmt.Sprintf("https://images.example.com/hotels/%d/exterior.jpg", index),
		fmt.Sprintf("https://images.example.com/hotels/%d/room.jpg", index),
		fmt.Sprintf("https://images.example.com/hotels/%d/lobby.jpg", index),
	}
}

// sampleHotels returns fresh copies of the sample inventory, three hotels for
// each of five cities. Prices are nightly, in the smallest currency unit.
func sampleHotels() []*entity.Hotel {
	return []*entity.Hotel{
		// Mumbai
		{Name: "Hotel Marine Plaza", City: "Mumbai", Address: "Marine Drive, Mumbai 400020", Description: "Elegant hotel overlooking Marine Drive with modern amenities and stunning sea views.", Price: 2500, StarRating: 4, Amenities: []string{"Free WiFi", "Restaurant", "Room Service", "AC"}, Images: seedImages(0), OwnerID: seedOwnerID},
		{Name: "Hotel Suba Palace", City: "Mumbai", Address: "Colaba, Mumbai 400005", Description: "Comfortable stay near Gateway of India, perfect for budget travelers.", Price: 1800, StarRating: 3, Amenities: []string{"Free WiFi", "Restaurant", "AC"}, Images: seedImages(1), OwnerID: seedOwnerID},
		{Name: "Hotel Godwin", City: "Mumbai", Address: "Garden Road, Colaba, Mumbai 400001", Description: "Budget hotel with great location near tourist attractions.", Price: 1500, StarRating: 3, Amenities: []string{"Free WiFi", "AC", "Room Service"}, Images: seedImages(2), OwnerID: seedOwnerID},

		// Delhi
		{Name: "Hotel Broadway", City: "Delhi", Address: "Asaf Ali Road, New Delhi 110002", Description: "Heritage hotel near Old Delhi with vintage charm.", Price: 2200, StarRating: 4, Amenities: []string{"Free WiFi", "Restaurant", "AC", "Room Service"}, Images: seedImages(11), OwnerID: seedOwnerID},
		{Name: "Hotel Le Roi", City: "Delhi", Address: "Paharganj, New Delhi 110055", Description: "Budget hotel in backpacker area with basic amenities.", Price: 1200, StarRating: 2, Amenities: []string{"Free WiFi", "AC"}, Images: seedImages(12), OwnerID: seedOwnerID},
		{Name: "Hotel Shelton", City: "Delhi", Address: "Connaught Place, New Delhi 110001", Description: "Central location with easy access to metro and shopping.", Price: 2800, StarRating: 4, Amenities: []string{"Free WiFi", "Restaurant", "AC", "Room Service"}, Images: seedImages(13), OwnerID: seedOwnerID},

		// Bangalore
		{Name: "Hotel Empire", City: "Bangalore", Address: "Church Street, Bangalore 560001", Description: "Centrally located hotel near MG Road metro station.", Price: 2400, StarRating: 4, Amenities: []string{"Free WiFi", "Restaurant", "AC", "Room Service"}, Images: seedImages(26), OwnerID: seedOwnerID},
		{Name: "Hotel Nandhana Grand", City: "Bangalore", Address: "Koramangala, Bangalore 560034", Description: "IT hub proximity with modern amenities.", Price: 1800, StarRating: 3, Amenities: []string{"Free WiFi", "Restaurant", "AC"}, Images: seedImages(27), OwnerID: seedOwnerID},
		{Name: "Hotel Royal Orchid", City: "Bangalore", Address: "Brigade Road, Bangalore 560025", Description: "Shopping district hotel with excellent service.", Price: 3000, StarRating: 4, Amenities: []string{"Free WiFi", "Restaurant", "Bar", "AC", "Gym"}, Images: seedImages(28), OwnerID: seedOwnerID},

		// Goa
		{Name: "Beach Paradise Resort", City: "Goa", Address: "Calangute Beach, Goa 403516", Description: "Beachfront resort with stunning ocean views and water sports.", Price: 3500, StarRating: 4, Amenities: []string{"Free WiFi", "Restaurant", "Beach Access", "AC", "Pool"}, Images: seedImages(41), OwnerID: seedOwnerID},
		{Name: "Hotel Marbella Guest House", City: "Goa", Address: "Panjim, Goa 403001", Description: "Cozy guest house in capital city with Portuguese charm.", Price: 1800, StarRating: 3, Amenities: []string{"Free WiFi", "AC"}, Images: seedImages(42), OwnerID: seedOwnerID},
		{Name: "Hotel Beira Mar", City: "Goa", Address: "Baga Beach, Goa 403516", Description: "Party area hotel with nightlife proximity.", Price: 2200, StarRating: 3, Amenities: []string{"Free WiFi", "Restaurant", "AC", "Beach Access"}, Images: seedImages(43), OwnerID: seedOwnerID},

		// Jaipur
		{Name: "Hotel Pearl Palace", City: "Jaipur", Address: "Hari Kishan Somani Marg, Jaipur 302001", Description: "Heritage hotel with traditional Rajasthani hospitality.", Price: 2000, StarRating: 4, Amenities: []string{"Free WiFi", "Restaurant", "AC", "Rooftop Cafe"}, Images: seedImages(56), OwnerID: seedOwnerID},
		{Name: "Hotel Arya Niwas", City: "Jaipur", Address: "Sansar Chandra Road, Jaipur 302001", Description: "Budget hotel near railway station with vegetarian restaurant.", Price: 1500, StarRating: 3, Amenities: []string{"Free WiFi", "Restaurant", "AC"}, Images: seedImages(57), OwnerID: seedOwnerID},
		{Name: "Hotel Diggi Palace", City: "Jaipur", Address: "SMS Hospital Road, Jaipur 302004", Description: "Palace hotel with beautiful gardens and cultural events.", Price: 2800, StarRating: 4, Amenities: []string{"Free WiFi", "Restaurant", "AC", "Garden"}, Images: seedImages(58), OwnerID: seedOwnerID},
	}
}
