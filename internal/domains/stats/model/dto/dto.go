package dto

type SummaryResponse struct {
	TotalCustomers int     `json:"total_customers"`
	TotalRooms     int     `json:"total_rooms"`
	AvailableRooms int     `json:"available_rooms"`
	TotalBookings  int     `json:"total_bookings"`
	ActiveBookings int     `json:"active_bookings"`
	TotalReviews   int     `json:"total_reviews"`
	AverageRating  float64 `json:"average_rating"`
	TotalRevenue   float64 `json:"total_revenue"`
	OccupancyRate  float64 `json:"occupancy_rate"`
}
