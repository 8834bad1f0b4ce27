package domain

type OwnerStats struct {
	TotalSpots     int     `json:"total_spots"`
	TotalCapacity  int     `json:"total_capacity"`
	OccupiedSpots  int     `json:"occupied_spots"`
	ActiveBookings int     `json:"active_bookings"`
	ActiveSlips    int     `json:"active_slips"`
	BookingRevenue float64 `json:"booking_revenue"`
	SlipRevenue    float64 `json:"slip_revenue"`
	Revenue        float64 `json:"revenue"`
	OccupancyRate  int     `json:"occupancy_rate"`
}

// Finalize fills the derived fields from the raw counters.
func (s *OwnerStats) Finalize() {
	s.Revenue = s.BookingRevenue + s.SlipRevenue
	if s.TotalCapacity > 0 {
		s.OccupancyRate = (s.OccupiedSpots*100 + s.TotalCapacity/2) / s.TotalCapacity
	} else {
		s.OccupancyRate = 0
	}
}
