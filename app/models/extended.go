package models

// DashboardStats aggregates the numbers shown on the console landing
// page.
type DashboardStats struct {
	TotalStudents        int     `json:"total_students"`
	TotalInstructors     int     `json:"total_instructors"`
	ActiveSchedules      int     `json:"active_schedules"`
	MonthlyRevenue       int64   `json:"monthly_revenue"`
	StudentAttendance    float64 `json:"student_attendance"`
	PendingConsultations int     `json:"pending_consultations"`
}

// StudentFilters represents filtering options for student listings.
type StudentFilters struct {
	Search    string
	Status    string
	SeasonID  string
	Gender    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}
