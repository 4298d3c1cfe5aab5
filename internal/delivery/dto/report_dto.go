package dto

// Response DTOs

type OverviewReportResponse struct {
	TotalPatients         int64            `json:"total_patients"`
	PatientsBySex         map[string]int64 `json:"patients_by_sex"`
	TotalComplaints       int64            `json:"total_complaints"`
	ComplaintsBySeverity  map[string]int64 `json:"complaints_by_severity"`
	PrescriptionsThisMonth int64           `json:"prescriptions_this_month"`
	FollowUpsDueNext7Days int64            `json:"follow_ups_due_next_7_days"`
}
