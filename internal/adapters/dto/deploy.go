package dto

// UpdateApexClassRequest is the body of POST /api/updateApexClass.
type UpdateApexClassRequest struct {
	AuthenticatedRequest
	ClassID   string `json:"classId"`
	ClassBody string `json:"classBody"`
}

// UpdateApexClassResponse is returned when the class compiled and was saved.
type UpdateApexClassResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
