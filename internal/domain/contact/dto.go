package contact

// SubmitRequest represents POST /api/contact body
type SubmitRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=200"`
	Email   string `json:"email" validate:"required,contact_email,max=254"`
	Subject string `json:"subject" validate:"required,notblank,max=300"`
	Message string `json:"message" validate:"required,notblank,max=5000"`
}
