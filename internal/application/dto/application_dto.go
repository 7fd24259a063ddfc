package dto

import "time"

// SubmitApplicationRequest entrada para postular a una sala. El wizard del
// frontend acumula los pasos; aquí llega el payload completo de una vez.
type SubmitApplicationRequest struct {
	RoomID         string   `json:"room_id" validate:"required"`
	BusinessName   string   `json:"business_name" validate:"required,min=2"`
	BusinessType   string   `json:"business_type" validate:"required,min=2"`
	BusinessPlan   string   `json:"business_plan" validate:"required,min=100"`
	ExpectedMoveIn string   `json:"expected_move_in" validate:"required"` // RFC 3339 o YYYY-MM-DD
	SupportingDocs []string `json:"supporting_docs" validate:"required,min=1,dive,url"`
}

// Decisiones admitidas en la revisión.
const (
	DecisionApprove = "APPROVE"
	DecisionReject  = "REJECT"
)

// ReviewApplicationRequest decisión del admin sobre una solicitud PENDING.
type ReviewApplicationRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVE REJECT"`
}

// ListApplicationsRequest filtros del listado de solicitudes. Un no-admin
// queda forzado a su propio applicant_id sin importar lo que pida.
type ListApplicationsRequest struct {
	Status string `query:"status"`
	RoomID string `query:"room_id"`
}

// ApplicationResponse salida de una solicitud.
type ApplicationResponse struct {
	ID             string     `json:"id"`
	ApplicantID    string     `json:"applicant_id"`
	RoomID         string     `json:"room_id"`
	RoomName       string     `json:"room_name,omitempty"`
	BusinessName   string     `json:"business_name"`
	BusinessType   string     `json:"business_type"`
	BusinessPlan   string     `json:"business_plan"`
	ExpectedMoveIn time.Time  `json:"expected_move_in"`
	SupportingDocs []string   `json:"supporting_docs"`
	Status         string     `json:"status"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
}
