package dto

// CreateGymRequest is the payload for registering a gym. The gym starts
// in pending status until an administrator reviews it.
type CreateGymRequest struct {
	Name                     string   `json:"name" binding:"required" example:"Iron Temple"`
	Address                  string   `json:"address" binding:"required" example:"42 Main St"`
	City                     string   `json:"city" binding:"required" example:"Istanbul"`
	Description              string   `json:"description,omitempty"`
	Phone                    string   `json:"phone,omitempty" example:"+90 212 555 0101"`
	Email                    string   `json:"email,omitempty" binding:"omitempty,email"`
	Capacity                 int      `json:"capacity,omitempty" binding:"omitempty,min=0" example:"120"`
	Equipment                []string `json:"equipment,omitempty"`
	SpecializedExerciseTypes []string `json:"specializedExerciseTypes,omitempty"`
}

// UpdateGymRequest carries the mutable gym fields. Nil fields are left
// unchanged.
type UpdateGymRequest struct {
	Name                     *string  `json:"name,omitempty"`
	Address                  *string  `json:"address,omitempty"`
	City                     *string  `json:"city,omitempty"`
	Description              *string  `json:"description,omitempty"`
	Phone                    *string  `json:"phone,omitempty"`
	Email                    *string  `json:"email,omitempty" binding:"omitempty,email"`
	Capacity                 *int     `json:"capacity,omitempty" binding:"omitempty,min=0"`
	Equipment                []string `json:"equipment,omitempty"`
	SpecializedExerciseTypes []string `json:"specializedExerciseTypes,omitempty"`
}

// RejectGymRequest carries the reason shown to the owner
type RejectGymRequest struct {
	Reason string `json:"reason,omitempty" example:"Address could not be verified"`
}
