package dto

// CreateDisasterRequest: payload for creating a disaster
type CreateDisasterRequest struct {
	Name        string  `json:"name" binding:"required,min=3,max=200"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// UpdateDisasterRequest: partial update; nil fields are left as-is
type UpdateDisasterRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=3,max=200"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
